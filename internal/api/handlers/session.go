package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Mirage/internal/api/models"
	"github.com/Project-Sylos/Mirage/internal/random"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/go-chi/chi/v5"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	BaseHandler
	manager *session.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{
		manager: manager,
	}
}

// CreateSession handles the create session endpoint
func (h *SessionHandler) CreateSession(w http.ResponseWriter, req *http.Request) {
	var body models.CreateSessionRequest
	if err := h.decodeJSON(req, &body); err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.manager.Create(req.Context(), session.CreateOptions{
		Seed:           body.Seed,
		Locale:         body.Locale,
		LocaleFallback: body.LocaleFallback,
	})
	if err != nil {
		h.sendFailure(w, "create session", err)
		return
	}

	h.sendCreated(w, "Session created successfully", s)
}

// ListSessions handles the list sessions endpoint
func (h *SessionHandler) ListSessions(w http.ResponseWriter, req *http.Request) {
	sessions, err := h.manager.List(req.Context())
	if err != nil {
		h.sendFailure(w, "list sessions", err)
		return
	}

	h.sendSuccess(w, "Sessions retrieved successfully", sessions)
}

// GetSession handles the get session endpoint
func (h *SessionHandler) GetSession(w http.ResponseWriter, req *http.Request) {
	s, err := h.manager.Get(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, "get session", err)
		return
	}

	h.sendSuccess(w, "Session retrieved successfully", s)
}

// DeleteSession handles the delete session endpoint
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, req *http.Request) {
	if err := h.manager.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		h.sendFailure(w, "delete session", err)
		return
	}

	h.sendSuccess(w, "Session deleted successfully", nil)
}

// Reseed handles the reseed endpoint
func (h *SessionHandler) Reseed(w http.ResponseWriter, req *http.Request) {
	var body models.SeedRequest
	if err := h.decodeJSON(req, &body); err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.manager.Reseed(req.Context(), chi.URLParam(req, "id"), body.Seed)
	if err != nil {
		h.sendFailure(w, "reseed session", err)
		return
	}

	h.sendSuccess(w, "Session reseeded successfully", s)
}

// SetLocale handles the change locale endpoint
func (h *SessionHandler) SetLocale(w http.ResponseWriter, req *http.Request) {
	var body models.LocaleRequest
	if err := h.decodeJSON(req, &body); err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Locale == "" && body.LocaleFallback == "" {
		h.sendError(w, http.StatusBadRequest, "locale or locale_fallback is required")
		return
	}

	s, err := h.manager.SetLocale(req.Context(), chi.URLParam(req, "id"), body.Locale, body.LocaleFallback)
	if err != nil {
		h.sendFailure(w, "set locale", err)
		return
	}

	h.sendSuccess(w, "Locale updated successfully", s)
}

// Draw handles the bounded draws endpoint
func (h *SessionHandler) Draw(w http.ResponseWriter, req *http.Request) {
	var body models.DrawRequest
	if err := h.decodeJSON(req, &body); err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Count == 0 {
		body.Count = 1
	}

	values, err := h.manager.Draw(req.Context(), chi.URLParam(req, "id"),
		random.Bounds{Min: body.Min, Max: body.Max}, body.Count)
	if err != nil {
		h.sendFailure(w, "draw values", err)
		return
	}

	h.sendSuccess(w, "Values drawn successfully", models.DrawResponse{Values: values})
}

// Fork handles the fork endpoint
func (h *SessionHandler) Fork(w http.ResponseWriter, req *http.Request) {
	s, err := h.manager.Fork(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, "fork session", err)
		return
	}

	h.sendCreated(w, "Session forked successfully", s)
}

// Derive handles the derive endpoint
func (h *SessionHandler) Derive(w http.ResponseWriter, req *http.Request) {
	s, err := h.manager.Derive(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, "derive session", err)
		return
	}

	h.sendCreated(w, "Session derived successfully", s)
}
