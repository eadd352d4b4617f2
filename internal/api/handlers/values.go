package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Mirage/internal/api/models"
	"github.com/Project-Sylos/Mirage/internal/generator"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/go-chi/chi/v5"
)

// ValueHandler handles locale lookups and generated values of a session
type ValueHandler struct {
	BaseHandler
	manager *session.Manager
}

// NewValueHandler creates a new value handler
func NewValueHandler(manager *session.Manager) *ValueHandler {
	return &ValueHandler{
		manager: manager,
	}
}

// ListEntries handles the module entries endpoint
func (h *ValueHandler) ListEntries(w http.ResponseWriter, req *http.Request) {
	module := chi.URLParam(req, "module")
	entries, err := h.manager.Entries(req.Context(), chi.URLParam(req, "id"), module)
	if err != nil {
		h.sendFailure(w, "list entries", err)
		return
	}

	h.sendSuccess(w, "Entries retrieved successfully", map[string]any{
		"module":  module,
		"entries": entries,
	})
}

// GetEntry handles the module entry endpoint
func (h *ValueHandler) GetEntry(w http.ResponseWriter, req *http.Request) {
	module := chi.URLParam(req, "module")
	entry := chi.URLParam(req, "entry")
	value, err := h.manager.Resolve(req.Context(), chi.URLParam(req, "id"), module, entry)
	if err != nil {
		h.sendFailure(w, "resolve entry", err)
		return
	}

	h.sendSuccess(w, "Entry retrieved successfully", map[string]any{
		"module": module,
		"entry":  entry,
		"value":  value,
	})
}

// Person handles the generate person endpoint
func (h *ValueHandler) Person(w http.ResponseWriter, req *http.Request) {
	person, err := h.manager.With(req.Context(), chi.URLParam(req, "id"), func(gen *generator.Generator) (any, error) {
		first, err := gen.Person().FirstName()
		if err != nil {
			return nil, err
		}
		last, err := gen.Person().LastName()
		if err != nil {
			return nil, err
		}
		return models.PersonResponse{
			FirstName: first,
			LastName:  last,
			FullName:  first + " " + last,
		}, nil
	})
	if err != nil {
		h.sendFailure(w, "generate person", err)
		return
	}

	h.sendSuccess(w, "Person generated successfully", person)
}

// Location handles the generate location endpoint
func (h *ValueHandler) Location(w http.ResponseWriter, req *http.Request) {
	location, err := h.manager.With(req.Context(), chi.URLParam(req, "id"), func(gen *generator.Generator) (any, error) {
		var resp models.LocationResponse
		var err error
		if resp.Street, err = gen.Location().Street(); err != nil {
			return nil, err
		}
		if resp.City, err = gen.Location().City(); err != nil {
			return nil, err
		}
		if resp.ZipCode, err = gen.Location().ZipCode(); err != nil {
			return nil, err
		}
		if resp.Country, err = gen.Location().Country(); err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		h.sendFailure(w, "generate location", err)
		return
	}

	h.sendSuccess(w, "Location generated successfully", location)
}

// UUID handles the generate uuid endpoint
func (h *ValueHandler) UUID(w http.ResponseWriter, req *http.Request) {
	id, err := h.manager.With(req.Context(), chi.URLParam(req, "id"), func(gen *generator.Generator) (any, error) {
		return gen.Helpers().UUID(), nil
	})
	if err != nil {
		h.sendFailure(w, "generate uuid", err)
		return
	}

	h.sendSuccess(w, "UUID generated successfully", map[string]any{"uuid": id})
}
