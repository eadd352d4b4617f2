package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Project-Sylos/Mirage/internal/generator"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/modules"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// BaseHandler provides common functionality for all API handlers
type BaseHandler struct{}

// sendJSON sends a JSON response with the given status code and data
func (h *BaseHandler) sendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response with the given status code and message
func (h *BaseHandler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, types.APIResponse{
		Success: false,
		Message: message,
	})
}

// sendSuccess sends a success response with the given data
func (h *BaseHandler) sendSuccess(w http.ResponseWriter, message string, data any) {
	h.sendJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// sendCreated sends a 201 response with the given data
func (h *BaseHandler) sendCreated(w http.ResponseWriter, message string, data any) {
	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// sendFailure maps err to a status code and sends it with action as context
func (h *BaseHandler) sendFailure(w http.ResponseWriter, action string, err error) {
	h.sendError(w, statusFor(err), fmt.Sprintf("Failed to %s: %v", action, err))
}

// decodeJSON decodes the request body into v. An empty body leaves v unchanged.
func (h *BaseHandler) decodeJSON(req *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, locale.ErrMissingLocaleData):
		return http.StatusNotFound
	case errors.Is(err, locale.ErrUnsupportedLocale),
		errors.Is(err, generator.ErrConfiguration),
		errors.Is(err, session.ErrInvalidRequest),
		errors.Is(err, modules.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
