package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	BaseHandler
	manager *session.Manager
	config  *types.Config
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(manager *session.Manager, config *types.Config) *SystemHandler {
	return &SystemHandler{
		manager: manager,
		config:  config,
	}
}

// GetLocales handles the list locales endpoint
func (h *SystemHandler) GetLocales(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Locales retrieved successfully", h.manager.Locales())
}

// GetConfig handles the get config endpoint
func (h *SystemHandler) GetConfig(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Config retrieved successfully", h.config)
}
