package api

import (
	"time"

	"github.com/Project-Sylos/Mirage/internal/api/handlers"
	apimiddleware "github.com/Project-Sylos/Mirage/internal/api/middleware"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router represents the HTTP API router
type Router struct {
	manager *session.Manager
	config  *types.Config
}

// NewRouter creates a new API router
func NewRouter(manager *session.Manager, config *types.Config) *Router {
	return &Router{manager: manager, config: config}
}

// SetupRoutes configures all API routes using modular handlers
func (r *Router) SetupRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Standard middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Timeout(60 * time.Second))

	// Custom middleware
	router.Use(apimiddleware.CORS)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	sessionHandler := handlers.NewSessionHandler(r.manager)
	valueHandler := handlers.NewValueHandler(r.manager)
	systemHandler := handlers.NewSystemHandler(r.manager, r.config)

	// Health check
	router.Get("/health", healthHandler.HealthCheck)

	// API routes
	router.Route("/api/v1", func(api chi.Router) {
		// System operations
		api.Get("/locales", systemHandler.GetLocales)
		api.Get("/config", systemHandler.GetConfig)

		// Session operations
		api.Route("/sessions", func(sessions chi.Router) {
			sessions.Post("/", sessionHandler.CreateSession)
			sessions.Get("/", sessionHandler.ListSessions)

			sessions.Route("/{id}", func(s chi.Router) {
				s.Get("/", sessionHandler.GetSession)
				s.Delete("/", sessionHandler.DeleteSession)
				s.Post("/seed", sessionHandler.Reseed)
				s.Put("/locale", sessionHandler.SetLocale)
				s.Post("/draws", sessionHandler.Draw)
				s.Post("/fork", sessionHandler.Fork)
				s.Post("/derive", sessionHandler.Derive)

				// Locale data and generated values
				s.Get("/definitions/{module}", valueHandler.ListEntries)
				s.Get("/definitions/{module}/{entry}", valueHandler.GetEntry)
				s.Get("/person", valueHandler.Person)
				s.Get("/location", valueHandler.Location)
				s.Get("/uuid", valueHandler.UUID)
			})
		})
	})

	return router
}
