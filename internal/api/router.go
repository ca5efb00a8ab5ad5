package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/middleware"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/config"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, snapshotService *service.SnapshotService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(snapshotService)
			positionsHandler := handlers.NewPositionsHandler(snapshotService)
			historyHandler := handlers.NewHistoryHandler(snapshotService)
			r.Get("/", portfolioHandler.Overview)
			r.Post("/refresh", portfolioHandler.Refresh)
			r.Get("/positions", positionsHandler.Positions)
			r.Get("/history", historyHandler.History)
		})
	})

	return r
}
