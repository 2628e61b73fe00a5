package router

import (
	"net/http"

	"lightningcath-stock-api/internal/handler"
	"lightningcath-stock-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	StockHandler   *handler.StockHandler
	RFQHandler     *handler.RFQHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware func(http.Handler) http.Handler
	Logger         *zap.Logger
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Admin-Token"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		// Public stock browsing
		if cfg.StockHandler != nil {
			r.Route("/stock", func(r chi.Router) {
				r.Get("/", cfg.StockHandler.List)
				r.Get("/families", cfg.StockHandler.Families)
				r.Get("/categories", cfg.StockHandler.Categories)
				r.Get("/export/csv", cfg.StockHandler.ExportCSV)
				r.Get("/export/json", cfg.StockHandler.ExportJSON)
			})
			r.Route("/services", func(r chi.Router) {
				r.Get("/", cfg.StockHandler.Services)
				r.Get("/{service_id}/lead-time", cfg.StockHandler.LeadTime)
			})
		}

		// Quote requests
		if cfg.RFQHandler != nil {
			r.Route("/rfq", func(r chi.Router) {
				r.Post("/", cfg.RFQHandler.Submit)
				r.Post("/preview", cfg.RFQHandler.Preview)
			})
		}

		// Admin surface; login is the only unguarded route
		if cfg.AdminHandler != nil {
			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", cfg.AdminHandler.Login)

				r.Group(func(r chi.Router) {
					if cfg.AuthMiddleware != nil {
						r.Use(cfg.AuthMiddleware)
					}

					r.Post("/logout", cfg.AdminHandler.Logout)
					r.Get("/stats", cfg.AdminHandler.Stats)

					r.Route("/stock", func(r chi.Router) {
						r.Get("/", cfg.AdminHandler.List)
						r.Post("/", cfg.AdminHandler.Add)
						r.Put("/{id}", cfg.AdminHandler.Update)
						r.Delete("/{id}", cfg.AdminHandler.Delete)
						r.Patch("/{id}/quantity", cfg.AdminHandler.SetQuantity)
						r.Post("/import", cfg.AdminHandler.Import)
						r.Post("/undo", cfg.AdminHandler.Undo)
						r.Post("/reset", cfg.AdminHandler.Reset)
						r.Post("/refresh", cfg.AdminHandler.Refresh)
						r.Get("/export/csv", cfg.AdminHandler.ExportCSV)
					})
				})
			})
		}
	})

	return r
}
