// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"rocketreading/internal/config"
	"rocketreading/internal/middleware"
	"rocketreading/internal/service"
)

type RouterDeps struct {
	Scheduler service.SchedulerService
	Mastery   service.MasteryService
	Store     Pinger
	Logger    *slog.Logger
	CORS      config.CORSConfig
}

// NewRouter mounts the engine and evaluator under /api/v1/profiles/{profile_id}.
func NewRouter(deps RouterDeps) *chi.Mux {
	itemHandler := NewItemHandler(deps.Scheduler)
	progressHandler := NewProgressHandler(deps.Mastery)
	healthHandler := NewHealthHandler(deps.Store)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   deps.CORS.AllowedOrigins,
		AllowedMethods:   deps.CORS.AllowedMethods,
		AllowedHeaders:   deps.CORS.AllowedHeaders,
		ExposedHeaders:   deps.CORS.ExposedHeaders,
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1/profiles/{profile_id}", func(r chi.Router) {
		r.Use(middleware.ProfileContext)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.GetAllItems)
			r.Post("/seed", itemHandler.SeedItems)
			r.Get("/due", itemHandler.GetDueItems)
			r.Route("/{item_id}", func(r chi.Router) {
				r.Get("/state", itemHandler.GetItemState)
				r.Put("/state", itemHandler.UpdateItemState)
				r.Post("/reviews", itemHandler.LogReview)
				r.Get("/reviews/last", itemHandler.GetLastReview)
			})
		})

		r.Route("/worlds/{world}", func(r chi.Router) {
			r.Get("/progress", progressHandler.GetWorldProgress)
			r.Get("/complete", progressHandler.CheckWorldComplete)
		})

		r.Post("/curriculum/progress", progressHandler.GetProgress)
		r.Post("/curriculum/complete", progressHandler.CheckCurriculumComplete)
	})

	r.Get("/health", healthHandler.Health)

	return r
}
