package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/dkwak/sleepcoach/docs"
	"github.com/dkwak/sleepcoach/internal/api/handler"
	"github.com/dkwak/sleepcoach/internal/api/middleware"
	"github.com/dkwak/sleepcoach/internal/auth"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	authHandler           *handler.AuthHandler
	scheduleHandler       *handler.ScheduleHandler
	fatigueHandler        *handler.FatigueHandler
	sleepLogHandler       *handler.SleepLogHandler
	recommendationHandler *handler.RecommendationHandler
	sessions              repository.SessionRepository
	logger                *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	scheduleHandler *handler.ScheduleHandler,
	fatigueHandler *handler.FatigueHandler,
	sleepLogHandler *handler.SleepLogHandler,
	recommendationHandler *handler.RecommendationHandler,
	sessions repository.SessionRepository,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:           authHandler,
		scheduleHandler:       scheduleHandler,
		fatigueHandler:        fatigueHandler,
		sleepLogHandler:       sleepLogHandler,
		recommendationHandler: recommendationHandler,
		sessions:              sessions,
		logger:                logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
			r.Post("/logout", rt.authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(rt.sessions))
				r.Get("/me", rt.authHandler.Me)
			})
		})

		// Everything below needs a valid session.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(rt.sessions))

			r.Route("/schedule", func(r chi.Router) {
				r.Post("/", rt.scheduleHandler.Create)
				r.Get("/", rt.scheduleHandler.List)
				r.Delete("/{eventId}", rt.scheduleHandler.Delete)
			})

			r.Route("/fatigue", func(r chi.Router) {
				r.Post("/", rt.fatigueHandler.Upsert)
				r.Get("/", rt.fatigueHandler.List)
			})

			r.Route("/sleep", func(r chi.Router) {
				r.Get("/", rt.sleepLogHandler.Get)
				r.Post("/", rt.sleepLogHandler.Upsert)
			})

			r.Post("/recommendations", rt.recommendationHandler.Recommend)
		})
	})

	return r
}
