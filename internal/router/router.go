package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/saulo-duarte/quizmo-api/internal/aiquiz"
	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/history"
	"github.com/saulo-duarte/quizmo-api/internal/metrics"
	"github.com/saulo-duarte/quizmo-api/internal/middlewares"
	"github.com/saulo-duarte/quizmo-api/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	UserService    user.Service
	HistoryHandler *history.Handler
	AIQuizHandler  *aiquiz.Handler
	RateLimiter    *middlewares.RateLimiter
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Metrics)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	var generateMiddlewares []func(http.Handler) http.Handler
	if cfg.RateLimiter != nil {
		generateMiddlewares = append(generateMiddlewares, cfg.RateLimiter.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/generate", aiquiz.Routes(cfg.AIQuizHandler, generateMiddlewares...))
		r.Mount("/auth", user.Routes(cfg.UserHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Use(user.RequireUser(cfg.UserService))

			r.Mount("/history", history.Routes(cfg.HistoryHandler))
		})
	})

	return otelhttp.NewHandler(r, "quizmo-api")
}
