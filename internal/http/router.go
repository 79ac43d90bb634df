package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"office-hours/internal/http/handlers"
	"office-hours/internal/http/middleware"
)

type RouterConfig struct {
	StaticDir      string
	AdminRateLimit int
}

type Router struct {
	mux *chi.Mux
}

func NewRouter(
	cfg RouterConfig,
	logger *zap.Logger,
	statusHandler *handlers.StatusHandler,
	adminHandler *handlers.AdminHandler,
) *Router {
	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.RequestLogger(logger))
	mux.Use(chimiddleware.Recoverer)

	statusHandler.Register(mux)

	mux.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.AdminRateLimit, time.Minute))
		adminHandler.Register(r)
	})

	if cfg.StaticDir != "" {
		mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	return &Router{mux: mux}
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
