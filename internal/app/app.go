package app

import (
	"net/http"

	"go.uber.org/zap"

	"office-hours/internal/domain"
	transport "office-hours/internal/http"
	"office-hours/internal/http/handlers"
	"office-hours/internal/repository"
	"office-hours/internal/service"
)

type Options struct {
	StaticDir      string
	AdminRateLimit int
}

type App struct {
	handler http.Handler
}

func New(store repository.OverrideStore, weekly domain.WeeklyDefault, clock service.Clock, opts Options, logger *zap.Logger) *App {
	scheduleService := service.NewScheduleService(store, weekly, clock, logger)

	statusHandler := handlers.NewStatusHandler(scheduleService, logger)
	adminHandler := handlers.NewAdminHandler(scheduleService, logger)
	router := transport.NewRouter(
		transport.RouterConfig{StaticDir: opts.StaticDir, AdminRateLimit: opts.AdminRateLimit},
		logger,
		statusHandler,
		adminHandler,
	)

	return &App{handler: router.Handler()}
}

func (a *App) Handler() http.Handler {
	return a.handler
}
