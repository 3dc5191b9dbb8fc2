package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	handlers "github.com/pm-tools/teampulse/pkg/handlers/metrics"
	teampulsemiddleware "github.com/pm-tools/teampulse/pkg/server/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Engine handlers.MetricsService
	Events handlers.EventBus
	Logger zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the metrics API onto a chi router.
func ConfigureRouter(config Config) *chi.Mux {
	h := handlers.NewHandler(config.Dependencies.Engine, config.Dependencies.Events)

	router := chi.NewRouter()
	router.Use(teampulsemiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects/{projectID}/rate", h.GetRate)
		r.Get("/projects/{projectID}/salaries", h.GetSalaries)
		r.Get("/projects/{projectID}/report", h.GetFinancialReport)
		r.Get("/projects/{projectID}/metrics", h.GetProjectMetrics)
		r.Get("/sprints/{sprintID}/metrics", h.GetSprintMetrics)
		r.Get("/dashboard", h.GetDashboard)
		r.Post("/events", h.PublishEvent)
		r.Get("/events/projects", h.StreamProjectEvents)
		r.Get("/events/dashboard", h.StreamDashboardEvents)
	})

	return router
}

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

// Start serves until the listener fails or the process receives SIGINT or
// SIGTERM, then drains outstanding requests within the shutdown timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
