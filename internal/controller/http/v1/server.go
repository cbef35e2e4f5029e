package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/parquet_loader/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	runsRepo RunsRepository,
	outcomesRepo OutcomesRepository,
	runRequester RunRequester,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(NewRunsHandler(runsRepo, outcomesRepo, runRequester)),
		},
	}
}

func NewRouter(h *RunsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/runs", h.GetRuns)
		r.Post("/runs", h.TriggerRun)
		r.Get("/runs/{run_id}", h.GetRun)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
