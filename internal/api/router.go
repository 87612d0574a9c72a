package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"roadsketch/internal/api/handlers/http/public"
	"roadsketch/internal/api/handlers/http/sketches"
	"roadsketch/internal/api/handlers/http/system"
	"roadsketch/internal/config"
	"roadsketch/internal/domain"
	"roadsketch/internal/metrics"
	"roadsketch/internal/middleware"
	"roadsketch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Deps struct {
	Service *service.Service
	Metrics *metrics.Collector
	Pages   public.PageRenderer
	Checks  map[string]system.Pinger
}

// NewServer builds the router. ctx bounds the lifetime of the rate limiter
// sweepers.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps Deps) *Server {
	sketchHandler := sketches.NewHandler(logger, deps.Service.SketchService, deps.Service.ExportService)
	publicHandler := public.NewHandler(logger, deps.Service.GeocodeService, deps.Service.SketchService, deps.Service.ExportService, deps.Pages)
	systemHandler := system.NewHandler(logger, deps.Checks)

	r := InitRouter(ctx, cfg, sketchHandler, publicHandler, systemHandler, deps.Metrics, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	sketchHandler *sketches.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	m *metrics.Collector,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	// request_id попадает в лог chi.Logger
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.APIKeyHeader, middleware.OwnerHeader},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.APIKeyMiddleware(cfg.APIKey))

			pr.Get("/symbols", publicHandler.Symbols)
			pr.With(middleware.Limit(ctx, 5, 10, 10*time.Minute, logger)).
				Get("/geocode", publicHandler.Geocode)

			pr.Route("/sketches", func(sr chi.Router) {
				sr.Use(middleware.Owner)
				sr.Use(middleware.Limit(ctx, 20, 40, 10*time.Minute, logger))

				bind := middleware.BindJSON[domain.SaveSketchRequest](middleware.DefaultMaxBody)

				sr.With(bind).Post("/", sketchHandler.SketchCreate)
				sr.Get("/", sketchHandler.SketchList)

				sr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", sketchHandler.SketchGet)
					rr.With(bind).Put("/", sketchHandler.SketchUpdate)
					rr.Delete("/", sketchHandler.SketchDelete)
					rr.Get("/export.png", sketchHandler.SketchExport)
				})
			})
		})
	})

	// SHARE (без API key)
	r.Route("/share/{id}", func(sh chi.Router) {
		sh.Use(middleware.Limit(ctx, 5, 20, 10*time.Minute, logger))
		sh.Get("/", publicHandler.SharePage)
		sh.Get("/image.png", publicHandler.ShareImage)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
