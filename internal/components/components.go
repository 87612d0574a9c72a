package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"roadsketch/internal/api"
	"roadsketch/internal/api/handlers/http/system"
	"roadsketch/internal/config"
	"roadsketch/internal/export"
	"roadsketch/internal/geocode"
	"roadsketch/internal/metrics"
	"roadsketch/internal/render"
	"roadsketch/internal/service"
	"roadsketch/internal/storage/postgres"
	"roadsketch/internal/storage/redis"
	"roadsketch/internal/workers"
	"roadsketch/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	Events        *redis.EventQueue
	ExportPool    *workers.ExportPool
	WebhookSender *service.WebhookSender
	Metrics       *metrics.Collector

	wg sync.WaitGroup
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	m := metrics.NewCollector("roadsketch")

	events := redis.NewEventQueue(redisClient.Client, cfg.Webhook.QueueKey)
	geocodeCache := redis.NewGeocodeCache(redisClient, cfg.Geocode.CacheTTL)

	nominatim, err := geocode.NewNominatim(geocode.NominatimConfig{
		BaseURL:   cfg.Geocode.BaseURL,
		UserAgent: cfg.Geocode.UserAgent,
		Limit:     cfg.Geocode.Limit,
		Timeout:   cfg.Geocode.Timeout,
	}, logger.With(slog.String("component", "geocode")))
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init geocoder: %w", err)
	}

	tiles := export.NewHTTPTiles(cfg.Export.TileURL, cfg.Geocode.UserAgent, cfg.Export.TileTimeout)
	renderer := export.NewRenderer(tiles, logger.With(slog.String("component", "export")))
	pool := workers.NewExportPool(renderer, cfg.Export.Workers, cfg.Export.QueueSize, cfg.Export.JobTimeout, logger)
	pool.OnJobDone(func(d time.Duration, err error) {
		m.ExportDuration.Observe(d.Seconds())
	})

	var queue service.EventQueue
	if !cfg.Webhook.Disabled {
		queue = events
	}

	repo := storage.Sketches()
	sketchSvc := service.NewSketchService(repo, queue, logger, m)
	geocodeSvc := service.NewGeocodeService(nominatim, geocodeCache, cfg.Geocode.MinLength, logger, m)
	exportSvc := service.NewExportService(repo, pool, service.ExportOptions{
		Width:  cfg.Export.Width,
		Height: cfg.Export.Height,
		Zoom:   cfg.Export.Zoom,
	}, logger, m)

	srv := service.NewService(sketchSvc, geocodeSvc, exportSvc)

	pages, err := render.NewRenderer()
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	httpServer := api.NewServer(ctx, cfg, logger, api.Deps{
		Service: srv,
		Metrics: m,
		Pages:   pages,
		Checks: map[string]system.Pinger{
			"postgres": storage,
			"redis":    redisClient,
		},
	})
	logger.Info("Initialized server")

	c := &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Events:     events,
		ExportPool: pool,
		Metrics:    m,
	}
	if !cfg.Webhook.Disabled {
		c.WebhookSender = service.NewWebhookSender(logger, cfg.Webhook, events, m)
	}
	return c, nil
}

// StartWorkers runs the export pool and, when enabled, the webhook sender
// until ctx is cancelled. ShutdownAll waits for them.
func (c *Components) StartWorkers(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.ExportPool.Run(ctx)
	}()

	if c.WebhookSender != nil {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.WebhookSender.Run(ctx)
		}()
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.wg.Wait()

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
