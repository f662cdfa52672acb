package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"safesignal/internal/api"
	"safesignal/internal/config"
	"safesignal/internal/geocode"
	rds "safesignal/internal/redis"
	"safesignal/internal/service"
	"safesignal/internal/storage/postgres"
	"safesignal/internal/workers"
	"safesignal/pkg/logger"
)

const (
	evalQueueKey     = "reports:eval:queue"
	deliveryQueueKey = "alerts:delivery:queue"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *rds.Redis

	Sweeper     *workers.Sweeper
	Refresher   *workers.CacheRefresher
	Evaluator   *workers.AlertEvaluator
	AlertSender *service.AlertSender
	Dedup       *service.Deduplicator
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
	redisClient, err := rds.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	reportCache := rds.NewReportCache(redisClient)
	evalQueue := rds.NewEvalQueue(redisClient.Client, evalQueueKey)
	deliveryQueue := rds.NewDeliveryQueue(redisClient.Client, deliveryQueueKey)
	deviceLocations := rds.NewDeviceLocationStore(redisClient, time.Hour)

	dedup := service.NewDeduplicator(cfg.Alerts.DedupTTL, logger)

	settingsSvc := service.NewSettingsService(storage.Settings())
	reportSvc := service.NewReportService(
		storage.Reports(),
		reportCache,
		evalQueue,
		deviceLocations,
		storage.Stats(),
		settingsSvc,
		logger,
		cfg.Reports.ExpireAfter,
		cfg.Reports.NearbyRadiusM,
	)
	favoriteSvc := service.NewFavoriteService(storage.Favorites(), logger)
	alertSvc := service.NewAlertService(
		storage.Alerts(),
		storage.Favorites(),
		deviceLocations,
		settingsSvc,
		deliveryQueue,
		dedup,
		logger,
	)
	statsSvc := service.NewStatsService(storage.Stats(), storage.Reports())

	svc := service.NewService(reportSvc, favoriteSvc, alertSvc, settingsSvc, statsSvc)

	geocoder := geocode.NewClient(cfg.Geocode, logger)

	httpServer := api.NewServer(cfg, logger, svc, geocoder)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Sweeper:     workers.NewSweeper(storage.Reports(), storage.Alerts(), logger, cfg.Reports.SweepInterval),
		Refresher:   workers.NewCacheRefresher(storage.Reports(), reportCache, logger, cfg.Reports.RefreshInterval, cfg.Reports.CacheTTL),
		Evaluator:   workers.NewAlertEvaluator(evalQueue, alertSvc, logger, cfg.Alerts.WorkerPoolSize),
		AlertSender: service.NewAlertSender(logger, cfg.Alerts, deliveryQueue),
		Dedup:       dedup,
	}, nil
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
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
