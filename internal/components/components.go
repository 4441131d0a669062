package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cadizaccesible/internal/api"
	"cadizaccesible/internal/config"
	"cadizaccesible/internal/migrate"
	"cadizaccesible/internal/redis"
	"cadizaccesible/internal/service"
	"cadizaccesible/internal/storage/postgres"
	"cadizaccesible/internal/workers"
	"cadizaccesible/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	StatusQ        *redis.StatusQueue
	WebhookSender  *service.WebhookSender
	StatsRefresher *workers.StatsRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Applying migrations")
	if err := migrate.Up(ctx, cfg.Postgres.DSN()); err != nil {
		logger.Error("Failed to migrate", slog.Any("error", err))
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	statusQueue := redis.NewStatusQueue(redisClient.Client, "incidents:status-events")
	statsCache := redis.NewStatsCache(redisClient)

	workflow := service.NewStatusWorkflow(storage.Incidents, statusQueue, logger)
	incidentSvc := service.NewIncidentService(storage.Incidents, workflow, logger)
	statsSvc := service.NewStatsService(storage.Incidents, statsCache, logger)
	accountSvc := service.NewAccountService(storage.Accounts, logger)

	svc := service.NewService(incidentSvc, workflow, statsSvc, accountSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	var sender *service.WebhookSender
	if !cfg.Webhook.Disabled {
		sender = service.NewWebhookSender(logger, cfg.Webhook, statusQueue)
	}

	refresher := workers.NewStatsRefresher(statsSvc, statsCache, storage.Incidents, logger)

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		StatusQ:        statusQueue,
		WebhookSender:  sender,
		StatsRefresher: refresher,
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

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
