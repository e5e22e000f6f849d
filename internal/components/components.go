package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/swetha221234/smart-rural-connect/internal/api"
	"github.com/swetha221234/smart-rural-connect/internal/config"
	"github.com/swetha221234/smart-rural-connect/internal/redis"
	"github.com/swetha221234/smart-rural-connect/internal/service"
	"github.com/swetha221234/smart-rural-connect/internal/storage/postgres"
	"github.com/swetha221234/smart-rural-connect/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
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
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	reportCache := redis.NewReportCache(redisClient)

	repo := storage.Complaints()
	registrationSvc := service.NewRegistrationService(repo, reportCache, logger)
	lifecycleSvc := service.NewLifecycleService(repo, reportCache, logger)
	reportSvc := service.NewReportService(repo, reportCache, logger, cfg.Report.CacheTTL)
	auth := service.NewAuthenticator(cfg.AdminSecret)

	srv := service.NewService(registrationSvc, lifecycleSvc, reportSvc, auth)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
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
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
