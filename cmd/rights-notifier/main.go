// Command rights-notifier runs one expiration notification sweep over the
// media-rights records and exits. It is meant to be scheduled daily.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"orcamentos_rtv/internal/adapter/persistence/repository"
	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/internal/infrastructure/cache"
	"orcamentos_rtv/internal/infrastructure/database"
	"orcamentos_rtv/internal/infrastructure/notifier"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "rights-notifier"}).
			Error(context.Background(), "failed to load configuration", err, nil)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName + "-rights-notifier",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "rights sweep failed", err, nil)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if !cfg.Features.RightsNotifications {
		log.Info(ctx, "rights notifications disabled, nothing to do", nil)
		return nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return err
	}

	uc := usecase.NewRightsUseCase(
		repository.NewRightsDynamoRepository(ddb, cfg.Dynamo.RightsTable),
		repository.NewClientDynamoRepository(ddb, cfg.Dynamo.ClientsTable),
		repository.NewProductDynamoRepository(ddb, cfg.Dynamo.ProductsTable),
		notifier.NewLogNotifier(log),
		log,
	)

	if cfg.Redis.Enabled() {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		uc.WithLocker(cache.NewRedisLocker(rdb, cfg.Redis.SweepLockTTL))
	}

	return sweep(ctx, uc, log)
}

// sweep runs one pass. A sweep held elsewhere exits cleanly; any undelivered
// notification is an error.
func sweep(ctx context.Context, uc usecase.IRightsUseCase, log *logger.Logger) error {
	result, err := uc.SweepNotifications(ctx)
	if errors.Is(err, usecase.ErrSweepInProgress) {
		log.Warn(ctx, "another sweep is running, skipping", map[string]any{"lock": usecase.SweepLockKey})
		return nil
	}
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d rights notifications failed", result.Failed, result.Checked)
	}
	return nil
}
