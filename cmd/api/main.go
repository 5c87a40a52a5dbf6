package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "orcamentos_rtv/docs"
	"orcamentos_rtv/internal/adapter/http/routes"
	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Orçamentos RTV API
// @version         1.0
// @description     Production budgets, media rights and finance events for the RTV department.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "orcamentos-rtv"}).
			Error(context.Background(), "failed to load configuration", err, nil)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error(ctx, "api stopped", err, nil)
		stop()
		os.Exit(1)
	}
}
