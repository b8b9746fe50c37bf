package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/deliverymart/catalog-seeder/internal/app"
	"github.com/deliverymart/catalog-seeder/internal/config"
	"github.com/deliverymart/catalog-seeder/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Load a local .env file if one exists.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("catalog-seeder", cfg.LogLevel)
	log.Info("starting catalog seeder",
		slog.String("environment", cfg.Environment),
		slog.String("database", cfg.PostgresDB),
	)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer application.Close()

	// Cancel the run on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("run seeder: %w", err)
	}

	log.Info("catalog seeder finished")
	return nil
}
