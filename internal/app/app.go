// Package app wires together all dependencies and runs the seeding flow.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deliverymart/catalog-seeder/internal/config"
	"github.com/deliverymart/catalog-seeder/internal/repository/postgres"
	"github.com/deliverymart/catalog-seeder/internal/service"
	"github.com/deliverymart/catalog-seeder/internal/synth"
	"github.com/deliverymart/catalog-seeder/migrations"
	"github.com/deliverymart/catalog-seeder/pkg/database"
	"github.com/deliverymart/catalog-seeder/pkg/logger"
)

// App holds the seeder's dependency graph.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	seeder *service.Seeder
}

// NewApp creates a new application instance, connecting to PostgreSQL and
// applying pending migrations.
func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPoolWithLogger(ctx, cfg.Postgres(), log)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	log.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)

	if err := database.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("database migrations completed")

	synthCfg := synth.DefaultConfig()
	synthCfg.ProductsPerCategory = cfg.ProductsPerCategory
	synthCfg.MinVariants = cfg.MinVariants
	synthCfg.MaxVariants = cfg.MaxVariants
	synthCfg.Pricing.MinPrice = cfg.MinPrice
	synthCfg.Pricing.MaxPrice = cfg.MaxPrice
	synthCfg.Pricing.PromoProbability = cfg.PromoProbability
	synthCfg.Pricing.Currency = cfg.Currency

	synthesizer := synth.New(synthCfg, synth.NewRand(cfg.RandomSeed), log)
	writer := postgres.NewCatalogRepository(pool)
	seeder := service.NewSeeder(writer, synthesizer, log)

	return &App{
		cfg:    cfg,
		logger: log,
		pool:   pool,
		seeder: seeder,
	}, nil
}

// Run seeds the built-in tenants and logs a run summary. Each run carries a
// correlation ID so its log lines can be grouped.
func (a *App) Run(ctx context.Context) error {
	ctx = logger.WithCorrelationID(ctx, uuid.NewString())
	log := logger.WithContext(ctx, a.logger)

	specs := synth.BuiltinTenants()
	log.Info("starting seed run",
		slog.Int("tenants", len(specs)),
		slog.Uint64("seed", a.cfg.RandomSeed),
	)

	summary, err := a.seeder.Run(ctx, specs)
	if err != nil {
		return err
	}

	log.Info("seed run completed",
		slog.Int("tenants", summary.Tenants),
		slog.Int("products", summary.Products),
		slog.Int("variants", summary.Variants),
		slog.Int("rows", summary.Rows),
		slog.Duration("duration", summary.Duration),
	)

	return nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
	a.logger.Info("application shutdown complete")
}
