package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/deliverymart/catalog-seeder/pkg/config"
	"github.com/deliverymart/catalog-seeder/pkg/database"
)

// Config holds all configuration for the catalog seeder.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"mscatalog_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	PostgresMaxConns int32 `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	PostgresMinConns int32 `env:"POSTGRES_MIN_CONNS" envDefault:"2"`

	// Synthesis
	RandomSeed          uint64  `env:"SEED_RANDOM_SEED" envDefault:"0"`
	ProductsPerCategory int     `env:"SEED_PRODUCTS_PER_CATEGORY" envDefault:"8"`
	MinVariants         int     `env:"SEED_MIN_VARIANTS" envDefault:"3"`
	MaxVariants         int     `env:"SEED_MAX_VARIANTS" envDefault:"8"`
	MinPrice            float64 `env:"SEED_PRICE_MIN" envDefault:"29.90"`
	MaxPrice            float64 `env:"SEED_PRICE_MAX" envDefault:"999.90"`
	PromoProbability    float64 `env:"SEED_PROMO_PROBABILITY" envDefault:"0.3"`
	Currency            string  `env:"SEED_CURRENCY" envDefault:"BRL"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load seeder config: %w", err)
	}

	if cfg.ProductsPerCategory < 1 {
		return nil, fmt.Errorf("SEED_PRODUCTS_PER_CATEGORY must be at least 1, got %d", cfg.ProductsPerCategory)
	}
	if cfg.MinVariants < 1 || cfg.MaxVariants < cfg.MinVariants {
		return nil, fmt.Errorf("invalid variant range: min %d, max %d", cfg.MinVariants, cfg.MaxVariants)
	}
	if cfg.MinPrice <= 0 || cfg.MaxPrice <= cfg.MinPrice {
		return nil, fmt.Errorf("invalid price range: min %.2f, max %.2f", cfg.MinPrice, cfg.MaxPrice)
	}
	if cfg.PromoProbability < 0 || cfg.PromoProbability > 1 {
		return nil, fmt.Errorf("SEED_PROMO_PROBABILITY must be between 0 and 1, got %g", cfg.PromoProbability)
	}

	return cfg, nil
}

// Postgres converts the flat environment fields into a database pool config.
func (c *Config) Postgres() *database.PostgresConfig {
	return &database.PostgresConfig{
		Host:            c.PostgresHost,
		Port:            c.PostgresPort,
		User:            c.PostgresUser,
		Password:        c.PostgresPass,
		DBName:          c.PostgresDB,
		SSLMode:         c.PostgresSSL,
		MaxConns:        c.PostgresMaxConns,
		MinConns:        c.PostgresMinConns,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}
}
