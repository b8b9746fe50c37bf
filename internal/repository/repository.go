// Package repository defines the persistence contracts the seeding and
// verification flows depend on.
package repository

import (
	"context"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// CatalogWriter persists synthesized tenant batches. Implementations must
// write each batch atomically so a failed tenant leaves no partial rows.
type CatalogWriter interface {
	// Reset wipes all catalog rows for every tenant, leaving the schema in
	// place. Runs once before a full seeding pass.
	Reset(ctx context.Context) error

	// WriteTenant inserts every row of the batch in dependency order.
	WriteTenant(ctx context.Context, batch *domain.TenantBatch) error
}

// TenantSummary aggregates per-tenant row counts for the verification report.
type TenantSummary struct {
	TenantID   string
	Brands     int64
	Categories int64
	Products   int64
	Variants   int64
}

// PriceBucket is one row of the price distribution report.
type PriceBucket struct {
	Label string
	Count int64
}

// PromoStats summarizes promotional pricing across all variants.
type PromoStats struct {
	TotalVariants int64
	OnPromotion   int64
	AvgPrice      float64
	AvgPromoPrice float64
	MinPrice      float64
	MaxPrice      float64
}

// CategoryProductCount is one row of the products-per-subcategory report.
type CategoryProductCount struct {
	TenantID string
	Category string
	Products int64
}

// ProductSample is one randomly sampled product with its brand and category.
type ProductSample struct {
	Name     string
	Brand    string
	Category string
	Slug     string
}

// VariantSample is one sampled variant with its attribute assignments rendered
// as "Name: Value" pairs.
type VariantSample struct {
	SKU        string
	Product    string
	Price      float64
	PromoPrice *float64
	Attributes string
}

// CatalogReporter reads aggregate statistics for the verification report.
type CatalogReporter interface {
	TenantSummaries(ctx context.Context) ([]TenantSummary, error)
	PriceDistribution(ctx context.Context) ([]PriceBucket, error)
	PromoStats(ctx context.Context) (*PromoStats, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryProductCount, error)
	SampleProducts(ctx context.Context, limit int) ([]ProductSample, error)
	SampleVariants(ctx context.Context, limit int) ([]VariantSample, error)
}
