package postgres

import (
	"context"
	"fmt"

	"github.com/deliverymart/catalog-seeder/internal/repository"
	"github.com/deliverymart/catalog-seeder/pkg/database"
)

// ReportRepository implements repository.CatalogReporter using PostgreSQL.
type ReportRepository struct {
	pool database.DBTX
}

// NewReportRepository creates a new PostgreSQL-backed report repository.
func NewReportRepository(pool database.DBTX) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// TenantSummaries returns per-tenant row counts across the core tables.
func (r *ReportRepository) TenantSummaries(ctx context.Context) ([]repository.TenantSummary, error) {
	query := `
		SELECT t.tenant_id,
			   (SELECT COUNT(*) FROM brand b WHERE b.tenant_id = t.tenant_id),
			   (SELECT COUNT(*) FROM category c WHERE c.tenant_id = t.tenant_id),
			   (SELECT COUNT(*) FROM product p WHERE p.tenant_id = t.tenant_id),
			   (SELECT COUNT(*) FROM product_variant v WHERE v.tenant_id = t.tenant_id)
		FROM (SELECT DISTINCT tenant_id FROM brand) t
		ORDER BY t.tenant_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tenant summaries: %w", err)
	}
	defer rows.Close()

	var summaries []repository.TenantSummary
	for rows.Next() {
		var s repository.TenantSummary
		if err := rows.Scan(&s.TenantID, &s.Brands, &s.Categories, &s.Products, &s.Variants); err != nil {
			return nil, fmt.Errorf("scan tenant summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenant summaries: %w", err)
	}

	return summaries, nil
}

// PriceDistribution buckets variant base prices into fixed ranges.
func (r *ReportRepository) PriceDistribution(ctx context.Context) ([]repository.PriceBucket, error) {
	query := `
		SELECT CASE
				 WHEN price_amount < 50 THEN 'Under R$ 50'
				 WHEN price_amount < 100 THEN 'R$ 50 - R$ 100'
				 WHEN price_amount < 200 THEN 'R$ 100 - R$ 200'
				 WHEN price_amount < 500 THEN 'R$ 200 - R$ 500'
				 ELSE 'Over R$ 500'
			   END AS bucket,
			   COUNT(*)
		FROM product_variant
		GROUP BY bucket
		ORDER BY MIN(price_amount)`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query price distribution: %w", err)
	}
	defer rows.Close()

	var buckets []repository.PriceBucket
	for rows.Next() {
		var b repository.PriceBucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, fmt.Errorf("scan price bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price buckets: %w", err)
	}

	return buckets, nil
}

// PromoStats aggregates promotional pricing figures across all variants.
func (r *ReportRepository) PromoStats(ctx context.Context) (*repository.PromoStats, error) {
	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE promotional_price_amount IS NOT NULL),
			   COALESCE(AVG(price_amount), 0)::float8,
			   COALESCE(AVG(promotional_price_amount), 0)::float8,
			   COALESCE(MIN(price_amount), 0)::float8,
			   COALESCE(MAX(price_amount), 0)::float8
		FROM product_variant`

	var s repository.PromoStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalVariants,
		&s.OnPromotion,
		&s.AvgPrice,
		&s.AvgPromoPrice,
		&s.MinPrice,
		&s.MaxPrice,
	)
	if err != nil {
		return nil, fmt.Errorf("query promo stats: %w", err)
	}

	return &s, nil
}

// TopCategories returns the subcategories with the most products.
func (r *ReportRepository) TopCategories(ctx context.Context, limit int) ([]repository.CategoryProductCount, error) {
	query := `
		SELECT c.tenant_id, c.name, COUNT(p.id)
		FROM category c
		JOIN product p ON p.category_id = c.id
		WHERE c.parent_id IS NOT NULL
		GROUP BY c.tenant_id, c.name
		ORDER BY COUNT(p.id) DESC, c.name
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top categories: %w", err)
	}
	defer rows.Close()

	var counts []repository.CategoryProductCount
	for rows.Next() {
		var c repository.CategoryProductCount
		if err := rows.Scan(&c.TenantID, &c.Category, &c.Products); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return counts, nil
}

// SampleProducts returns a random sample of products with brand and category
// names resolved.
func (r *ReportRepository) SampleProducts(ctx context.Context, limit int) ([]repository.ProductSample, error) {
	query := `
		SELECT p.name, b.name, c.name, p.slug
		FROM product p
		JOIN brand b ON b.id = p.brand_id
		JOIN category c ON c.id = p.category_id
		ORDER BY RANDOM()
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query product samples: %w", err)
	}
	defer rows.Close()

	var samples []repository.ProductSample
	for rows.Next() {
		var s repository.ProductSample
		if err := rows.Scan(&s.Name, &s.Brand, &s.Category, &s.Slug); err != nil {
			return nil, fmt.Errorf("scan product sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product samples: %w", err)
	}

	return samples, nil
}

// SampleVariants returns a random sample of variants with their attribute
// assignments rendered as a comma-separated "Name: Value" list.
func (r *ReportRepository) SampleVariants(ctx context.Context, limit int) ([]repository.VariantSample, error) {
	query := `
		SELECT v.sku_code,
			   p.name,
			   v.price_amount::float8,
			   v.promotional_price_amount::float8,
			   COALESCE(STRING_AGG(CONCAT(a.name, ': ', av.value), ', ' ORDER BY a.name), '')
		FROM product_variant v
		JOIN product p ON p.id = v.product_id
		LEFT JOIN product_variant_attribute_values pvav ON pvav.variant_id = v.id
		LEFT JOIN attribute_value av ON av.id = pvav.attribute_value_id
		LEFT JOIN attribute a ON a.id = av.attribute_id
		GROUP BY v.id, v.sku_code, p.name, v.price_amount, v.promotional_price_amount
		ORDER BY RANDOM()
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query variant samples: %w", err)
	}
	defer rows.Close()

	var samples []repository.VariantSample
	for rows.Next() {
		var s repository.VariantSample
		if err := rows.Scan(&s.SKU, &s.Product, &s.Price, &s.PromoPrice, &s.Attributes); err != nil {
			return nil, fmt.Errorf("scan variant sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variant samples: %w", err)
	}

	return samples, nil
}
