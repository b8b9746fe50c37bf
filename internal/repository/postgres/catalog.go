// Package postgres implements the catalog persistence contracts against
// PostgreSQL using pgx bulk copy.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deliverymart/catalog-seeder/internal/domain"
	"github.com/deliverymart/catalog-seeder/pkg/database"
)

// resetOrder lists the catalog tables in reverse dependency order so deletes
// never hit a foreign key.
var resetOrder = []string{
	"collection_products",
	"collection",
	"product_variant_attribute_values",
	"product_tags",
	"product_variant",
	"product",
	"attribute_value",
	"attribute",
	"category",
	"brand",
}

// CatalogRepository implements repository.CatalogWriter using PostgreSQL.
type CatalogRepository struct {
	pool database.DBTX
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool database.DBTX) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Reset deletes all catalog rows across every tenant inside one transaction.
func (r *CatalogRepository) Reset(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, table := range resetOrder {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}

	return nil
}

// WriteTenant bulk-inserts every row of the batch inside one transaction,
// walking the slices in dependency order.
func (r *CatalogRepository) WriteTenant(ctx context.Context, batch *domain.TenantBatch) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin write tenant: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := copyBrands(ctx, tx, batch.Brands); err != nil {
		return err
	}
	if err := copyCategories(ctx, tx, batch.Categories); err != nil {
		return err
	}
	if err := copyAttributes(ctx, tx, batch.Attributes); err != nil {
		return err
	}
	if err := copyAttributeValues(ctx, tx, batch.AttributeValues); err != nil {
		return err
	}
	if err := copyProducts(ctx, tx, batch.Products); err != nil {
		return err
	}
	if err := copyProductTags(ctx, tx, batch.Tags); err != nil {
		return err
	}
	if err := copyVariants(ctx, tx, batch.Variants); err != nil {
		return err
	}
	if err := copyVariantAttributes(ctx, tx, batch.VariantAttributes); err != nil {
		return err
	}
	if err := copyCollections(ctx, tx, batch.Collections); err != nil {
		return err
	}
	if err := copyCollectionProducts(ctx, tx, batch.CollectionProducts); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit write tenant: %w", err)
	}

	return nil
}

func copyBrands(ctx context.Context, tx pgx.Tx, brands []domain.Brand) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"brand"},
		[]string{"id", "tenant_id", "name", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(brands), func(i int) ([]any, error) {
			b := brands[i]
			return []any{b.ID, b.TenantID, b.Name, b.CreatedAt, b.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy brands: %w", err)
	}
	return nil
}

// copyCategories relies on the batch ordering parents before children: COPY
// streams rows in slice order, so a child never references an unseen parent.
func copyCategories(ctx context.Context, tx pgx.Tx, categories []domain.Category) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"category"},
		[]string{"id", "tenant_id", "name", "parent_id", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(categories), func(i int) ([]any, error) {
			c := categories[i]
			return []any{c.ID, c.TenantID, c.Name, c.ParentID, c.CreatedAt, c.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy categories: %w", err)
	}
	return nil
}

func copyAttributes(ctx context.Context, tx pgx.Tx, attributes []domain.Attribute) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"attribute"},
		[]string{"id", "tenant_id", "name", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(attributes), func(i int) ([]any, error) {
			a := attributes[i]
			return []any{a.ID, a.TenantID, a.Name, a.CreatedAt, a.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy attributes: %w", err)
	}
	return nil
}

func copyAttributeValues(ctx context.Context, tx pgx.Tx, values []domain.AttributeValue) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"attribute_value"},
		[]string{"id", "tenant_id", "value", "attribute_id", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(values), func(i int) ([]any, error) {
			v := values[i]
			return []any{v.ID, v.TenantID, v.Value, v.AttributeID, v.CreatedAt, v.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy attribute values: %w", err)
	}
	return nil
}

func copyProducts(ctx context.Context, tx pgx.Tx, products []domain.Product) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"product"},
		[]string{"id", "tenant_id", "name", "description", "brand_id", "category_id", "slug", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.ID, p.TenantID, p.Name, p.Description, p.BrandID, p.CategoryID, p.Slug, p.CreatedAt, p.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy products: %w", err)
	}
	return nil
}

func copyProductTags(ctx context.Context, tx pgx.Tx, tags []domain.ProductTag) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"product_tags"},
		[]string{"product_id", "tag"},
		pgx.CopyFromSlice(len(tags), func(i int) ([]any, error) {
			t := tags[i]
			return []any{t.ProductID, t.Tag}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy product tags: %w", err)
	}
	return nil
}

func copyVariants(ctx context.Context, tx pgx.Tx, variants []domain.ProductVariant) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"product_variant"},
		[]string{
			"id", "tenant_id", "sku_code", "barcode",
			"price_amount", "price_currency",
			"promotional_price_amount", "promotional_price_currency",
			"weight", "height", "width", "depth",
			"product_id", "created_at", "updated_at",
		},
		pgx.CopyFromSlice(len(variants), func(i int) ([]any, error) {
			v := variants[i]
			var promoAmount *float64
			var promoCurrency *string
			if v.PromotionalPrice != nil {
				promoAmount = &v.PromotionalPrice.Amount
				promoCurrency = &v.PromotionalPrice.Currency
			}
			return []any{
				v.ID, v.TenantID, v.SKU, v.Barcode,
				v.Price.Amount, v.Price.Currency,
				promoAmount, promoCurrency,
				v.Weight, v.Height, v.Width, v.Depth,
				v.ProductID, v.CreatedAt, v.UpdatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy variants: %w", err)
	}
	return nil
}

func copyVariantAttributes(ctx context.Context, tx pgx.Tx, links []domain.VariantAttributeValue) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"product_variant_attribute_values"},
		[]string{"variant_id", "attribute_value_id"},
		pgx.CopyFromSlice(len(links), func(i int) ([]any, error) {
			l := links[i]
			return []any{l.VariantID, l.AttributeValueID}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy variant attribute values: %w", err)
	}
	return nil
}

func copyCollections(ctx context.Context, tx pgx.Tx, collections []domain.Collection) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"collection"},
		[]string{"id", "tenant_id", "name", "start_date", "end_date", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(collections), func(i int) ([]any, error) {
			c := collections[i]
			return []any{c.ID, c.TenantID, c.Name, c.StartDate, c.EndDate, c.CreatedAt, c.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy collections: %w", err)
	}
	return nil
}

func copyCollectionProducts(ctx context.Context, tx pgx.Tx, memberships []domain.CollectionProduct) error {
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"collection_products"},
		[]string{"collection_id", "product_id"},
		pgx.CopyFromSlice(len(memberships), func(i int) ([]any, error) {
			m := memberships[i]
			return []any{m.CollectionID, m.ProductID}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy collection products: %w", err)
	}
	return nil
}
