package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deliverymart/catalog-seeder/internal/domain"
	"github.com/deliverymart/catalog-seeder/pkg/database"
)

func setupCatalogRepo(t *testing.T) (*CatalogRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCatalogRepository(mock), mock
}

func sampleBatch() *domain.TenantBatch {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	parent := "0b9f3e44-1111-4a61-9c2a-000000000001"
	promo := domain.Money{Amount: 69.93, Currency: "BRL"}

	return &domain.TenantBatch{
		Tenant: domain.Tenant{
			ID:        "d2f1a7b0-0000-4000-8000-000000000000",
			Name:      "Suplementos Max",
			StoreType: domain.StoreTypeSupplements,
			CreatedAt: now,
		},
		Brands: []domain.Brand{
			{ID: "b-1", TenantID: "t-1", Name: "Growth", CreatedAt: now, UpdatedAt: now},
		},
		Categories: []domain.Category{
			{ID: parent, TenantID: "t-1", Name: "Proteins", CreatedAt: now, UpdatedAt: now},
			{ID: "c-2", TenantID: "t-1", Name: "Whey Protein", ParentID: &parent, CreatedAt: now, UpdatedAt: now},
		},
		Attributes: []domain.Attribute{
			{ID: "a-1", TenantID: "t-1", Name: "Flavor", CreatedAt: now, UpdatedAt: now},
		},
		AttributeValues: []domain.AttributeValue{
			{ID: "av-1", TenantID: "t-1", Value: "Chocolate", AttributeID: "a-1", CreatedAt: now, UpdatedAt: now},
		},
		Products: []domain.Product{
			{
				ID: "p-1", TenantID: "t-1", Name: "Growth Whey Protein Pro",
				Description: "Growth Whey Protein Pro formulated to maximize your results.",
				BrandID:     "b-1", CategoryID: "c-2", Slug: "growth-whey-protein-pro-ab12cd34",
				CreatedAt: now, UpdatedAt: now,
			},
		},
		Tags: []domain.ProductTag{
			{ProductID: "p-1", Tag: "whey protein"},
		},
		Variants: []domain.ProductVariant{
			{
				ID: "v-1", TenantID: "t-1", SKU: "GRO-AB12CD34", Barcode: "7891234567890",
				Price:            domain.Money{Amount: 99.90, Currency: "BRL"},
				PromotionalPrice: &promo,
				Weight:           0.9, Height: 20, Width: 15, Depth: 15,
				ProductID: "p-1", CreatedAt: now, UpdatedAt: now,
			},
		},
		VariantAttributes: []domain.VariantAttributeValue{
			{VariantID: "v-1", AttributeValueID: "av-1"},
		},
		Collections: []domain.Collection{
			{ID: "col-1", TenantID: "t-1", Name: "Season Highlights", CreatedAt: now, UpdatedAt: now},
		},
		CollectionProducts: []domain.CollectionProduct{
			{CollectionID: "col-1", ProductID: "p-1"},
		},
	}
}

func TestCatalogRepositoryReset(t *testing.T) {
	repo, mock := setupCatalogRepo(t)

	mock.ExpectBegin()
	for _, table := range resetOrder {
		mock.ExpectExec("DELETE FROM " + table).
			WillReturnResult(pgxmock.NewResult("DELETE", 10))
	}
	mock.ExpectCommit()

	err := repo.Reset(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryResetRollsBackOnError(t *testing.T) {
	repo, mock := setupCatalogRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM collection_products").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Reset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete from collection_products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryWriteTenant(t *testing.T) {
	repo, mock := setupCatalogRepo(t)
	batch := sampleBatch()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"brand"},
		[]string{"id", "tenant_id", "name", "created_at", "updated_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"category"},
		[]string{"id", "tenant_id", "name", "parent_id", "created_at", "updated_at"}).
		WillReturnResult(2)
	mock.ExpectCopyFrom(pgx.Identifier{"attribute"},
		[]string{"id", "tenant_id", "name", "created_at", "updated_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"attribute_value"},
		[]string{"id", "tenant_id", "value", "attribute_id", "created_at", "updated_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"product"},
		[]string{"id", "tenant_id", "name", "description", "brand_id", "category_id", "slug", "created_at", "updated_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"product_tags"},
		[]string{"product_id", "tag"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"product_variant"},
		[]string{
			"id", "tenant_id", "sku_code", "barcode",
			"price_amount", "price_currency",
			"promotional_price_amount", "promotional_price_currency",
			"weight", "height", "width", "depth",
			"product_id", "created_at", "updated_at",
		}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"product_variant_attribute_values"},
		[]string{"variant_id", "attribute_value_id"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"collection"},
		[]string{"id", "tenant_id", "name", "start_date", "end_date", "created_at", "updated_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"collection_products"},
		[]string{"collection_id", "product_id"}).
		WillReturnResult(1)
	mock.ExpectCommit()

	err := repo.WriteTenant(context.Background(), batch)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryWriteTenantRollsBackOnCopyError(t *testing.T) {
	repo, mock := setupCatalogRepo(t)
	batch := sampleBatch()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"brand"},
		[]string{"id", "tenant_id", "name", "created_at", "updated_at"}).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.WriteTenant(context.Background(), batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy brands")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryWriteTenantBeginError(t *testing.T) {
	repo, mock := setupCatalogRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := repo.WriteTenant(context.Background(), sampleBatch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin write tenant")
	assert.NoError(t, mock.ExpectationsWereMet())
}
