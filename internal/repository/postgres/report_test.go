package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deliverymart/catalog-seeder/pkg/database"
)

func setupReportRepo(t *testing.T) (*ReportRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewReportRepository(mock), mock
}

func TestReportRepositoryTenantSummaries(t *testing.T) {
	repo, mock := setupReportRepo(t)

	rows := pgxmock.NewRows([]string{"tenant_id", "brands", "categories", "products", "variants"}).
		AddRow("t-1", int64(6), int64(17), int64(112), int64(610)).
		AddRow("t-2", int64(6), int64(17), int64(104), int64(578))
	mock.ExpectQuery("SELECT t.tenant_id").WillReturnRows(rows)

	summaries, err := repo.TenantSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "t-1", summaries[0].TenantID)
	assert.Equal(t, int64(112), summaries[0].Products)
	assert.Equal(t, int64(578), summaries[1].Variants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryPriceDistribution(t *testing.T) {
	repo, mock := setupReportRepo(t)

	rows := pgxmock.NewRows([]string{"bucket", "count"}).
		AddRow("Under R$ 50", int64(120)).
		AddRow("Over R$ 500", int64(340))
	mock.ExpectQuery("SELECT CASE").WillReturnRows(rows)

	buckets, err := repo.PriceDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, int64(120), buckets[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryPromoStats(t *testing.T) {
	repo, mock := setupReportRepo(t)

	rows := pgxmock.NewRows([]string{"total", "on_promo", "avg", "avg_promo", "min", "max"}).
		AddRow(int64(5000), int64(1480), 512.30, 410.11, 29.95, 999.87)
	mock.ExpectQuery("FROM product_variant").WillReturnRows(rows)

	stats, err := repo.PromoStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), stats.TotalVariants)
	assert.Equal(t, int64(1480), stats.OnPromotion)
	assert.InDelta(t, 512.30, stats.AvgPrice, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryTopCategories(t *testing.T) {
	repo, mock := setupReportRepo(t)

	rows := pgxmock.NewRows([]string{"tenant_id", "name", "products"}).
		AddRow("t-1", "Whey Protein", int64(8)).
		AddRow("t-1", "Creatine", int64(8))
	mock.ExpectQuery("WHERE c.parent_id IS NOT NULL").
		WithArgs(10).
		WillReturnRows(rows)

	counts, err := repo.TopCategories(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Whey Protein", counts[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositorySampleProducts(t *testing.T) {
	repo, mock := setupReportRepo(t)

	rows := pgxmock.NewRows([]string{"name", "brand", "category", "slug"}).
		AddRow("Growth Whey Protein Pro", "Growth", "Whey Protein", "growth-whey-protein-pro-ab12cd34")
	mock.ExpectQuery("FROM product p").
		WithArgs(5).
		WillReturnRows(rows)

	samples, err := repo.SampleProducts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "Growth", samples[0].Brand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositorySampleVariants(t *testing.T) {
	repo, mock := setupReportRepo(t)

	promo := 69.93
	rows := pgxmock.NewRows([]string{"sku_code", "product", "price", "promo", "attributes"}).
		AddRow("GRO-AB12CD34", "Growth Whey Protein Pro", 99.90, &promo, "Color: Black, Flavor: Chocolate").
		AddRow("MAX-EF56GH78", "Max Titanium Creatine Elite", 149.90, (*float64)(nil), "Color: White")
	mock.ExpectQuery("FROM product_variant v").
		WithArgs(5).
		WillReturnRows(rows)

	samples, err := repo.SampleVariants(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "GRO-AB12CD34", samples[0].SKU)
	require.NotNil(t, samples[0].PromoPrice)
	assert.InDelta(t, 69.93, *samples[0].PromoPrice, 0.001)
	assert.Nil(t, samples[1].PromoPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryQueryError(t *testing.T) {
	repo, mock := setupReportRepo(t)

	mock.ExpectQuery("SELECT t.tenant_id").WillReturnError(errors.New("relation does not exist"))

	summaries, err := repo.TenantSummaries(context.Background())
	require.Error(t, err)
	assert.Nil(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
