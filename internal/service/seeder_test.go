package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deliverymart/catalog-seeder/internal/domain"
	"github.com/deliverymart/catalog-seeder/internal/synth"
)

type mockCatalogWriter struct {
	mock.Mock
}

func (m *mockCatalogWriter) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCatalogWriter) WriteTenant(ctx context.Context, batch *domain.TenantBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func newSeederWithMock(t *testing.T) (*Seeder, *mockCatalogWriter) {
	t.Helper()
	writer := &mockCatalogWriter{}
	synthesizer := synth.New(synth.DefaultConfig(), synth.NewRand(42), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewSeeder(writer, synthesizer, slog.New(slog.NewTextHandler(io.Discard, nil))), writer
}

func testSpecs() []domain.TenantSpec {
	return []domain.TenantSpec{
		{
			Name:      "Loja A",
			StoreType: domain.StoreTypeGeneric,
			Brands:    []string{"Acme"},
			Categories: []domain.CategoryGroup{
				{Name: "Stuff", Subcategories: []string{"Things"}},
			},
		},
		{
			Name:      "Loja B",
			StoreType: domain.StoreTypeSupplements,
			Brands:    []string{"Growth"},
			Categories: []domain.CategoryGroup{
				{Name: "Proteins", Subcategories: []string{"Whey Protein"}},
			},
		},
	}
}

func TestSeederRun(t *testing.T) {
	seeder, writer := newSeederWithMock(t)

	writer.On("Reset", mock.Anything).Return(nil).Once()
	writer.On("WriteTenant", mock.Anything, mock.AnythingOfType("*domain.TenantBatch")).Return(nil).Twice()

	summary, err := seeder.Run(context.Background(), testSpecs())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Tenants)
	// 8 products per single subcategory per tenant.
	assert.Equal(t, 16, summary.Products)
	assert.Greater(t, summary.Variants, 0)
	assert.Greater(t, summary.Rows, summary.Products+summary.Variants)
	writer.AssertExpectations(t)
}

func TestSeederRunLogsTenantIDs(t *testing.T) {
	writer := &mockCatalogWriter{}
	synthesizer := synth.New(synth.DefaultConfig(), synth.NewRand(42), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var buf bytes.Buffer
	seeder := NewSeeder(writer, synthesizer, slog.New(slog.NewJSONHandler(&buf, nil)))

	var seeded []*domain.TenantBatch
	writer.On("Reset", mock.Anything).Return(nil).Once()
	writer.On("WriteTenant", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).(*domain.TenantBatch))
		}).
		Return(nil).Twice()

	_, err := seeder.Run(context.Background(), testSpecs())
	require.NoError(t, err)

	require.Len(t, seeded, 2)
	logs := buf.String()
	for _, batch := range seeded {
		assert.Contains(t, logs, `"tenant_id":"`+batch.Tenant.ID+`"`)
	}
}

func TestSeederRunResetError(t *testing.T) {
	seeder, writer := newSeederWithMock(t)

	writer.On("Reset", mock.Anything).Return(errors.New("database down")).Once()

	summary, err := seeder.Run(context.Background(), testSpecs())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "reset catalog")
	writer.AssertNotCalled(t, "WriteTenant", mock.Anything, mock.Anything)
}

func TestSeederRunWriteError(t *testing.T) {
	seeder, writer := newSeederWithMock(t)

	writer.On("Reset", mock.Anything).Return(nil).Once()
	writer.On("WriteTenant", mock.Anything, mock.Anything).Return(errors.New("copy failed")).Once()

	summary, err := seeder.Run(context.Background(), testSpecs())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), `write tenant "Loja A"`)
	writer.AssertNumberOfCalls(t, "WriteTenant", 1)
}

func TestSeederRunInvalidSpec(t *testing.T) {
	seeder, writer := newSeederWithMock(t)

	writer.On("Reset", mock.Anything).Return(nil).Once()

	specs := testSpecs()
	specs[0].Brands = nil

	summary, err := seeder.Run(context.Background(), specs)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrInvalidTenantSpec)
	writer.AssertNotCalled(t, "WriteTenant", mock.Anything, mock.Anything)
}

func TestSeederRunCanceledContext(t *testing.T) {
	seeder, writer := newSeederWithMock(t)

	writer.On("Reset", mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := seeder.Run(ctx, testSpecs())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, context.Canceled)
}
