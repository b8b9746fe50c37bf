package synth

import (
	"time"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// BrandIndex maps brand names to their row IDs. Duplicate names in a tenant
// spec produce duplicate rows with distinct IDs; the index keeps the last one.
type BrandIndex map[string]string

// BuildBrands materializes one Brand row per configured name.
func BuildBrands(ids *IDAllocator, tenantID string, names []string, now time.Time) ([]domain.Brand, BrandIndex) {
	brands := make([]domain.Brand, 0, len(names))
	index := make(BrandIndex, len(names))

	for _, name := range names {
		id := ids.NewID()
		brands = append(brands, domain.Brand{
			ID:        id,
			TenantID:  tenantID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		index[name] = id
	}

	return brands, index
}
