package synth

import (
	"math/rand"
	"time"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// Collection names generated for every tenant. The flagship collection is
// open-ended; the others carry seasonal date ranges.
const (
	collectionFlagship = "Season Highlights"
	collectionThemed   = "Launch Picks"
)

// CollectionAssigner creates a tenant's marketing collections and assigns a
// randomized subset of products to them.
type CollectionAssigner struct {
	ids *IDAllocator
	rng *rand.Rand
}

// NewCollectionAssigner creates a collection assigner.
func NewCollectionAssigner(ids *IDAllocator, rng *rand.Rand) *CollectionAssigner {
	return &CollectionAssigner{ids: ids, rng: rng}
}

// Build creates four collections and distributes products over the first two:
// the product set is shuffled, the first half joins the flagship collection,
// and every 5th product (by shuffled position) joins the themed one. A product
// may land in zero, one, or both. The two seasonal collections stay empty and
// exist to exercise date-range browsing.
func (a *CollectionAssigner) Build(tenantID string, products []domain.Product, now time.Time) ([]domain.Collection, []domain.CollectionProduct) {
	year := now.Year()

	collections := []domain.Collection{
		{
			ID:        a.ids.NewID(),
			TenantID:  tenantID,
			Name:      collectionFlagship,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        a.ids.NewID(),
			TenantID:  tenantID,
			Name:      collectionThemed,
			StartDate: date(year, time.January, 1),
			EndDate:   date(year, time.December, 31),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        a.ids.NewID(),
			TenantID:  tenantID,
			Name:      "Black Friday",
			StartDate: date(year, time.November, 20),
			EndDate:   date(year, time.November, 30),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        a.ids.NewID(),
			TenantID:  tenantID,
			Name:      "Holiday Season",
			StartDate: date(year, time.December, 1),
			EndDate:   date(year, time.December, 25),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	shuffled := make([]string, len(products))
	for i, p := range products {
		shuffled[i] = p.ID
	}
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var memberships []domain.CollectionProduct
	for i, productID := range shuffled {
		if i < len(shuffled)/2 {
			memberships = append(memberships, domain.CollectionProduct{
				CollectionID: collections[0].ID,
				ProductID:    productID,
			})
		}
		if i%5 == 0 {
			memberships = append(memberships, domain.CollectionProduct{
				CollectionID: collections[1].ID,
				ProductID:    productID,
			})
		}
	}

	return collections, memberships
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
