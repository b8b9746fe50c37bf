package synth

import (
	"time"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// TaxonomyGroup indexes one top-level category and its subcategory IDs.
type TaxonomyGroup struct {
	ID string

	names         []string
	subcategories map[string]string
}

// Subcategories returns the subcategory names in insertion order.
func (g *TaxonomyGroup) Subcategories() []string {
	return g.names
}

// SubcategoryID looks up the category ID of a subcategory by name.
func (g *TaxonomyGroup) SubcategoryID(name string) (string, bool) {
	id, ok := g.subcategories[name]
	return id, ok
}

// TaxonomyIndex maps top-level category names to their groups. It preserves
// the tenant spec's ordering so generation walks the taxonomy deterministically.
type TaxonomyIndex struct {
	names  []string
	groups map[string]*TaxonomyGroup
}

// GroupNames returns the top-level category names in insertion order.
func (x *TaxonomyIndex) GroupNames() []string {
	return x.names
}

// Group looks up a top-level category group by name.
func (x *TaxonomyIndex) Group(name string) (*TaxonomyGroup, bool) {
	g, ok := x.groups[name]
	return g, ok
}

// BuildTaxonomy expands a tenant's category groups into a two-level tree of
// category rows. Each top-level row has a nil parent; each subcategory row
// points at its parent. Rows are ordered parents-first so a persister writing
// the slice front-to-back never references an unseen parent.
func BuildTaxonomy(ids *IDAllocator, tenantID string, groups []domain.CategoryGroup, now time.Time) ([]domain.Category, *TaxonomyIndex) {
	categories := make([]domain.Category, 0, len(groups)*4)
	index := &TaxonomyIndex{groups: make(map[string]*TaxonomyGroup, len(groups))}

	for _, g := range groups {
		parentID := ids.NewID()
		categories = append(categories, domain.Category{
			ID:        parentID,
			TenantID:  tenantID,
			Name:      g.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})

		group := &TaxonomyGroup{
			ID:            parentID,
			subcategories: make(map[string]string, len(g.Subcategories)),
		}

		for _, name := range g.Subcategories {
			pid := parentID
			childID := ids.NewID()
			categories = append(categories, domain.Category{
				ID:        childID,
				TenantID:  tenantID,
				Name:      name,
				ParentID:  &pid,
				CreatedAt: now,
				UpdatedAt: now,
			})
			group.names = append(group.names, name)
			group.subcategories[name] = childID
		}

		index.names = append(index.names, g.Name)
		index.groups[g.Name] = group
	}

	return categories, index
}
