package domain

// TenantBatch holds every row synthesized for one tenant, ordered so that a
// persister writing slices front-to-back never violates a foreign key:
// Categories lists parents before their children, and each dependent slice
// only references rows from slices above it.
type TenantBatch struct {
	Tenant             Tenant
	Brands             []Brand
	Categories         []Category
	Attributes         []Attribute
	AttributeValues    []AttributeValue
	Products           []Product
	Tags               []ProductTag
	Variants           []ProductVariant
	VariantAttributes  []VariantAttributeValue
	Collections        []Collection
	CollectionProducts []CollectionProduct
}

// RowCount returns the total number of rows in the batch across all entity types.
func (b *TenantBatch) RowCount() int {
	return len(b.Brands) + len(b.Categories) + len(b.Attributes) + len(b.AttributeValues) +
		len(b.Products) + len(b.Tags) + len(b.Variants) + len(b.VariantAttributes) +
		len(b.Collections) + len(b.CollectionProducts)
}
