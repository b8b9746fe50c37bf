package synth

import (
	"time"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// Attribute dimension names shared by every tenant.
const (
	AttrSize    = "Size"
	AttrColor   = "Color"
	AttrVoltage = "Voltage"
	AttrFlavor  = "Flavor"
	AttrWeight  = "Weight"
)

// attributeCatalog is the fixed, ordered set of attribute dimensions and their
// permissible values. Every tenant gets its own copy of these rows; which
// dimensions end up assigned to a variant depends on the tenant's store type.
var attributeCatalog = []struct {
	name   string
	values []string
}{
	{AttrSize, []string{"XS", "S", "M", "L", "XL", "XXL"}},
	{AttrColor, []string{"Black", "White", "Blue", "Red", "Green", "Yellow", "Pink", "Gray", "Purple"}},
	{AttrVoltage, []string{"110V", "220V", "Dual"}},
	{AttrFlavor, []string{"Chocolate", "Vanilla", "Strawberry", "Banana", "Cookies"}},
	{AttrWeight, []string{"450g", "900g", "1kg", "2kg", "3kg"}},
}

// AttributeEntry indexes one attribute and its value IDs.
type AttributeEntry struct {
	ID string

	names  []string
	values map[string]string
}

// Values returns the attribute's permissible values in catalog order.
func (e *AttributeEntry) Values() []string {
	return e.names
}

// ValueID looks up the row ID of a value.
func (e *AttributeEntry) ValueID(value string) (string, bool) {
	id, ok := e.values[value]
	return id, ok
}

// AttributeIndex maps attribute names to their entries.
type AttributeIndex struct {
	names []string
	attrs map[string]*AttributeEntry
}

// Names returns the attribute names in catalog order.
func (x *AttributeIndex) Names() []string {
	return x.names
}

// Attribute looks up an attribute entry by name.
func (x *AttributeIndex) Attribute(name string) (*AttributeEntry, bool) {
	e, ok := x.attrs[name]
	return e, ok
}

// BuildAttributeCatalog materializes the fixed attribute catalog for one
// tenant: one Attribute row per dimension, one AttributeValue row per value,
// plus the lookup index used during variant assignment.
func BuildAttributeCatalog(ids *IDAllocator, tenantID string, now time.Time) ([]domain.Attribute, []domain.AttributeValue, *AttributeIndex) {
	attributes := make([]domain.Attribute, 0, len(attributeCatalog))
	values := make([]domain.AttributeValue, 0, 32)
	index := &AttributeIndex{attrs: make(map[string]*AttributeEntry, len(attributeCatalog))}

	for _, def := range attributeCatalog {
		attrID := ids.NewID()
		attributes = append(attributes, domain.Attribute{
			ID:        attrID,
			TenantID:  tenantID,
			Name:      def.name,
			CreatedAt: now,
			UpdatedAt: now,
		})

		entry := &AttributeEntry{
			ID:     attrID,
			values: make(map[string]string, len(def.values)),
		}

		for _, v := range def.values {
			valueID := ids.NewID()
			values = append(values, domain.AttributeValue{
				ID:          valueID,
				TenantID:    tenantID,
				Value:       v,
				AttributeID: attrID,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			entry.names = append(entry.names, v)
			entry.values[v] = valueID
		}

		index.names = append(index.names, def.name)
		index.attrs[def.name] = entry
	}

	return attributes, values, index
}
