package domain

import "time"

// Brand represents a product brand within a tenant's catalog.
type Brand struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category represents a node in a tenant's two-level category tree.
// A nil ParentID marks a top-level category; products only ever attach to
// subcategories.
type Category struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSubcategory reports whether the category is a leaf node.
func (c Category) IsSubcategory() bool {
	return c.ParentID != nil
}

// Attribute represents a variant dimension such as Size or Color.
type Attribute struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AttributeValue is one permissible value of an attribute.
type AttributeValue struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Value       string    `json:"value"`
	AttributeID string    `json:"attribute_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
