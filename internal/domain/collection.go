package domain

import "time"

// Collection is a curated, possibly time-bounded grouping of products.
// Nil date bounds mean the collection is open-ended.
type Collection struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CollectionProduct links a product into a collection. A product may belong
// to zero, one, or several collections.
type CollectionProduct struct {
	CollectionID string `json:"collection_id"`
	ProductID    string `json:"product_id"`
}
