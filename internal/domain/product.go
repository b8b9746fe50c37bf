package domain

import "time"

// Money pairs an amount with its currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Product represents a sellable product attached to a leaf category.
type Product struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BrandID     string    `json:"brand_id"`
	CategoryID  string    `json:"category_id"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductTag attaches a free-text tag to a product. Duplicates are tolerated.
type ProductTag struct {
	ProductID string `json:"product_id"`
	Tag       string `json:"tag"`
}

// ProductVariant is a concrete purchasable configuration of a product.
// When PromotionalPrice is set its amount is strictly below Price.Amount and
// its currency equals the base currency.
type ProductVariant struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	SKU              string    `json:"sku_code"`
	Barcode          string    `json:"barcode"`
	Price            Money     `json:"price"`
	PromotionalPrice *Money    `json:"promotional_price,omitempty"`
	Weight           float64   `json:"weight"`
	Height           float64   `json:"height"`
	Width            float64   `json:"width"`
	Depth            float64   `json:"depth"`
	ProductID        string    `json:"product_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VariantAttributeValue links a variant to one attribute value. A variant
// carries at most one value per attribute dimension.
type VariantAttributeValue struct {
	VariantID        string `json:"variant_id"`
	AttributeValueID string `json:"attribute_value_id"`
}
