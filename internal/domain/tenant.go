package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for tenant specification problems. Both surface before any
// row is generated so a bad configuration never produces a partial catalog.
var (
	ErrInvalidTenantSpec = errors.New("invalid tenant spec")
	ErrUnknownStoreType  = errors.New("unknown store type")
)

// StoreType identifies the archetype of a store. It is a closed set: the
// description template and the attribute-assignment rule for each member are
// looked up by value, and anything outside the set is rejected up front.
type StoreType string

const (
	StoreTypeFitnessApparel StoreType = "fitness-apparel"
	StoreTypeBoardSports    StoreType = "board-sports"
	StoreTypeSupplements    StoreType = "supplements"
	StoreTypeElectronics    StoreType = "electronics"
	StoreTypePetShop        StoreType = "pet-shop"
	StoreTypeBookstore      StoreType = "bookstore"
	StoreTypeGaming         StoreType = "gaming"
	StoreTypeCosmetics      StoreType = "cosmetics"
	StoreTypeHomeDecor      StoreType = "home-decor"
	StoreTypeInstruments    StoreType = "instruments"
	StoreTypeGeneric        StoreType = "generic"
)

// ValidStoreTypes returns the set of valid store types.
func ValidStoreTypes() []StoreType {
	return []StoreType{
		StoreTypeFitnessApparel,
		StoreTypeBoardSports,
		StoreTypeSupplements,
		StoreTypeElectronics,
		StoreTypePetShop,
		StoreTypeBookstore,
		StoreTypeGaming,
		StoreTypeCosmetics,
		StoreTypeHomeDecor,
		StoreTypeInstruments,
		StoreTypeGeneric,
	}
}

// IsValid checks whether the store type belongs to the closed set.
func (t StoreType) IsValid() bool {
	for _, s := range ValidStoreTypes() {
		if s == t {
			return true
		}
	}
	return false
}

// Tenant is the root scope for one store's catalog data.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StoreType StoreType `json:"store_type"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryGroup pairs a top-level category name with its ordered subcategories.
type CategoryGroup struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// TenantSpec is the declarative description of one store: its archetype, the
// brands it carries, and a two-level category taxonomy. Categories are an
// ordered slice rather than a map so repeated runs under the same seed walk
// the taxonomy in the same order.
type TenantSpec struct {
	Name       string          `json:"name"`
	StoreType  StoreType       `json:"store_type"`
	Brands     []string        `json:"brands"`
	Categories []CategoryGroup `json:"categories"`
}

// Validate checks the spec before any generation happens.
func (s TenantSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: tenant name is required", ErrInvalidTenantSpec)
	}
	if !s.StoreType.IsValid() {
		return fmt.Errorf("%w: %q (tenant %q)", ErrUnknownStoreType, s.StoreType, s.Name)
	}
	if len(s.Brands) == 0 {
		return fmt.Errorf("%w: tenant %q has no brands", ErrInvalidTenantSpec, s.Name)
	}
	for _, b := range s.Brands {
		if b == "" {
			return fmt.Errorf("%w: tenant %q has an empty brand name", ErrInvalidTenantSpec, s.Name)
		}
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("%w: tenant %q has no categories", ErrInvalidTenantSpec, s.Name)
	}
	for _, g := range s.Categories {
		if g.Name == "" {
			return fmt.Errorf("%w: tenant %q has an unnamed category group", ErrInvalidTenantSpec, s.Name)
		}
		if len(g.Subcategories) == 0 {
			return fmt.Errorf("%w: category %q of tenant %q has no subcategories", ErrInvalidTenantSpec, g.Name, s.Name)
		}
		for _, sc := range g.Subcategories {
			if sc == "" {
				return fmt.Errorf("%w: category %q of tenant %q has an empty subcategory name", ErrInvalidTenantSpec, g.Name, s.Name)
			}
		}
	}
	return nil
}

// SubcategoryCount returns the total number of leaf categories in the spec.
// Product volume is predictable from it: products = count * productsPerCategory.
func (s TenantSpec) SubcategoryCount() int {
	n := 0
	for _, g := range s.Categories {
		n += len(g.Subcategories)
	}
	return n
}
