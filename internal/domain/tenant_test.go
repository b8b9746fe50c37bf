package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() TenantSpec {
	return TenantSpec{
		Name:      "FitStyle",
		StoreType: StoreTypeFitnessApparel,
		Brands:    []string{"Nike", "Adidas"},
		Categories: []CategoryGroup{
			{Name: "Women", Subcategories: []string{"Leggings", "Tops"}},
			{Name: "Men", Subcategories: []string{"Shirts"}},
		},
	}
}

func TestTenantSpec_Validate(t *testing.T) {
	require.NoError(t, validSpec().Validate())
}

func TestTenantSpec_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TenantSpec)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(s *TenantSpec) { s.Name = "" },
			wantErr: ErrInvalidTenantSpec,
		},
		{
			name:    "unknown store type",
			mutate:  func(s *TenantSpec) { s.StoreType = "bakery" },
			wantErr: ErrUnknownStoreType,
		},
		{
			name:    "no brands",
			mutate:  func(s *TenantSpec) { s.Brands = nil },
			wantErr: ErrInvalidTenantSpec,
		},
		{
			name:    "empty brand name",
			mutate:  func(s *TenantSpec) { s.Brands = []string{"Nike", ""} },
			wantErr: ErrInvalidTenantSpec,
		},
		{
			name:    "no categories",
			mutate:  func(s *TenantSpec) { s.Categories = nil },
			wantErr: ErrInvalidTenantSpec,
		},
		{
			name: "group without subcategories",
			mutate: func(s *TenantSpec) {
				s.Categories = []CategoryGroup{{Name: "Women"}}
			},
			wantErr: ErrInvalidTenantSpec,
		},
		{
			name: "empty subcategory name",
			mutate: func(s *TenantSpec) {
				s.Categories = []CategoryGroup{{Name: "Women", Subcategories: []string{""}}}
			},
			wantErr: ErrInvalidTenantSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStoreType_IsValid(t *testing.T) {
	for _, st := range ValidStoreTypes() {
		assert.True(t, st.IsValid(), "store type %q should be valid", st)
	}
	assert.False(t, StoreType("bakery").IsValid())
	assert.False(t, StoreType("").IsValid())
}

func TestTenantSpec_SubcategoryCount(t *testing.T) {
	assert.Equal(t, 3, validSpec().SubcategoryCount())
	assert.Equal(t, 0, TenantSpec{}.SubcategoryCount())
}

func TestCategory_IsSubcategory(t *testing.T) {
	parent := "parent-id"
	assert.True(t, Category{ParentID: &parent}.IsSubcategory())
	assert.False(t, Category{}.IsSubcategory())
}
