package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/deliverymart/catalog-seeder/internal/domain"
	"github.com/deliverymart/catalog-seeder/pkg/slug"
)

// storeProfile carries the per-store-type generation data: the description
// template (one %s for the product name) and the attribute dimensions
// assigned on top of the baseline Color.
type storeProfile struct {
	description     string
	extraAttributes []string
}

var storeProfiles = map[domain.StoreType]storeProfile{
	domain.StoreTypeFitnessApparel: {
		description:     "%s built for high performance and intense training. Quick-dry fabric keeps you cool and comfortable through every session.",
		extraAttributes: []string{AttrSize},
	},
	domain.StoreTypeBoardSports: {
		description:     "%s made for riders of every level. Durable construction and a distinctive design.",
		extraAttributes: []string{AttrSize},
	},
	domain.StoreTypeSupplements: {
		description:     "%s formulated to maximize your results. Premium blend with imported ingredients.",
		extraAttributes: []string{AttrFlavor},
	},
	domain.StoreTypeElectronics: {
		description:     "%s with cutting-edge technology. Modern design and advanced features for everyday use.",
		extraAttributes: []string{AttrVoltage},
	},
	domain.StoreTypePetShop: {
		description: "%s developed for your pet's well-being. Selected ingredients and balanced nutrition.",
	},
	domain.StoreTypeBookstore: {
		description: "%s - an engaging read that will hold your attention from the first page to the last.",
	},
	domain.StoreTypeGaming: {
		description: "%s with exceptional gaming performance. Customizable RGB and a premium build.",
	},
	domain.StoreTypeCosmetics: {
		description: "%s with an exclusive formula and a striking fragrance. Dermatologically tested.",
	},
	domain.StoreTypeHomeDecor: {
		description: "%s combining function and elegant design for your home.",
	},
	domain.StoreTypeInstruments: {
		description: "%s with professional sound quality. Excellent tone and a flawless finish.",
	},
}

// genericDescription is the fallback for store types without a template,
// including the generic archetype itself.
const genericDescription = "%s of excellent quality."

var qualifiers = []string{"Pro", "Premium", "Elite", "Max", "Ultra", "Plus", "Advanced", "Classic"}

var marketingTags = []string{"promotion", "new", "featured", "launch"}

// ProductSet is everything the product synthesizer emits for one tenant.
type ProductSet struct {
	Products          []domain.Product
	Tags              []domain.ProductTag
	Variants          []domain.ProductVariant
	VariantAttributes []domain.VariantAttributeValue
}

// ProductSynthesizer generates products and variants for every leaf category
// of a tenant's taxonomy. It is pure: it consumes the indices built by the
// brand, taxonomy, and attribute builders and produces in-memory rows only.
type ProductSynthesizer struct {
	cfg     Config
	ids     *IDAllocator
	rng     *rand.Rand
	pricing *PricingEngine
}

// NewProductSynthesizer creates a product synthesizer.
func NewProductSynthesizer(cfg Config, ids *IDAllocator, rng *rand.Rand) *ProductSynthesizer {
	return &ProductSynthesizer{
		cfg:     cfg,
		ids:     ids,
		rng:     rng,
		pricing: NewPricingEngine(cfg.Pricing, rng),
	}
}

// Build generates ProductsPerCategory products under every subcategory, each
// with 3–8 variants, attributed according to the tenant's store type.
func (s *ProductSynthesizer) Build(
	spec domain.TenantSpec,
	tenantID string,
	brands BrandIndex,
	taxonomy *TaxonomyIndex,
	attrs *AttributeIndex,
	now time.Time,
) *ProductSet {
	set := &ProductSet{}
	profile := storeProfiles[spec.StoreType]

	for _, groupName := range taxonomy.GroupNames() {
		group, _ := taxonomy.Group(groupName)
		for _, subcatName := range group.Subcategories() {
			categoryID, _ := group.SubcategoryID(subcatName)
			for i := 0; i < s.cfg.ProductsPerCategory; i++ {
				s.buildProduct(set, spec, tenantID, categoryID, subcatName, brands, attrs, profile, now)
			}
		}
	}

	return set
}

func (s *ProductSynthesizer) buildProduct(
	set *ProductSet,
	spec domain.TenantSpec,
	tenantID, categoryID, subcatName string,
	brands BrandIndex,
	attrs *AttributeIndex,
	profile storeProfile,
	now time.Time,
) {
	brandName := spec.Brands[s.rng.Intn(len(spec.Brands))]
	name := fmt.Sprintf("%s %s %s", brandName, subcatName, qualifiers[s.rng.Intn(len(qualifiers))])

	product := domain.Product{
		ID:          s.ids.NewID(),
		TenantID:    tenantID,
		Name:        name,
		Description: s.describe(profile, name),
		BrandID:     brands[brandName],
		CategoryID:  categoryID,
		Slug:        slug.Generate(name) + "-" + s.ids.Token(8),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	set.Products = append(set.Products, product)

	for _, tag := range []string{
		strings.ToLower(subcatName),
		strings.ToLower(brandName),
		marketingTags[s.rng.Intn(len(marketingTags))],
	} {
		set.Tags = append(set.Tags, domain.ProductTag{ProductID: product.ID, Tag: tag})
	}

	variantCount := s.cfg.MinVariants + s.rng.Intn(s.cfg.MaxVariants-s.cfg.MinVariants+1)
	for v := 0; v < variantCount; v++ {
		s.buildVariant(set, tenantID, product.ID, brandName, attrs, profile, now)
	}
}

func (s *ProductSynthesizer) buildVariant(
	set *ProductSet,
	tenantID, productID, brandName string,
	attrs *AttributeIndex,
	profile storeProfile,
	now time.Time,
) {
	quote := s.pricing.Quote()

	variant := domain.ProductVariant{
		ID:               s.ids.NewID(),
		TenantID:         tenantID,
		SKU:              skuPrefix(brandName) + "-" + strings.ToUpper(s.ids.Token(8)),
		Barcode:          fmt.Sprintf("%s%010d", s.cfg.BarcodePrefix, 1_000_000_000+s.rng.Int63n(9_000_000_000)),
		Price:            quote.Price,
		PromotionalPrice: quote.PromotionalPrice,
		Weight:           quote.Weight,
		Height:           quote.Height,
		Width:            quote.Width,
		Depth:            quote.Depth,
		ProductID:        productID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	set.Variants = append(set.Variants, variant)

	s.assign(set, attrs, AttrColor, variant.ID)
	for _, dimension := range profile.extraAttributes {
		s.assign(set, attrs, dimension, variant.ID)
	}
}

// assign draws one uniform random value of the given attribute dimension and
// links it to the variant. A dimension absent from the catalog is skipped, so
// a variant never ends up with two values for the same attribute.
func (s *ProductSynthesizer) assign(set *ProductSet, attrs *AttributeIndex, dimension, variantID string) {
	entry, ok := attrs.Attribute(dimension)
	if !ok {
		return
	}
	values := entry.Values()
	if len(values) == 0 {
		return
	}
	valueID, _ := entry.ValueID(values[s.rng.Intn(len(values))])
	set.VariantAttributes = append(set.VariantAttributes, domain.VariantAttributeValue{
		VariantID:        variantID,
		AttributeValueID: valueID,
	})
}

func (s *ProductSynthesizer) describe(profile storeProfile, name string) string {
	if profile.description == "" {
		return fmt.Sprintf(genericDescription, name)
	}
	return fmt.Sprintf(profile.description, name)
}

// skuPrefix derives the SKU prefix from the first three letters of the brand.
func skuPrefix(brand string) string {
	r := []rune(strings.ToUpper(brand))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
