package synth

import (
	"math"
	"math/rand"

	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// PricingConfig holds the distributions the engine draws from. Amounts are
// rounded to 2 decimal places; the promotional factor range keeps the
// promotional amount strictly below the base amount by construction.
type PricingConfig struct {
	MinPrice float64
	MaxPrice float64
	Currency string

	PromoProbability float64
	PromoMinFactor   float64
	PromoMaxFactor   float64

	MinWeight    float64 // kg
	MaxWeight    float64
	MinDimension float64 // cm, applies to height/width/depth
	MaxDimension float64
}

// DefaultPricingConfig returns the distributions observed across the catalog:
// prices in R$ 29.90–999.90, roughly 30% of variants on promotion at 70–90%
// of the base price.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		MinPrice:         29.90,
		MaxPrice:         999.90,
		Currency:         "BRL",
		PromoProbability: 0.3,
		PromoMinFactor:   0.7,
		PromoMaxFactor:   0.9,
		MinWeight:        0.1,
		MaxWeight:        5.0,
		MinDimension:     5.0,
		MaxDimension:     50.0,
	}
}

// Quote is one variant's pricing and physical dimensions.
type Quote struct {
	Price            domain.Money
	PromotionalPrice *domain.Money
	Weight           float64
	Height           float64
	Width            float64
	Depth            float64
}

// PricingEngine derives variant prices, promotions, and dimensions from the
// configured ranges. It is pure generation over the injected random source.
type PricingEngine struct {
	cfg PricingConfig
	rng *rand.Rand
}

// NewPricingEngine creates an engine with the given config and random source.
func NewPricingEngine(cfg PricingConfig, rng *rand.Rand) *PricingEngine {
	return &PricingEngine{cfg: cfg, rng: rng}
}

// Quote draws one set of price, optional promotion, and dimensions.
func (e *PricingEngine) Quote() Quote {
	amount := round2(e.uniform(e.cfg.MinPrice, e.cfg.MaxPrice))

	q := Quote{
		Price:  domain.Money{Amount: amount, Currency: e.cfg.Currency},
		Weight: round2(e.uniform(e.cfg.MinWeight, e.cfg.MaxWeight)),
		Height: round2(e.uniform(e.cfg.MinDimension, e.cfg.MaxDimension)),
		Width:  round2(e.uniform(e.cfg.MinDimension, e.cfg.MaxDimension)),
		Depth:  round2(e.uniform(e.cfg.MinDimension, e.cfg.MaxDimension)),
	}

	if e.rng.Float64() < e.cfg.PromoProbability {
		factor := e.uniform(e.cfg.PromoMinFactor, e.cfg.PromoMaxFactor)
		q.PromotionalPrice = &domain.Money{
			Amount:   round2(amount * factor),
			Currency: e.cfg.Currency,
		}
	}

	return q
}

func (e *PricingEngine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
