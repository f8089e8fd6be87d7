package service

import (
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/config"
	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// SizePriceResolver computes the price and serving volume of a product at a
// requested size. An explicit per-size price on the product wins; otherwise
// the base price is scaled by the configured multiplier profile and rounded
// to a whole amount.
type SizePriceResolver struct {
	profile config.SizeProfile
	volumes map[domain.Size]int
	unit    string
}

func NewSizePriceResolver(profile config.SizeProfile, unit string) *SizePriceResolver {
	if unit == "" {
		unit = config.DefaultVolumeUnit
	}
	return &SizePriceResolver{
		profile: profile,
		volumes: config.DefaultVolumes,
		unit:    unit,
	}
}

type SizePrice struct {
	Price  decimal.Decimal
	Volume int
	Unit   string
	// Calories is zero when the product carries no calorie table.
	Calories int
}

// Resolve is pure: identical inputs always yield identical outputs.
func (r *SizePriceResolver) Resolve(p *domain.Product, size domain.Size) SizePrice {
	if !p.HasSizes {
		// Size selection is ignored, base price is authoritative.
		return SizePrice{
			Price:    p.BasePrice,
			Volume:   r.volume(p, domain.SizeMedium),
			Unit:     r.unitFor(p),
			Calories: p.Calories[domain.SizeMedium],
		}
	}

	price := p.BasePrice
	if explicit, ok := p.Prices[size]; ok && !explicit.IsZero() {
		price = explicit
	} else if mult, ok := r.profile.Multipliers[size]; ok {
		price = p.BasePrice.Mul(mult).Round(0)
	}

	return SizePrice{
		Price:    price,
		Volume:   r.volume(p, size),
		Unit:     r.unitFor(p),
		Calories: p.Calories[size],
	}
}

func (r *SizePriceResolver) volume(p *domain.Product, size domain.Size) int {
	if v, ok := p.Volumes[size]; ok && v > 0 {
		return v
	}
	return r.volumes[size]
}

func (r *SizePriceResolver) unitFor(p *domain.Product) string {
	if p.VolumeUnit != "" {
		return p.VolumeUnit
	}
	return r.unit
}
