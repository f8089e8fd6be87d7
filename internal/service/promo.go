package service

import (
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// PromoEngine applies a product's promotion to an already-resolved price.
// It is stateless and side-effect free.
type PromoEngine struct{}

type PromoResult struct {
	FinalPrice      decimal.Decimal
	DiscountPercent decimal.Decimal
}

// Apply returns the discounted price and the display percentage. Without an
// active promo the original price passes through unchanged.
func (PromoEngine) Apply(original decimal.Decimal, promo domain.Promo) PromoResult {
	if !promo.HasPromo {
		return PromoResult{FinalPrice: original}
	}

	final := original
	switch {
	case promo.DiscountedPrice != nil:
		// Upstream pricing service override, kept for auditability.
		final = *promo.DiscountedPrice
	case promo.Type == domain.PromoTypePercentage:
		frac := promo.DiscountValue.Div(hundred)
		final = original.Mul(decimal.NewFromInt(1).Sub(frac)).Round(0)
	case promo.Type == domain.PromoTypeFixed:
		final = original.Sub(promo.DiscountValue)
	}

	if final.IsNegative() {
		final = decimal.Zero
	}
	if final.GreaterThan(original) {
		final = original
	}

	return PromoResult{
		FinalPrice:      final,
		DiscountPercent: displayPercent(original, promo),
	}
}

func displayPercent(original decimal.Decimal, promo domain.Promo) decimal.Decimal {
	var pct decimal.Decimal
	switch {
	case promo.DiscountPercent != nil:
		pct = *promo.DiscountPercent
	case promo.Type == domain.PromoTypePercentage:
		pct = promo.DiscountValue
	case promo.Type == domain.PromoTypeFixed:
		if original.IsZero() {
			return decimal.Zero
		}
		pct = promo.DiscountValue.Div(original).Mul(hundred).Round(0)
	}

	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
