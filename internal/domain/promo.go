package domain

import "github.com/shopspring/decimal"

type PromoType string

const (
	PromoTypePercentage PromoType = "percentage"
	PromoTypeFixed      PromoType = "fixed"
)

type Promo struct {
	HasPromo      bool
	Type          PromoType
	DiscountValue decimal.Decimal

	// Precomputed values supplied by the upstream pricing service for the
	// canonical size. When set they override the computed result.
	DiscountedPrice *decimal.Decimal
	DiscountPercent *decimal.Decimal
}
