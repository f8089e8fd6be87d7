package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// OrderContext carries everything voucher validation needs to know about
// the order being priced.
type OrderContext struct {
	OrderAmount         decimal.Decimal
	UserID              int64
	UserRedemptionCount int
	Now                 time.Time
}

// VoucherEngine validates a voucher against an order and computes its
// discount. It never mutates usage counters, so it is safe to call any
// number of times during cart preview; RedemptionService owns the
// side-effecting increment.
type VoucherEngine struct{}

// Validate runs the checks in a fixed order and reports the first failure.
// The order matters: a voucher that is both expired and below-minimum must
// report expiry.
func (e VoucherEngine) Validate(v *domain.Voucher, octx OrderContext) (*domain.AppliedVoucher, error) {
	if !v.IsActive {
		return nil, domain.ErrVoucherInactive
	}
	if octx.Now.Before(v.StartDate) {
		return nil, domain.ErrVoucherNotYetStarted
	}
	if !octx.Now.Before(v.EndDate) {
		return nil, domain.ErrVoucherExpired
	}
	if octx.OrderAmount.LessThan(v.MinOrderAmount) {
		return nil, domain.ErrVoucherBelowMinimum
	}
	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return nil, domain.ErrVoucherExhausted
	}
	if octx.UserRedemptionCount >= v.PerUserLimit {
		return nil, domain.ErrVoucherPerUserLimit
	}

	applied := &domain.AppliedVoucher{
		VoucherID: v.ID,
		Code:      v.Code,
		Discount:  e.discount(v, octx.OrderAmount),
	}
	applied.FreeShipping = v.Type == domain.VoucherTypeFreeShipping
	return applied, nil
}

func (VoucherEngine) discount(v *domain.Voucher, orderAmount decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch v.Type {
	case domain.VoucherTypePercentage:
		d = orderAmount.Mul(v.DiscountValue).Div(hundred).Round(0)
	case domain.VoucherTypeFixed:
		d = decimal.Min(v.DiscountValue, orderAmount)
	case domain.VoucherTypeFreeShipping:
		// Shipping is waived separately; the order total is untouched.
		return decimal.Zero
	}

	if v.MaxDiscount != nil && d.GreaterThan(*v.MaxDiscount) {
		d = *v.MaxDiscount
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
