package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherType string

const (
	VoucherTypePercentage   VoucherType = "percentage"
	VoucherTypeFixed        VoucherType = "fixed"
	VoucherTypeFreeShipping VoucherType = "free_shipping"
)

// Voucher is a redeemable discount code. Codes are stored upper-case and
// matched case-insensitively. The validity window is half-open:
// [StartDate, EndDate).
type Voucher struct {
	ID             uuid.UUID
	Code           string
	Type           VoucherType
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxDiscount    *decimal.Decimal
	UsageLimit     *int
	PerUserLimit   int
	UsageCount     int
	StartDate      time.Time
	EndDate        time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValid reports whether the voucher is redeemable at all, independent of
// any particular order: administratively active, inside its window, and not
// globally exhausted.
func (v *Voucher) IsValid(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if now.Before(v.StartDate) || !now.Before(v.EndDate) {
		return false
	}
	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return false
	}
	return true
}

// AppliedVoucher is the result of a successful validation: the discount
// against the order total and, for free-shipping vouchers, the waiver flag
// consumed by checkout.
type AppliedVoucher struct {
	VoucherID    uuid.UUID
	Code         string
	Discount     decimal.Decimal
	FreeShipping bool
}

// Redemption records one successful use of a voucher on an order.
type Redemption struct {
	ID          int64
	VoucherID   uuid.UUID
	UserID      int64
	OrderID     uuid.UUID
	OrderAmount decimal.Decimal
	Discount    decimal.Decimal
	RedeemedAt  time.Time
}
