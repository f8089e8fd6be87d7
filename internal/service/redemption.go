package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// VoucherStore is implemented by the repository layer.
type VoucherStore interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	CountUserRedemptions(ctx context.Context, voucherID uuid.UUID, userID int64) (int, error)
	// Redeem re-checks limits under a row lock, records the redemption and
	// increments the usage counter, exactly once per order ID.
	Redeem(ctx context.Context, voucherID uuid.UUID, userID int64, orderID uuid.UUID, orderAmount, discount decimal.Decimal) error
}

// RedemptionService is the two-phase voucher protocol: Preview is pure and
// repeatable during cart preview; Commit performs the one side-effecting
// increment at order completion.
type RedemptionService struct {
	store  VoucherStore
	engine VoucherEngine
}

func NewRedemptionService(store VoucherStore) *RedemptionService {
	return &RedemptionService{store: store}
}

// Preview validates a voucher code against the order without consuming it.
func (s *RedemptionService) Preview(ctx context.Context, code string, userID int64, orderAmount decimal.Decimal) (*domain.AppliedVoucher, error) {
	voucher, count, err := s.load(ctx, code, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.Validate(voucher, OrderContext{
		OrderAmount:         orderAmount,
		UserID:              userID,
		UserRedemptionCount: count,
		Now:                 time.Now(),
	})
}

// Commit re-validates and consumes the voucher for the given order.
// Calling it again with the same order ID is a no-op on the counters.
func (s *RedemptionService) Commit(ctx context.Context, code string, userID int64, orderID uuid.UUID, orderAmount decimal.Decimal) (*domain.AppliedVoucher, error) {
	voucher, count, err := s.load(ctx, code, userID)
	if err != nil {
		return nil, err
	}

	applied, err := s.engine.Validate(voucher, OrderContext{
		OrderAmount:         orderAmount,
		UserID:              userID,
		UserRedemptionCount: count,
		Now:                 time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Redeem(ctx, voucher.ID, userID, orderID, orderAmount, applied.Discount); err != nil {
		return nil, fmt.Errorf("redeem voucher %s: %w", voucher.Code, err)
	}
	return applied, nil
}

func (s *RedemptionService) load(ctx context.Context, code string, userID int64) (*domain.Voucher, int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	voucher, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.store.CountUserRedemptions(ctx, voucher.ID, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count redemptions: %w", err)
	}
	return voucher, count, nil
}
