package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

const voucherColumns = `id, code, voucher_type, discount_value, min_order_amount,
	max_discount, usage_limit, per_user_limit, usage_count,
	start_date, end_date, is_active, created_at, updated_at`

type VoucherRepository struct {
	db *pgxpool.Pool
}

func NewVoucherRepository(db *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{db: db}
}

// GetByCode looks a voucher up by its code, case-insensitively.
func (r *VoucherRepository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	row := r.db.QueryRow(ctx,
		`SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code)

	voucher, err := scanVoucher(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	return voucher, nil
}

// Create inserts an admin-created voucher. The code is stored upper-case.
func (r *VoucherRepository) Create(ctx context.Context, v *domain.Voucher) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.Code = strings.ToUpper(strings.TrimSpace(v.Code))

	_, err := r.db.Exec(ctx,
		`INSERT INTO vouchers (id, code, voucher_type, discount_value, min_order_amount,
			max_discount, usage_limit, per_user_limit, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		uuidToPg(v.ID),
		v.Code,
		string(v.Type),
		decimalToNumeric(v.DiscountValue),
		decimalToNumeric(v.MinOrderAmount),
		decimalPtrToNumeric(v.MaxDiscount),
		intPtrToInt4(v.UsageLimit),
		v.PerUserLimit,
		timeToPgTimestamptz(v.StartDate),
		timeToPgTimestamptz(v.EndDate),
		v.IsActive,
	)
	if err != nil {
		return fmt.Errorf("create voucher: %w", err)
	}
	return nil
}

// SetActive toggles the administrative flag, independent of date validity.
func (r *VoucherRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vouchers SET is_active = $2, updated_at = now() WHERE id = $1`,
		uuidToPg(id), active)
	if err != nil {
		return fmt.Errorf("set voucher active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

// CountUserRedemptions returns how many times the user has redeemed the
// voucher, feeding the per-user limit check.
func (r *VoucherRepository) CountUserRedemptions(ctx context.Context, voucherID uuid.UUID, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM voucher_redemptions WHERE voucher_id = $1 AND user_id = $2`,
		uuidToPg(voucherID), userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count redemptions: %w", err)
	}
	return count, nil
}

// Redeem consumes one use of the voucher for the given order: it locks the
// voucher row, re-checks both limits, records the redemption and increments
// usage_count, all in one transaction. A repeated call with the same order
// ID leaves the counters untouched.
func (r *VoucherRepository) Redeem(ctx context.Context, voucherID uuid.UUID, userID int64, orderID uuid.UUID, orderAmount, discount decimal.Decimal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var usageCount int
	var usageLimit pgtype.Int4
	var perUserLimit int
	err = tx.QueryRow(ctx,
		`SELECT usage_count, usage_limit, per_user_limit FROM vouchers WHERE id = $1 FOR UPDATE`,
		uuidToPg(voucherID)).Scan(&usageCount, &usageLimit, &perUserLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrVoucherNotFound
		}
		return fmt.Errorf("lock voucher: %w", err)
	}

	if usageLimit.Valid && usageCount >= int(usageLimit.Int32) {
		return domain.ErrVoucherExhausted
	}

	var userCount int
	err = tx.QueryRow(ctx,
		`SELECT count(*) FROM voucher_redemptions WHERE voucher_id = $1 AND user_id = $2`,
		uuidToPg(voucherID), userID).Scan(&userCount)
	if err != nil {
		return fmt.Errorf("count user redemptions: %w", err)
	}
	if userCount >= perUserLimit {
		return domain.ErrVoucherPerUserLimit
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO voucher_redemptions (voucher_id, user_id, order_id, order_amount, discount)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (order_id) DO NOTHING`,
		uuidToPg(voucherID), userID, uuidToPg(orderID),
		decimalToNumeric(orderAmount), decimalToNumeric(discount))
	if err != nil {
		return fmt.Errorf("insert redemption: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Order already redeemed this voucher; nothing to increment.
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx,
		`UPDATE vouchers SET usage_count = usage_count + 1, updated_at = now() WHERE id = $1`,
		uuidToPg(voucherID))
	if err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}

	return tx.Commit(ctx)
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		id          pgtype.UUID
		voucherType string
		discount    pgtype.Numeric
		minOrder    pgtype.Numeric
		maxDiscount pgtype.Numeric
		usageLimit  pgtype.Int4
		start       pgtype.Timestamptz
		end         pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
		v           domain.Voucher
	)

	err := row.Scan(
		&id, &v.Code, &voucherType, &discount, &minOrder,
		&maxDiscount, &usageLimit, &v.PerUserLimit, &v.UsageCount,
		&start, &end, &v.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.ID = pgToUUID(id)
	v.Type = domain.VoucherType(voucherType)
	v.DiscountValue = numericToDecimal(discount)
	v.MinOrderAmount = numericToDecimal(minOrder)
	v.MaxDiscount = numericToDecimalPtr(maxDiscount)
	v.UsageLimit = int4PtrToIntPtr(usageLimit)
	v.StartDate = pgTimestamptzToTime(start)
	v.EndDate = pgTimestamptzToTime(end)
	v.CreatedAt = pgTimestamptzToTime(createdAt)
	v.UpdatedAt = pgTimestamptzToTime(updatedAt)
	return &v, nil
}
