package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// RateSnapshotRepository backs the rate cache with a single persisted row
// so a restarted process serves last-known rates immediately.
type RateSnapshotRepository struct {
	db *pgxpool.Pool
}

func NewRateSnapshotRepository(db *pgxpool.Pool) *RateSnapshotRepository {
	return &RateSnapshotRepository{db: db}
}

func (r *RateSnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	var (
		base      string
		rawRates  []byte
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT base_currency, rates, updated_at FROM exchange_rate_snapshot WHERE id = 1`).
		Scan(&base, &rawRates, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load rate snapshot: %w", err)
	}

	rates := make(domain.Rates)
	if err := json.Unmarshal(rawRates, &rates); err != nil {
		return nil, fmt.Errorf("decode rate snapshot: %w", err)
	}

	return &domain.RateSnapshot{
		Base:      base,
		Rates:     rates,
		UpdatedAt: pgTimestamptzToTime(updatedAt),
	}, nil
}

func (r *RateSnapshotRepository) SaveSnapshot(ctx context.Context, snap *domain.RateSnapshot) error {
	rawRates, err := json.Marshal(snap.Rates)
	if err != nil {
		return fmt.Errorf("encode rate snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO exchange_rate_snapshot (id, base_currency, rates, updated_at)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET base_currency = excluded.base_currency,
		     rates = excluded.rates,
		     updated_at = excluded.updated_at`,
		snap.Base, rawRates, timeToPgTimestamptz(snap.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save rate snapshot: %w", err)
	}
	return nil
}
