package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "12000", "-4500", "0.000063", "99999999.99"} {
		d := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(d))
		assert.True(t, d.Equal(got), "%s round-tripped to %s", s, got)
	}
}

func TestNumericToDecimal_Invalid(t *testing.T) {
	assert.True(t, numericToDecimal(pgtype.Numeric{}).IsZero())
	assert.Nil(t, numericToDecimalPtr(pgtype.Numeric{}))

	d := decimal.NewFromInt(5000)
	assert.True(t, decimalPtrToNumeric(&d).Valid)
	assert.False(t, decimalPtrToNumeric(nil).Valid)
}

func TestInt4Helpers(t *testing.T) {
	v := 7
	pg := intPtrToInt4(&v)
	assert.True(t, pg.Valid)
	assert.Equal(t, &v, int4PtrToIntPtr(pg))

	assert.False(t, intPtrToInt4(nil).Valid)
	assert.Nil(t, int4PtrToIntPtr(pgtype.Int4{}))
}

func TestUUIDHelpers(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, pgToUUID(uuidToPg(id)))
	assert.Equal(t, uuid.Nil, pgToUUID(pgtype.UUID{}))
}

func TestTimestamptzHelpers(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now, pgTimestamptzToTime(timeToPgTimestamptz(now)))

	assert.True(t, pgTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
	assert.False(t, timeToPgTimestamptz(time.Time{}).Valid)
}
