package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rates maps a currency code to its rate relative to the base currency.
// The base currency itself carries an implicit rate of 1 and need not be
// present in the map.
type Rates map[string]decimal.Decimal

// RateSnapshot is one fetch result from a rate provider.
type RateSnapshot struct {
	Base      string
	Rates     Rates
	UpdatedAt time.Time
}

// Age returns how old the snapshot is at the given instant.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// Rate resolves a currency code against the snapshot. The base currency
// always resolves to 1.
func (s *RateSnapshot) Rate(code string) (decimal.Decimal, bool) {
	if code == s.Base {
		return decimal.NewFromInt(1), true
	}
	r, ok := s.Rates[code]
	return r, ok
}

// CurrencySettings is the record the storefront's currency switcher reads
// and writes: the fixed base currency plus the user's chosen display
// currency.
type CurrencySettings struct {
	BaseCurrency    string
	DisplayCurrency string
}
