package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Converter converts amounts between currencies through the rate cache and
// formats them for display. Conversion is presentation-only: persisted and
// transmitted amounts stay in the base currency.
type Converter struct {
	cache *RateCache
	base  string
}

func NewConverter(cache *RateCache, base string) *Converter {
	return &Converter{cache: cache, base: base}
}

// Convert translates amount from one currency to another via the base
// pivot. Same-currency conversion never touches the cache. When rates are
// unavailable it fails loudly rather than returning the unconverted amount.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	snap, err := c.cache.Get(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}

	fromRate, ok := snap.Rate(from)
	if !ok || fromRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, from)
	}
	toRate, ok := snap.Rate(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, to)
	}

	return amount.Mul(toRate).Div(fromRate), nil
}

// DisplayPrice converts a base-currency amount into the user's display
// currency and formats it. Base-currency display bypasses conversion
// entirely.
func (c *Converter) DisplayPrice(ctx context.Context, amount decimal.Decimal, settings domain.CurrencySettings, lang language.Tag) (string, error) {
	display := settings.DisplayCurrency
	if display == "" || display == c.base {
		return c.Format(amount, c.base, lang)
	}
	converted, err := c.Convert(ctx, amount, c.base, display)
	if err != nil {
		return "", err
	}
	return c.Format(converted, display, lang)
}

// Format renders an amount with the currency's symbol and the locale's
// grouping and decimal rules, using the currency's cash rounding scale.
func (c *Converter) Format(amount decimal.Decimal, code string, lang language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, code)
	}

	scale, _ := currency.Cash.Rounding(unit)
	p := message.NewPrinter(lang)
	formatted := p.Sprintf("%v %v",
		currency.Symbol(unit),
		number.Decimal(amount.Round(int32(scale)).InexactFloat64(),
			number.MinFractionDigits(scale),
			number.MaxFractionDigits(scale),
		),
	)
	return formatted, nil
}

// FormatCompact abbreviates large base-currency amounts for the storefront's
// space-constrained cards (12.5K, 1.2M). Layered on Format for small
// amounts; never used for persisted or transmitted values.
func (c *Converter) FormatCompact(amount decimal.Decimal, code string, lang language.Tag) (string, error) {
	abs := amount.Abs()
	if abs.LessThan(thousand) {
		return c.Format(amount, code, lang)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, code)
	}

	var scaled decimal.Decimal
	var suffix string
	if abs.GreaterThanOrEqual(million) {
		scaled = amount.Div(million)
		suffix = "M"
	} else {
		scaled = amount.Div(thousand)
		suffix = "K"
	}

	digits := scaled.Round(1).String()
	digits = strings.TrimSuffix(digits, ".0")

	p := message.NewPrinter(lang)
	return p.Sprintf("%v %s%s", currency.Symbol(unit), digits, suffix), nil
}
