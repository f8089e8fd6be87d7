package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// SizeProfile is a named multiplier table applied to a product's base price
// when it has no explicit per-size price. Callers pick one profile at wiring
// time and use it everywhere; the tables are never inlined at call sites.
type SizeProfile struct {
	Name        string
	Multipliers map[domain.Size]decimal.Decimal
}

var (
	// ProfileMenu is the table used by the menu and checkout screens.
	ProfileMenu = SizeProfile{
		Name: "menu",
		Multipliers: map[domain.Size]decimal.Decimal{
			domain.SizeSmall:  decimal.NewFromFloat(0.8),
			domain.SizeMedium: decimal.NewFromInt(1),
			domain.SizeLarge:  decimal.NewFromFloat(1.2),
		},
	}

	// ProfileCard is the product-card variant with a steeper large step.
	ProfileCard = SizeProfile{
		Name: "card",
		Multipliers: map[domain.Size]decimal.Decimal{
			domain.SizeSmall:  decimal.NewFromFloat(0.8),
			domain.SizeMedium: decimal.NewFromInt(1),
			domain.SizeLarge:  decimal.NewFromFloat(1.3),
		},
	}
)

// DefaultVolumes are the serving volumes used when a product carries no
// explicit volume table.
var DefaultVolumes = map[domain.Size]int{
	domain.SizeSmall:  250,
	domain.SizeMedium: 350,
	domain.SizeLarge:  500,
}

const (
	DefaultVolumeUnit = "ml"

	// Exchange rate cache
	DefaultRateTTL     = 1 * time.Hour
	DefaultRateTimeout = 10 * time.Second
)
