package domain

import "github.com/shopspring/decimal"

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists every serving size in menu order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

type Product struct {
	ID          int64
	SKU         string
	Name        string
	BasePrice   decimal.Decimal
	HasSizes    bool
	Prices      map[Size]decimal.Decimal
	Volumes     map[Size]int
	VolumeUnit  string
	Calories    map[Size]int
	IsAvailable bool
}
