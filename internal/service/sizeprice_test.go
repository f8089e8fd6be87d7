package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycoderisyad/juicequ-pricing/internal/config"
	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

func TestSizePriceResolver_MultiplierFallback(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(10000),
		HasSizes:  true,
	}

	tests := []struct {
		size  domain.Size
		price int64
	}{
		{domain.SizeSmall, 8000},
		{domain.SizeMedium, 10000},
		{domain.SizeLarge, 12000},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			got := resolver.Resolve(product, tt.size)
			assert.True(t, decimal.NewFromInt(tt.price).Equal(got.Price),
				"expected %d, got %s", tt.price, got.Price)
		})
	}
}

func TestSizePriceResolver_CardProfileLarge(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileCard, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(10000),
		HasSizes:  true,
	}

	got := resolver.Resolve(product, domain.SizeLarge)
	assert.True(t, decimal.NewFromInt(13000).Equal(got.Price), "got %s", got.Price)
}

func TestSizePriceResolver_ExplicitPriceWins(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(10000),
		HasSizes:  true,
		Prices: map[domain.Size]decimal.Decimal{
			domain.SizeLarge: decimal.NewFromInt(15000),
		},
	}

	got := resolver.Resolve(product, domain.SizeLarge)
	assert.True(t, decimal.NewFromInt(15000).Equal(got.Price), "got %s", got.Price)

	// Zero entry falls back to the multiplier.
	product.Prices[domain.SizeLarge] = decimal.Zero
	got = resolver.Resolve(product, domain.SizeLarge)
	assert.True(t, decimal.NewFromInt(12000).Equal(got.Price), "got %s", got.Price)
}

func TestSizePriceResolver_NoSizesIgnoresSelection(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(7500),
		HasSizes:  false,
	}

	for _, size := range domain.Sizes {
		got := resolver.Resolve(product, size)
		assert.True(t, decimal.NewFromInt(7500).Equal(got.Price),
			"size %s: got %s", size, got.Price)
	}
}

func TestSizePriceResolver_Volumes(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(10000),
		HasSizes:  true,
	}

	got := resolver.Resolve(product, domain.SizeSmall)
	assert.Equal(t, 250, got.Volume)
	assert.Equal(t, "ml", got.Unit)

	got = resolver.Resolve(product, domain.SizeLarge)
	assert.Equal(t, 500, got.Volume)

	// Explicit volume table and unit override the defaults.
	product.Volumes = map[domain.Size]int{domain.SizeLarge: 600}
	product.VolumeUnit = "oz"
	got = resolver.Resolve(product, domain.SizeLarge)
	assert.Equal(t, 600, got.Volume)
	assert.Equal(t, "oz", got.Unit)
}

func TestSizePriceResolver_Calories(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(10000),
		HasSizes:  true,
		Calories:  map[domain.Size]int{domain.SizeLarge: 320},
	}

	assert.Equal(t, 320, resolver.Resolve(product, domain.SizeLarge).Calories)
	assert.Equal(t, 0, resolver.Resolve(product, domain.SizeSmall).Calories)
}

func TestSizePriceResolver_Idempotent(t *testing.T) {
	resolver := NewSizePriceResolver(config.ProfileMenu, "")

	product := &domain.Product{
		BasePrice: decimal.NewFromInt(12345),
		HasSizes:  true,
	}

	first := resolver.Resolve(product, domain.SizeLarge)
	second := resolver.Resolve(product, domain.SizeLarge)
	require.True(t, first.Price.Equal(second.Price))
	require.Equal(t, first.Volume, second.Volume)
}
