package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/juicequ")
	t.Setenv("RATE_PROVIDER_URL", "https://rates.example.com/latest")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "IDR", cfg.BaseCurrency)
	assert.Equal(t, time.Hour, cfg.RateTTL)
	assert.Equal(t, 10*time.Second, cfg.RateTimeout)
	assert.Equal(t, "ml", cfg.VolumeUnit)

	profile, err := cfg.SizeProfile()
	require.NoError(t, err)
	assert.Equal(t, "menu", profile.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the vars truly absent.
	t.Setenv("DATABASE_URL", "x")
	t.Setenv("RATE_PROVIDER_URL", "x")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("RATE_PROVIDER_URL")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownProfile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/juicequ")
	t.Setenv("RATE_PROVIDER_URL", "https://rates.example.com/latest")
	t.Setenv("SIZE_PROFILE", "bogus")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown size profile")
}

func TestSizeProfiles(t *testing.T) {
	// The two tables agree everywhere except the large step.
	small := ProfileMenu.Multipliers[domain.SizeSmall]
	assert.True(t, small.Equal(ProfileCard.Multipliers[domain.SizeSmall]))

	menuLarge := ProfileMenu.Multipliers[domain.SizeLarge]
	cardLarge := ProfileCard.Multipliers[domain.SizeLarge]
	assert.True(t, menuLarge.LessThan(cardLarge))
}
