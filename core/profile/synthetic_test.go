package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

func TestGeneratorSeriesShape(t *testing.T) {
	g := NewGenerator(defaultConfig())
	ts := g.Series(24, 1)

	require.Equal(t, 24, ts.Steps())
	require.NoError(t, ts.Validate(24))
	for step := 0; step < 24; step++ {
		assert.GreaterOrEqual(t, ts.LoadKW[step], 0.0)
		assert.GreaterOrEqual(t, ts.PVKW[step], 0.0)
		assert.LessOrEqual(t, ts.SellPrice[step], ts.BuyPrice[step],
			"feed-in tariff should not exceed any buy band")
	}

	// Night PV stays around zero, midday PV dominates.
	assert.Less(t, ts.PVKW[2], 1.0)
	assert.Greater(t, ts.PVKW[12], 3.0)
}

func TestGeneratorTariffBands(t *testing.T) {
	cfg := defaultConfig()
	g := NewGenerator(cfg)
	ts := g.Series(24, 1)

	assert.InDelta(t, cfg.OffPeakPrice, ts.BuyPrice[3], 1e-12)  // night band
	assert.InDelta(t, cfg.OffPeakPrice, ts.BuyPrice[23], 1e-12) // after 22h
	assert.InDelta(t, cfg.NormalPrice, ts.BuyPrice[10], 1e-12)
	assert.InDelta(t, cfg.PeakPrice, ts.BuyPrice[18], 1e-12) // evening peak
	assert.InDelta(t, cfg.FeedInTariff, ts.SellPrice[0], 1e-12)
}

func TestGeneratorDeterministicPerSeed(t *testing.T) {
	cfg := defaultConfig()
	first := NewGenerator(cfg).Series(24, 1)
	second := NewGenerator(cfg).Series(24, 1)
	assert.Equal(t, first, second)

	cfg.Seed = 7
	third := NewGenerator(cfg).Series(24, 1)
	assert.NotEqual(t, first.PVKW, third.PVKW, "different seeds change PV noise")
}

func TestGeneratorSubHourlySteps(t *testing.T) {
	g := NewGenerator(defaultConfig())
	ts := g.Series(48, 0.5)
	require.Equal(t, 48, ts.Steps())
	// Two half-hour steps fall into the same tariff hour.
	assert.InDelta(t, ts.BuyPrice[0], ts.BuyPrice[1], 1e-12)
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.LoadSwingKW = bad.LoadBaseKW + 1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.PVSpreadHours = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.PeakStartHr = 25
	assert.Error(t, bad.Validate())
}
