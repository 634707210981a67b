package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleYAML = `
planner:
  horizon_steps: 24
  step_hours: 1
  battery_kwh: 60
  initial_soc: 0.2
  target_soc: 0.8
  max_charge_kw: 7.4
  charge_efficiency: 0.92
profiles:
  seed: 7
output:
  dir: /tmp/chargeplan-test
  json: true
logging:
  level: debug
`

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Planner.HorizonSteps)
	assert.InDelta(t, 60, cfg.Planner.BatteryKWh, 1e-12)
	assert.InDelta(t, 7.4, cfg.Planner.MaxChargeKW, 1e-12)
	assert.EqualValues(t, 7, cfg.Profiles.Seed)
	assert.Equal(t, "/tmp/chargeplan-test", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections fall back to defaults.
	assert.InDelta(t, 0.08, cfg.Profiles.FeedInTariff, 1e-12)
	assert.False(t, cfg.MQTT.Enabled)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"planner":{"target_soc":0.9}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, cfg.Planner.TargetSoC, 1e-12)
	assert.Equal(t, 24, cfg.Planner.HorizonSteps, "defaults applied")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CP_PLANNER__TARGET_SOC", "0.77")
	path := writeConfig(t, "config.yaml", sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.77, cfg.Planner.TargetSoC, 1e-12)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "config.yaml", "planner:\n  charge_efficiency: 1.5\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "charge_efficiency")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoggingConfig(t *testing.T) {
	c := LoggingConfig{}
	c.SetDefaults()
	assert.Equal(t, "info", c.Level)
	assert.NoError(t, c.Validate())
	assert.NoError(t, c.Apply())

	bad := LoggingConfig{Level: "verbose"}
	assert.Error(t, bad.Validate())
}
