package test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeplan/app"
	"github.com/kilianp07/chargeplan/config"
	"github.com/kilianp07/chargeplan/pkg/export"
)

// TestPlanPipeline exercises the whole chain the CLI drives: configuration
// file, synthetic profiles, LP solve and artifact export.
func TestPlanPipeline(t *testing.T) {
	outDir := t.TempDir()
	cfgYAML := `
planner:
  horizon_steps: 24
  step_hours: 1
  battery_kwh: 80
  initial_soc: 0.25
  target_soc: 0.85
  max_charge_kw: 11
  charge_efficiency: 0.95
profiles:
  seed: 42
output:
  dir: ` + outDir + `
  csv: true
  json: true
  profiles: true
`
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	svc, err := app.New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()
	require.NoError(t, svc.Run(context.Background()))

	raw, err := os.ReadFile(filepath.Join(outDir, "cost_summary.json"))
	require.NoError(t, err)
	var summary export.Summary
	require.NoError(t, json.Unmarshal(raw, &summary))

	assert.Equal(t, "optimal", summary.Status)
	assert.GreaterOrEqual(t, summary.FinalSoC, 0.85-1e-6)
	// 60% of an 80 kWh battery at 95% efficiency.
	assert.InDelta(t, 0.6*80/0.95, summary.EnergyChargedKWh, 1e-3)
	assert.LessOrEqual(t, summary.PeakChargeKW, 11+1e-6)

	sched, err := os.ReadFile(filepath.Join(outDir, "schedule.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(sched), "charge_kw")
}
