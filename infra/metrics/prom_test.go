package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
	"github.com/kilianp07/chargeplan/core/model"
)

func TestPromSinkRecordsPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	ev := coremetrics.PlanEvent{
		PlanID:           "p-1",
		Status:           model.StatusOptimal,
		TotalCost:        12.5,
		FinalSoC:         0.85,
		EnergyChargedKWh: 48,
		SolveDuration:    20 * time.Millisecond,
		Time:             time.Now(),
	}
	require.NoError(t, sink.RecordPlan(ev))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["plan_runs_total"])
	assert.True(t, names["plan_solve_seconds"])
	assert.True(t, names["plan_total_cost"])
}

func TestPromSinkSkipsGaugesOnFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordPlan(coremetrics.PlanEvent{Status: model.StatusInfeasible}))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "plan_total_cost" {
			// Gauge registered but never set for non-optimal outcomes.
			assert.InDelta(t, 0, f.GetMetric()[0].GetGauge().GetValue(), 1e-12)
		}
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	_, err = NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	assert.NoError(t, err, "re-registration reuses existing collectors")
}

func TestMultiSinkFanOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	multi := NewMultiSink(prom, coremetrics.NopSink{})
	assert.NoError(t, multi.RecordPlan(coremetrics.PlanEvent{Status: model.StatusOptimal}))
}
