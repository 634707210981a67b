package metrics

import (
	"time"

	"github.com/kilianp07/chargeplan/core/model"
)

// PlanEvent captures the outcome of one planning run for observability
// purposes.
type PlanEvent struct {
	PlanID           string
	Status           model.SolveStatus
	TotalCost        float64
	FinalSoC         float64
	EnergyChargedKWh float64
	PeakChargeKW     float64
	PVChargeFraction float64
	HorizonSteps     int
	SolveDuration    time.Duration
	Time             time.Time
}

// PlanRecorder records planning outcomes.
type PlanRecorder interface {
	RecordPlan(ev PlanEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies fallback values.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
