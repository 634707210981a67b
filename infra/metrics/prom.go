package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
	"github.com/kilianp07/chargeplan/core/model"
)

// PromSink records planning outcomes in Prometheus metrics.
type PromSink struct {
	plans     *prometheus.CounterVec
	solveTime prometheus.Histogram
	cost      prometheus.Gauge
	finalSoC  prometheus.Gauge
	energy    prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.PlanRecorder, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.PlanRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of planning runs by solve status",
	}, []string{"status"})
	solveTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_solve_seconds",
		Help:    "Wall-clock duration of one LP solve",
		Buckets: prometheus.DefBuckets,
	})
	cost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_total_cost",
		Help: "Objective value of the last optimal plan",
	})
	finalSoC := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_final_soc",
		Help: "Terminal state of charge of the last optimal plan",
	})
	energy := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_energy_charged_kwh",
		Help: "Total EV energy of the last optimal plan",
	})

	s := &PromSink{plans: plans, solveTime: solveTime, cost: cost, finalSoC: finalSoC, energy: energy}
	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.solveTime = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	for _, g := range []struct {
		c    prometheus.Gauge
		dest *prometheus.Gauge
	}{{cost, &s.cost}, {finalSoC, &s.finalSoC}, {energy, &s.energy}} {
		if err := reg.Register(g.c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*g.dest = are.ExistingCollector.(prometheus.Gauge)
			} else {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordPlan updates the counters and gauges for one planning run.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.plans.WithLabelValues(ev.Status.String()).Inc()
	s.solveTime.Observe(ev.SolveDuration.Seconds())
	if ev.Status == model.StatusOptimal {
		s.cost.Set(ev.TotalCost)
		s.finalSoC.Set(ev.FinalSoC)
		s.energy.Set(ev.EnergyChargedKWh)
	}
	return nil
}
