package planner

import (
	"fmt"

	corelogger "github.com/kilianp07/chargeplan/core/logger"
	"github.com/kilianp07/chargeplan/core/model"
)

// Planner turns a configuration and an input series into an optimal charging
// schedule. Every call builds a fresh model; no state is shared across runs.
type Planner struct {
	log corelogger.Logger
}

// New creates a Planner. A nil logger disables logging.
func New(log corelogger.Logger) *Planner {
	if log == nil {
		log = noplog{}
	}
	return &Planner{log: log}
}

// Plan validates the inputs, assembles the LP, solves it and extracts the
// schedule. Any failure is terminal for the run: no partial schedule is ever
// returned.
func (p *Planner) Plan(cfg Config, ts model.TimeSeries) (*model.Schedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := ts.Validate(cfg.HorizonSteps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	for t := 0; t < cfg.HorizonSteps; t++ {
		if ts.SellPrice[t] > ts.BuyPrice[t] {
			// The LP has no mutual-exclusion constraint on import/export and
			// will arbitrage an inverted spread. Flag it instead of failing.
			p.log.Warnf("sell price %.4f above buy price %.4f at step %d, schedule may import and export simultaneously",
				ts.SellPrice[t], ts.BuyPrice[t], t)
		}
	}

	prog := buildProgram(cfg, ts)
	sol, err := solve(prog)
	if err != nil {
		return nil, err
	}
	sched, err := extract(prog, sol, ts)
	if err != nil {
		return nil, err
	}

	p.log.Debugw("plan solved", map[string]any{
		"id":          sched.ID,
		"steps":       cfg.HorizonSteps,
		"total_cost":  sched.TotalCost,
		"final_soc":   sched.FinalSoC(),
		"energy_kwh":  sched.EnergyChargedKWh,
		"peak_kw":     sched.PeakChargeKW,
		"pv_fraction": sched.PVChargeFraction,
	})
	return sched, nil
}

type noplog struct{}

func (noplog) Debugf(string, ...any)         {}
func (noplog) Debugw(string, map[string]any) {}
func (noplog) Infof(string, ...any)          {}
func (noplog) Warnf(string, ...any)          {}
func (noplog) Errorf(string, ...any)         {}
