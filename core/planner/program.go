package planner

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/chargeplan/core/model"
)

// program is one assembled linear program in general form:
//
//	minimize cᵀx  subject to  G·x ≤ h,  A·x = b
//
// Variables are laid out as [charge_0..T-1 | imp_0..T-1 | exp_0..T-1 |
// soc_0..T]. The index helpers are the only place that knows this layout, so
// further variable families (additional vehicles, discharge flows) can be
// appended without touching the solver or the extractor.
type program struct {
	cfg Config

	c []float64
	g *mat.Dense
	h []float64
	a *mat.Dense
	b []float64

	steps int
	nVars int
}

func (p *program) chargeIdx(t int) int { return t }
func (p *program) importIdx(t int) int { return p.steps + t }
func (p *program) exportIdx(t int) int { return 2*p.steps + t }

// socIdx addresses the state of charge at step boundary t, valid for
// t in [0, steps].
func (p *program) socIdx(t int) int { return 3*p.steps + t }

// buildProgram translates the configuration and input series into the LP.
// Inputs are assumed validated.
func buildProgram(cfg Config, ts model.TimeSeries) *program {
	steps := cfg.HorizonSteps
	p := &program{cfg: cfg, steps: steps, nVars: 4*steps + 1}

	// Objective: energy cost of grid exchange. Prices are per kWh, so power
	// rates are scaled by the step duration here and only here.
	p.c = make([]float64, p.nVars)
	for t := 0; t < steps; t++ {
		p.c[p.importIdx(t)] = ts.BuyPrice[t] * cfg.StepHours
		p.c[p.exportIdx(t)] = -ts.SellPrice[t] * cfg.StepHours
	}

	p.buildEqualities(ts)
	p.buildInequalities()
	return p
}

// buildEqualities assembles A·x = b: one power balance row per step, one SoC
// recurrence row per step and the initial SoC pin.
func (p *program) buildEqualities(ts model.TimeSeries) {
	steps := p.steps
	rows := 2*steps + 1
	p.a = mat.NewDense(rows, p.nVars, nil)
	p.b = make([]float64, rows)

	// soc[t+1] = soc[t] + eta * charge[t] * dt / capacity
	gain := p.cfg.ChargeEfficiency * p.cfg.StepHours / p.cfg.BatteryKWh

	for t := 0; t < steps; t++ {
		// pv + import = load + charge + export, with knowns moved right.
		p.a.Set(t, p.importIdx(t), 1)
		p.a.Set(t, p.chargeIdx(t), -1)
		p.a.Set(t, p.exportIdx(t), -1)
		p.b[t] = ts.LoadKW[t] - ts.PVKW[t]

		p.a.Set(steps+t, p.socIdx(t+1), 1)
		p.a.Set(steps+t, p.socIdx(t), -1)
		p.a.Set(steps+t, p.chargeIdx(t), -gain)
	}

	p.a.Set(2*steps, p.socIdx(0), 1)
	p.b[2*steps] = p.cfg.InitialSoC
}

// buildInequalities assembles G·x ≤ h: variable bounds plus the terminal SoC
// target. Import and export carry no upper bound; they are bounded
// economically through the objective.
func (p *program) buildInequalities() {
	steps := p.steps
	rows := 6*steps + 3
	p.g = mat.NewDense(rows, p.nVars, nil)
	p.h = make([]float64, rows)

	r := 0
	for t := 0; t < steps; t++ {
		p.g.Set(r, p.chargeIdx(t), 1)
		p.h[r] = p.cfg.MaxChargeKW
		r++
		p.g.Set(r, p.chargeIdx(t), -1)
		r++
		p.g.Set(r, p.importIdx(t), -1)
		r++
		p.g.Set(r, p.exportIdx(t), -1)
		r++
	}
	for t := 0; t <= steps; t++ {
		p.g.Set(r, p.socIdx(t), 1)
		p.h[r] = 1
		r++
		p.g.Set(r, p.socIdx(t), -1)
		r++
	}

	// Terminal target as an inequality: overshoot is allowed, the solver is
	// never forced to land exactly on the target.
	p.g.Set(r, p.socIdx(steps), -1)
	p.h[r] = -p.cfg.TargetSoC
}
