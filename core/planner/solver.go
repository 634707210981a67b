package planner

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexTol is the pivot tolerance handed to the simplex solver.
const simplexTol = 1e-7

// solution holds the solved variable values in the program's original
// (general form) layout, together with the objective value.
type solution struct {
	x   []float64
	obj float64
}

// solveSimplex converts the general-form program to standard form and runs
// one simplex solve. It can be overridden in tests to simulate solver
// failures.
var solveSimplex = func(p *program) (float64, []float64, error) {
	c, a, b := lp.Convert(p.c, p.g, p.h, p.a, p.b)
	obj, x, err := lp.Simplex(c, a, b, simplexTol, nil)
	return obj, x, err
}

// solve runs a single solver invocation and normalizes its outcome. The
// solver is treated as a black box: no retries, no algorithm fallback.
func solve(p *program) (*solution, error) {
	obj, std, err := solveSimplex(p)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			reachable := p.cfg.InitialSoC +
				p.cfg.ChargeEfficiency*p.cfg.MaxChargeKW*p.cfg.StepHours*float64(p.steps)/p.cfg.BatteryKWh
			if reachable > 1 {
				reachable = 1
			}
			return nil, fmt.Errorf("%w: target soc %.3f but at most %.3f reachable in %d steps at %.1f kW",
				ErrInfeasible, p.cfg.TargetSoC, reachable, p.steps, p.cfg.MaxChargeKW)
		case errors.Is(err, lp.ErrUnbounded):
			return nil, fmt.Errorf("%w: %v", ErrUnbounded, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrSolver, err)
		}
	}

	// Convert splits every general-form variable v into v⁺ − v⁻ and appends
	// one slack per inequality row; undo the split here.
	x := make([]float64, p.nVars)
	for i := range x {
		x[i] = std[i] - std[p.nVars+i]
	}
	return &solution{x: x, obj: obj}, nil
}
