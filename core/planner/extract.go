package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kilianp07/chargeplan/core/model"
)

// socTol is the accepted drift between the solved terminal SoC and the
// configured target. It guards against silent solver tolerance creep.
const socTol = 1e-6

// extract maps solved variable values into a Schedule and computes the
// derived metrics. It re-checks the terminal SoC so a solution that drifted
// past solver tolerances is rejected instead of silently exported.
func extract(p *program, sol *solution, ts model.TimeSeries) (*model.Schedule, error) {
	steps := p.steps
	s := &model.Schedule{
		ID:           uuid.NewString(),
		ChargeKW:     make([]float64, steps),
		GridImportKW: make([]float64, steps),
		GridExportKW: make([]float64, steps),
		SoC:          make([]float64, steps+1),
		TotalCost:    sol.obj,
		Status:       model.StatusOptimal,
	}

	for t := 0; t < steps; t++ {
		s.ChargeKW[t] = clampNoise(sol.x[p.chargeIdx(t)], 0, p.cfg.MaxChargeKW)
		s.GridImportKW[t] = clampLow(sol.x[p.importIdx(t)], 0)
		s.GridExportKW[t] = clampLow(sol.x[p.exportIdx(t)], 0)
	}
	for t := 0; t <= steps; t++ {
		s.SoC[t] = clampNoise(sol.x[p.socIdx(t)], 0, 1)
	}

	if s.FinalSoC() < p.cfg.TargetSoC-socTol {
		return nil, fmt.Errorf("%w: terminal soc %.6f below target %.6f",
			ErrExtraction, s.FinalSoC(), p.cfg.TargetSoC)
	}

	for t := 0; t < steps; t++ {
		energy := s.ChargeKW[t] * p.cfg.StepHours
		s.EnergyChargedKWh += energy
		if s.ChargeKW[t] > s.PeakChargeKW {
			s.PeakChargeKW = s.ChargeKW[t]
		}
		// Attribute charging to PV up to the step's PV surplus. The LP does
		// not tag energy by source, so this is an allocation heuristic.
		if surplus := ts.PVKW[t] - ts.LoadKW[t]; surplus > 0 {
			pv := surplus
			if s.ChargeKW[t] < pv {
				pv = s.ChargeKW[t]
			}
			s.PVChargeFraction += pv * p.cfg.StepHours
		}
	}
	if s.EnergyChargedKWh > 0 {
		s.PVChargeFraction /= s.EnergyChargedKWh
	} else {
		s.PVChargeFraction = 0
	}

	return s, nil
}

// clampNoise snaps values a hair outside [lo, hi] back onto the bound. Values
// beyond solver noise are left untouched so genuine violations stay visible.
func clampNoise(v, lo, hi float64) float64 {
	if v < lo && v > lo-socTol {
		return lo
	}
	if v > hi && v < hi+socTol {
		return hi
	}
	return v
}

func clampLow(v, lo float64) float64 {
	if v < lo && v > lo-socTol {
		return lo
	}
	return v
}
