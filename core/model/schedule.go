package model

// SolveStatus is the normalized outcome of one solver invocation.
type SolveStatus int

const (
	StatusOptimal SolveStatus = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

// String returns a human-readable representation of the solve status.
func (s SolveStatus) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Schedule is the immutable result of one planning run. The power slices have
// one entry per step; SoC has one extra entry for the state after the last
// step. A Schedule is only produced for an optimal solve; all other outcomes
// surface as errors.
type Schedule struct {
	ID string // unique run identifier

	ChargeKW     []float64 // EV charging power per step
	GridImportKW []float64 // grid purchase per step
	GridExportKW []float64 // grid feed-in per step
	SoC          []float64 // state of charge at each step boundary, length steps+1

	TotalCost float64 // realized objective value, currency units
	Status    SolveStatus

	// Derived metrics computed at extraction time.
	EnergyChargedKWh float64 // total energy drawn by the EV
	PeakChargeKW     float64 // largest per-step charging power
	PVChargeFraction float64 // share of charging energy attributed to PV surplus
}

// Steps returns the number of steps the schedule covers.
func (s *Schedule) Steps() int { return len(s.ChargeKW) }

// FinalSoC returns the state of charge after the last step.
func (s *Schedule) FinalSoC() float64 {
	if len(s.SoC) == 0 {
		return 0
	}
	return s.SoC[len(s.SoC)-1]
}
