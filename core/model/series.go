package model

import "fmt"

// TimeSeries holds the exogenous per-step inputs of a planning run. All four
// slices are index-aligned to the same step grid.
type TimeSeries struct {
	LoadKW    []float64 // home consumption, kW
	PVKW      []float64 // solar generation, kW
	BuyPrice  []float64 // grid purchase price, currency per kWh
	SellPrice []float64 // feed-in tariff, currency per kWh
}

// Steps returns the number of steps covered by the series.
func (ts TimeSeries) Steps() int { return len(ts.LoadKW) }

// Validate checks that all series have the expected length and that physical
// quantities are non-negative. Prices may take any value.
func (ts TimeSeries) Validate(steps int) error {
	if len(ts.LoadKW) != steps || len(ts.PVKW) != steps ||
		len(ts.BuyPrice) != steps || len(ts.SellPrice) != steps {
		return fmt.Errorf("series lengths load=%d pv=%d buy=%d sell=%d, want %d",
			len(ts.LoadKW), len(ts.PVKW), len(ts.BuyPrice), len(ts.SellPrice), steps)
	}
	for t, v := range ts.LoadKW {
		if v < 0 {
			return fmt.Errorf("load_kw[%d] = %v is negative", t, v)
		}
	}
	for t, v := range ts.PVKW {
		if v < 0 {
			return fmt.Errorf("pv_kw[%d] = %v is negative", t, v)
		}
	}
	return nil
}
