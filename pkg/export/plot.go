package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kilianp07/chargeplan/core/model"
)

// PowerFlowPlot renders the optimized power flows next to the input profiles
// and saves the chart as PNG.
func PowerFlowPlot(path string, ts model.TimeSeries, sched *model.Schedule) error {
	p := plot.New()
	p.Title.Text = "Optimized Power Flow Schedule"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Power (kW)"
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		"EV Charge (kW)", stepPoints(sched.ChargeKW),
		"Grid Import (kW)", stepPoints(sched.GridImportKW),
		"Grid Export (kW)", stepPoints(sched.GridExportKW),
		"Solar PV (kW)", stepPoints(ts.PVKW),
		"Home Load (kW)", stepPoints(ts.LoadKW),
	)
	if err != nil {
		return fmt.Errorf("add power lines: %w", err)
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save power plot: %w", err)
	}
	return nil
}

// SoCPlot renders the SOC trajectory with the target level marked and saves
// the chart as PNG.
func SoCPlot(path string, sched *model.Schedule, targetSoC float64) error {
	p := plot.New()
	p.Title.Text = "EV Battery State of Charge"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "State of Charge (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Legend.Top = true

	soc := make([]float64, len(sched.SoC))
	for i, v := range sched.SoC {
		soc[i] = v * 100
	}
	steps := float64(len(sched.SoC) - 1)
	target := plotter.XYs{{X: 0, Y: targetSoC * 100}, {X: steps, Y: targetSoC * 100}}

	err := plotutil.AddLines(p,
		"SOC", stepPoints(soc),
		"Target SOC", target,
	)
	if err != nil {
		return fmt.Errorf("add soc lines: %w", err)
	}
	if err := p.Save(10*vg.Inch, 3.5*vg.Inch, path); err != nil {
		return fmt.Errorf("save soc plot: %w", err)
	}
	return nil
}

func stepPoints(vals []float64) plotter.XYs {
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}
