// Package export persists finished schedules as tabular files, JSON summaries
// and plots.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kilianp07/chargeplan/core/model"
)

// WriteScheduleCSV writes one row per step combining the inputs with the
// optimized decisions. The soc column holds the state of charge at the start
// of the step; the terminal value appears only in the JSON summary.
func WriteScheduleCSV(w io.Writer, ts model.TimeSeries, sched *model.Schedule) error {
	cw := csv.NewWriter(w)
	header := []string{
		"step", "load_kw", "pv_kw", "price_buy", "price_sell",
		"charge_kw", "grid_import_kw", "grid_export_kw", "soc",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for t := 0; t < sched.Steps(); t++ {
		rec := []string{
			strconv.Itoa(t),
			fmtFloat(ts.LoadKW[t]),
			fmtFloat(ts.PVKW[t]),
			fmtFloat(ts.BuyPrice[t]),
			fmtFloat(ts.SellPrice[t]),
			fmtFloat(sched.ChargeKW[t]),
			fmtFloat(sched.GridImportKW[t]),
			fmtFloat(sched.GridExportKW[t]),
			fmtFloat(sched.SoC[t]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
