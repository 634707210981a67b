package export

import (
	"encoding/json"
	"io"

	"github.com/kilianp07/chargeplan/core/model"
)

// Summary is the serialized aggregate view of one schedule.
type Summary struct {
	PlanID           string  `json:"plan_id"`
	Status           string  `json:"status"`
	TotalCost        float64 `json:"total_cost"`
	FinalSoC         float64 `json:"final_soc"`
	EnergyChargedKWh float64 `json:"energy_charged_kwh"`
	PeakChargeKW     float64 `json:"peak_charge_kw"`
	PVChargeFraction float64 `json:"pv_charge_fraction"`
}

// NewSummary projects a schedule onto its aggregate summary.
func NewSummary(sched *model.Schedule) Summary {
	return Summary{
		PlanID:           sched.ID,
		Status:           sched.Status.String(),
		TotalCost:        sched.TotalCost,
		FinalSoC:         sched.FinalSoC(),
		EnergyChargedKWh: sched.EnergyChargedKWh,
		PeakChargeKW:     sched.PeakChargeKW,
		PVChargeFraction: sched.PVChargeFraction,
	}
}

// WriteSummaryJSON writes the schedule summary to w.
func WriteSummaryJSON(w io.Writer, sched *model.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSummary(sched))
}
