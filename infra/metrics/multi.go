package metrics

import (
	"errors"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
)

// MultiSink fans one plan event out to several recorders. All recorders are
// invoked; their errors are joined.
type MultiSink struct {
	sinks []coremetrics.PlanRecorder
}

// NewMultiSink creates a MultiSink over the given recorders.
func NewMultiSink(sinks ...coremetrics.PlanRecorder) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlan(ev coremetrics.PlanEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlan(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
