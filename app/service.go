package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kilianp07/chargeplan/config"
	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
	"github.com/kilianp07/chargeplan/core/model"
	"github.com/kilianp07/chargeplan/core/planner"
	"github.com/kilianp07/chargeplan/core/profile"
	"github.com/kilianp07/chargeplan/infra/logger"
	"github.com/kilianp07/chargeplan/infra/metrics"
	"github.com/kilianp07/chargeplan/infra/mqtt"
	"github.com/kilianp07/chargeplan/internal/eventbus"
	"github.com/kilianp07/chargeplan/pkg/export"
)

// Service wires the profile source, the planner, the result sinks and the
// observability plumbing for one planning run.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	planner   *planner.Planner
	bus       *eventbus.Bus
	sink      coremetrics.PlanRecorder
	publisher *mqtt.Publisher
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := cfg.Logging.Apply(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	var sinks []coremetrics.PlanRecorder
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.PlanRecorder = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var publisher *mqtt.Publisher
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		publisher = pub
	}

	return &Service{
		cfg:       cfg,
		log:       logg,
		planner:   planner.New(logger.New("planner")),
		bus:       eventbus.New(),
		sink:      sink,
		publisher: publisher,
	}, nil
}

// Run executes one planning cycle: input acquisition, optimization, artifact
// export and event publication. With Prometheus enabled it then blocks until
// the context is cancelled so the metrics endpoint stays scrapeable.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sub := s.bus.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range sub {
			if err := s.sink.RecordPlan(ev); err != nil {
				s.log.Errorf("record plan: %v", err)
			}
		}
	}()

	err := s.runOnce()

	if err == nil && s.cfg.Metrics.PrometheusEnabled {
		s.log.Infof("plan finished, serving metrics on %s until shutdown", s.cfg.Metrics.PrometheusAddr)
		<-ctx.Done()
	}

	s.bus.Close()
	wg.Wait()
	return err
}

func (s *Service) runOnce() error {
	series, err := s.series()
	if err != nil {
		return err
	}

	start := time.Now()
	sched, planErr := s.planner.Plan(s.cfg.Planner, series)
	solveDuration := time.Since(start)

	ev := coremetrics.PlanEvent{
		Status:        statusOf(planErr),
		HorizonSteps:  s.cfg.Planner.HorizonSteps,
		SolveDuration: solveDuration,
		Time:          time.Now(),
	}
	if sched != nil {
		ev.PlanID = sched.ID
		ev.TotalCost = sched.TotalCost
		ev.FinalSoC = sched.FinalSoC()
		ev.EnergyChargedKWh = sched.EnergyChargedKWh
		ev.PeakChargeKW = sched.PeakChargeKW
		ev.PVChargeFraction = sched.PVChargeFraction
	}
	s.bus.Publish(ev)

	if planErr != nil {
		return planErr
	}

	s.log.Infof("plan %s solved in %s: cost %.2f, final soc %.1f%%, %.1f kWh charged",
		sched.ID, solveDuration.Round(time.Millisecond), sched.TotalCost,
		sched.FinalSoC()*100, sched.EnergyChargedKWh)

	if err := s.export(series, sched); err != nil {
		return err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishSchedule(sched); err != nil {
			return fmt.Errorf("publish schedule: %w", err)
		}
	}
	return nil
}

// series loads the input profiles from file when configured, otherwise it
// generates the synthetic scenario.
func (s *Service) series() (model.TimeSeries, error) {
	if path := s.cfg.Profiles.CSVPath; path != "" {
		s.log.Infof("loading profiles from %s", path)
		return profile.ReadCSVFile(path)
	}
	gen := profile.NewGenerator(s.cfg.Profiles)
	return gen.Series(s.cfg.Planner.HorizonSteps, s.cfg.Planner.StepHours), nil
}

func (s *Service) export(series model.TimeSeries, sched *model.Schedule) error {
	out := s.cfg.Output
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	if out.CSV {
		if err := writeFile(filepath.Join(out.Dir, "schedule.csv"), func(f *os.File) error {
			return export.WriteScheduleCSV(f, series, sched)
		}); err != nil {
			return err
		}
	}
	if out.JSON {
		if err := writeFile(filepath.Join(out.Dir, "cost_summary.json"), func(f *os.File) error {
			return export.WriteSummaryJSON(f, sched)
		}); err != nil {
			return err
		}
	}
	if out.Profiles {
		if err := writeFile(filepath.Join(out.Dir, "profiles.csv"), func(f *os.File) error {
			return profile.WriteCSV(f, series)
		}); err != nil {
			return err
		}
	}
	if out.Plots {
		if err := export.PowerFlowPlot(filepath.Join(out.Dir, "schedule_plot.png"), series, sched); err != nil {
			return err
		}
		if err := export.SoCPlot(filepath.Join(out.Dir, "soc_plot.png"), sched, s.cfg.Planner.TargetSoC); err != nil {
			return err
		}
	}
	s.log.Infof("results written to %s", out.Dir)
	return nil
}

// Close releases external connections.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	return nil
}

func statusOf(err error) model.SolveStatus {
	switch {
	case err == nil:
		return model.StatusOptimal
	case errors.Is(err, planner.ErrInfeasible):
		return model.StatusInfeasible
	case errors.Is(err, planner.ErrUnbounded):
		return model.StatusUnbounded
	default:
		return model.StatusError
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
