package profile

import (
	"math"
	"math/rand"

	"github.com/kilianp07/chargeplan/core/model"
)

// Generator produces deterministic synthetic input profiles: a sinusoidal
// home load with an evening peak, a Gaussian PV curve around solar noon with
// a little measurement noise, a three-band time-of-use buy price and a flat
// feed-in tariff.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// NewGenerator creates a Generator seeded from the configuration so repeated
// runs yield identical profiles.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, rand: rand.New(rand.NewSource(cfg.Seed))}
}

// Series generates profiles for the given number of steps of stepHours each.
// Steps wrap around the 24h day, so horizons longer than a day repeat the
// daily pattern.
func (g *Generator) Series(steps int, stepHours float64) model.TimeSeries {
	ts := model.TimeSeries{
		LoadKW:    make([]float64, steps),
		PVKW:      make([]float64, steps),
		BuyPrice:  make([]float64, steps),
		SellPrice: make([]float64, steps),
	}
	for t := 0; t < steps; t++ {
		hour := math.Mod(float64(t)*stepHours, 24)
		ts.LoadKW[t] = g.load(hour)
		ts.PVKW[t] = g.pv(hour)
		ts.BuyPrice[t] = g.buyPrice(hour)
		ts.SellPrice[t] = g.cfg.FeedInTariff
	}
	return ts
}

func (g *Generator) load(hour float64) float64 {
	// Daily sinusoid rising through LoadPeakHour-12 towards the evening.
	phase := 2 * math.Pi * (hour - (g.cfg.LoadPeakHour - 12)) / 24
	return g.cfg.LoadBaseKW + g.cfg.LoadSwingKW*math.Sin(phase)
}

func (g *Generator) pv(hour float64) float64 {
	arg := (hour - g.cfg.PVPeakHour) / g.cfg.PVSpreadHours
	v := g.cfg.PVPeakKW*math.Exp(-0.5*arg*arg) + g.rand.NormFloat64()*g.cfg.PVNoiseKW
	if v < 0 {
		return 0
	}
	return v
}

func (g *Generator) buyPrice(hour float64) float64 {
	h := int(hour) % 24
	if h >= g.cfg.OffPeakStartHr || h < g.cfg.OffPeakEndHr {
		return g.cfg.OffPeakPrice
	}
	if h >= g.cfg.PeakStartHr && h <= g.cfg.PeakEndHr {
		return g.cfg.PeakPrice
	}
	return g.cfg.NormalPrice
}
