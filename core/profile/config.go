package profile

import "fmt"

// Config drives the synthetic profile generator. Prices are in currency per
// kWh; the three buy-price bands model a typical residential time-of-use
// tariff.
type Config struct {
	// CSVPath, when set, replaces the generator with profiles loaded from
	// file.
	CSVPath string `json:"csv_path"`

	Seed int64 `json:"seed"`

	LoadBaseKW     float64 `json:"load_base_kw"`
	LoadSwingKW    float64 `json:"load_swing_kw"`
	LoadPeakHour   float64 `json:"load_peak_hour"`
	PVPeakKW       float64 `json:"pv_peak_kw"`
	PVPeakHour     float64 `json:"pv_peak_hour"`
	PVSpreadHours  float64 `json:"pv_spread_hours"`
	PVNoiseKW      float64 `json:"pv_noise_kw"`
	OffPeakPrice   float64 `json:"off_peak_price"`
	NormalPrice    float64 `json:"normal_price"`
	PeakPrice      float64 `json:"peak_price"`
	OffPeakStartHr int     `json:"off_peak_start_hour"`
	OffPeakEndHr   int     `json:"off_peak_end_hour"`
	PeakStartHr    int     `json:"peak_start_hour"`
	PeakEndHr      int     `json:"peak_end_hour"`
	FeedInTariff   float64 `json:"feed_in_tariff"`
}

// SetDefaults applies the reference residential scenario.
func (c *Config) SetDefaults() {
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.LoadBaseKW == 0 {
		c.LoadBaseKW = 1.2
	}
	if c.LoadSwingKW == 0 {
		c.LoadSwingKW = 0.8
	}
	if c.LoadPeakHour == 0 {
		c.LoadPeakHour = 19
	}
	if c.PVPeakKW == 0 {
		c.PVPeakKW = 5
	}
	if c.PVPeakHour == 0 {
		c.PVPeakHour = 12
	}
	if c.PVSpreadHours == 0 {
		c.PVSpreadHours = 3
	}
	if c.PVNoiseKW == 0 {
		c.PVNoiseKW = 0.1
	}
	if c.OffPeakPrice == 0 {
		c.OffPeakPrice = 0.18
	}
	if c.NormalPrice == 0 {
		c.NormalPrice = 0.30
	}
	if c.PeakPrice == 0 {
		c.PeakPrice = 0.48
	}
	if c.OffPeakStartHr == 0 {
		c.OffPeakStartHr = 22
	}
	if c.OffPeakEndHr == 0 {
		c.OffPeakEndHr = 7
	}
	if c.PeakStartHr == 0 {
		c.PeakStartHr = 17
	}
	if c.PeakEndHr == 0 {
		c.PeakEndHr = 21
	}
	if c.FeedInTariff == 0 {
		c.FeedInTariff = 0.08
	}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.LoadBaseKW < 0 || c.PVPeakKW < 0 {
		return fmt.Errorf("load and pv magnitudes must not be negative")
	}
	if c.LoadSwingKW > c.LoadBaseKW {
		return fmt.Errorf("load_swing_kw %v exceeds load_base_kw %v, load would go negative",
			c.LoadSwingKW, c.LoadBaseKW)
	}
	if c.PVSpreadHours <= 0 {
		return fmt.Errorf("pv_spread_hours must be positive")
	}
	for _, h := range []int{c.OffPeakStartHr, c.OffPeakEndHr, c.PeakStartHr, c.PeakEndHr} {
		if h < 0 || h > 23 {
			return fmt.Errorf("tariff hours must be in [0,23], got %d", h)
		}
	}
	return nil
}
