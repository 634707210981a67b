package planner

import "fmt"

// Config defines the planning parameters for one optimization run.
type Config struct {
	HorizonSteps     int     `json:"horizon_steps"`
	StepHours        float64 `json:"step_hours"`
	BatteryKWh       float64 `json:"battery_kwh"`
	InitialSoC       float64 `json:"initial_soc"`
	TargetSoC        float64 `json:"target_soc"`
	MaxChargeKW      float64 `json:"max_charge_kw"`
	ChargeEfficiency float64 `json:"charge_efficiency"`
}

// SetDefaults applies fallback values modelling a typical home charging setup
// (11 kW wallbox, 80 kWh battery, hourly day-ahead horizon).
func (c *Config) SetDefaults() {
	if c.HorizonSteps == 0 {
		c.HorizonSteps = 24
	}
	if c.StepHours == 0 {
		c.StepHours = 1
	}
	if c.BatteryKWh == 0 {
		c.BatteryKWh = 80
	}
	if c.InitialSoC == 0 {
		c.InitialSoC = 0.25
	}
	if c.TargetSoC == 0 {
		c.TargetSoC = 0.85
	}
	if c.MaxChargeKW == 0 {
		c.MaxChargeKW = 11
	}
	if c.ChargeEfficiency == 0 {
		c.ChargeEfficiency = 0.95
	}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.HorizonSteps <= 0 {
		return fmt.Errorf("horizon_steps must be positive, got %d", c.HorizonSteps)
	}
	if c.StepHours <= 0 {
		return fmt.Errorf("step_hours must be positive, got %v", c.StepHours)
	}
	if c.BatteryKWh <= 0 {
		return fmt.Errorf("battery_kwh must be positive, got %v", c.BatteryKWh)
	}
	if c.MaxChargeKW < 0 {
		return fmt.Errorf("max_charge_kw must not be negative, got %v", c.MaxChargeKW)
	}
	if c.ChargeEfficiency <= 0 || c.ChargeEfficiency > 1 {
		return fmt.Errorf("charge_efficiency must be in (0,1], got %v", c.ChargeEfficiency)
	}
	if c.InitialSoC < 0 || c.InitialSoC > 1 {
		return fmt.Errorf("initial_soc must be in [0,1], got %v", c.InitialSoC)
	}
	if c.TargetSoC < 0 || c.TargetSoC > 1 {
		return fmt.Errorf("target_soc must be in [0,1], got %v", c.TargetSoC)
	}
	return nil
}
