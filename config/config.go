package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
	"github.com/kilianp07/chargeplan/core/planner"
	"github.com/kilianp07/chargeplan/core/profile"
	"github.com/kilianp07/chargeplan/infra/mqtt"
	"github.com/kilianp07/chargeplan/pkg/export"
)

// Config aggregates every component configuration of one planning run.
type Config struct {
	Planner  planner.Config     `json:"planner"`
	Profiles profile.Config     `json:"profiles"`
	Output   export.Config      `json:"output"`
	MQTT     mqtt.Config        `json:"mqtt"`
	Metrics  coremetrics.Config `json:"metrics"`
	Logging  LoggingConfig      `json:"logging"`
}

// Load reads the configuration file, applies CP_* environment overrides,
// fills defaults and validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. CP_PLANNER__TARGET_SOC=0.9.
	if err := k.Load(env.Provider("CP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Profiles.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	if err := cfg.Profiles.Validate(); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, fmt.Errorf("mqtt: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return &cfg, nil
}
