// Package config provides configuration loading and validation for a
// simulation run.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/fauna/internal/species"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all parameters of one run.
type Config struct {
	Run        RunConfig        `yaml:"run"`
	Population PopulationConfig `yaml:"population"`
	Species    species.Species  `yaml:"species"`
	Habitat    HabitatConfig    `yaml:"habitat"`
}

// RunConfig holds loop and observability settings.
type RunConfig struct {
	Seed       int64  `yaml:"seed"`        // 0 = derive from the clock
	Months     uint64 `yaml:"months"`      // ticks to run; 0 = until extinction or signal
	IntervalMS int    `yaml:"interval_ms"` // real-time pacing per tick; 0 = unthrottled
	LogLevel   string `yaml:"log_level"`
	HTTPPort   int    `yaml:"http_port"` // 0 = no observation API
}

// PopulationConfig holds founding population settings.
type PopulationConfig struct {
	Initial          int `yaml:"initial"`
	MaxStartAgeYears int `yaml:"max_start_age_years"`
}

// HabitatConfig holds the per-tick resource capacities and climate shape.
type HabitatConfig struct {
	FoodPerTick  int           `yaml:"food_per_tick"`
	WaterPerTick int           `yaml:"water_per_tick"`
	Climate      ClimateConfig `yaml:"climate"`
}

// ClimateConfig shapes the ambient temperature curve.
type ClimateConfig struct {
	Baseline          float64 `yaml:"baseline"`
	SeasonalAmplitude float64 `yaml:"seasonal_amplitude"`
	NoiseAmplitude    float64 `yaml:"noise_amplitude"`
	NoiseFrequency    float64 `yaml:"noise_frequency"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from path, falling back to the embedded defaults
// when path is empty. User files start from the defaults, so partial files
// only need the keys they change.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if err := c.Species.Validate(); err != nil {
		return err
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("config: population.initial must be non-negative, got %d", c.Population.Initial)
	}
	if c.Population.MaxStartAgeYears < 0 {
		return fmt.Errorf("config: population.max_start_age_years must be non-negative, got %d", c.Population.MaxStartAgeYears)
	}
	if c.Habitat.FoodPerTick < 0 || c.Habitat.WaterPerTick < 0 {
		return fmt.Errorf("config: habitat capacities must be non-negative")
	}
	if c.Run.IntervalMS < 0 {
		return fmt.Errorf("config: run.interval_ms must be non-negative, got %d", c.Run.IntervalMS)
	}
	if c.Run.HTTPPort < 0 || c.Run.HTTPPort > 65535 {
		return fmt.Errorf("config: run.http_port %d out of range", c.Run.HTTPPort)
	}
	switch c.Run.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Run.LogLevel)
	}
	return nil
}
