package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boarding-sim/boarding-sim/sim/trace"
)

// ScenarioBundle holds a boarding scenario, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML"; they do not override CLI defaults.
// String fields use empty string for "not set".
type ScenarioBundle struct {
	Cabin    CabinConfig    `yaml:"cabin"`
	Ordering OrderingConfig `yaml:"ordering"`
	Luggage  LuggageBundle  `yaml:"luggage"`
	Trace    string         `yaml:"trace"`
	Seed     *int64         `yaml:"seed"`
	MaxTicks *int64         `yaml:"max_ticks"`
}

// CabinConfig holds the grid dimensions.
type CabinConfig struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

// OrderingConfig holds the ordering policy selection.
type OrderingConfig struct {
	Policy string `yaml:"policy"`
}

// LuggageBundle holds the luggage-loading variant settings.
type LuggageBundle struct {
	Enabled  *bool `yaml:"enabled"`
	MinTicks *int  `yaml:"min_ticks"`
	MaxTicks *int  `yaml:"max_ticks"`
}

// LoadScenarioBundle reads and parses a YAML scenario file.
func LoadScenarioBundle(path string) (*ScenarioBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var bundle ScenarioBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all names and parameter ranges in the bundle are valid.
func (b *ScenarioBundle) Validate() error {
	if !IsValidOrderingPolicy(b.Ordering.Policy) {
		return fmt.Errorf("unknown ordering policy %q", b.Ordering.Policy)
	}
	if !trace.IsValidTraceLevel(b.Trace) {
		return fmt.Errorf("unknown trace level %q", b.Trace)
	}
	if b.Cabin.Width != nil && *b.Cabin.Width < 1 {
		return fmt.Errorf("cabin width must be >= 1, got %d", *b.Cabin.Width)
	}
	if b.Cabin.Height != nil && *b.Cabin.Height < 2 {
		return fmt.Errorf("cabin height must be >= 2, got %d", *b.Cabin.Height)
	}
	if b.Luggage.MinTicks != nil && *b.Luggage.MinTicks < 0 {
		return fmt.Errorf("luggage min_ticks must be non-negative, got %d", *b.Luggage.MinTicks)
	}
	if b.Luggage.MinTicks != nil && b.Luggage.MaxTicks != nil && *b.Luggage.MaxTicks < *b.Luggage.MinTicks {
		return fmt.Errorf("luggage max_ticks (%d) must be >= min_ticks (%d)", *b.Luggage.MaxTicks, *b.Luggage.MinTicks)
	}
	if b.MaxTicks != nil && *b.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", *b.MaxTicks)
	}
	return nil
}

// ApplyTo overlays the fields set in the bundle onto cfg.
func (b *ScenarioBundle) ApplyTo(cfg *SimConfig) {
	if b.Cabin.Width != nil {
		cfg.Width = *b.Cabin.Width
	}
	if b.Cabin.Height != nil {
		cfg.Height = *b.Cabin.Height
	}
	if b.Ordering.Policy != "" {
		cfg.Ordering = b.Ordering.Policy
	}
	if b.Trace != "" {
		cfg.TraceLevel = trace.TraceLevel(b.Trace)
	}
	if b.Seed != nil {
		cfg.Seed = *b.Seed
	}
	if b.Luggage.Enabled != nil {
		cfg.Luggage.Enabled = *b.Luggage.Enabled
	}
	if b.Luggage.MinTicks != nil {
		cfg.Luggage.MinTicks = *b.Luggage.MinTicks
	}
	if b.Luggage.MaxTicks != nil {
		cfg.Luggage.MaxTicks = *b.Luggage.MaxTicks
	}
}
