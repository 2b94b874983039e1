package sim

import (
	"fmt"

	"github.com/boarding-sim/boarding-sim/sim/trace"
)

// LuggageConfig enables the luggage-loading delay. Each passenger's loading
// time is drawn uniformly from [MinTicks, MaxTicks].
type LuggageConfig struct {
	Enabled  bool
	MinTicks int
	MaxTicks int
}

// SimConfig groups everything NewSimulator needs.
type SimConfig struct {
	Width      int
	Height     int // entrance row included
	Seed       int64
	Ordering   string // see ValidOrderingPolicies
	Luggage    LuggageConfig
	TraceLevel trace.TraceLevel
}

// Validate checks policy names and parameter ranges. Grid dimensions are
// checked by NewGrid.
func (c SimConfig) Validate() error {
	if !IsValidOrderingPolicy(c.Ordering) {
		return fmt.Errorf("unknown ordering policy %q", c.Ordering)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	if c.Luggage.Enabled {
		if c.Luggage.MinTicks < 0 {
			return fmt.Errorf("luggage min ticks must be non-negative, got %d", c.Luggage.MinTicks)
		}
		if c.Luggage.MaxTicks < c.Luggage.MinTicks {
			return fmt.Errorf("luggage max ticks (%d) must be >= min ticks (%d)", c.Luggage.MaxTicks, c.Luggage.MinTicks)
		}
	}
	return nil
}
