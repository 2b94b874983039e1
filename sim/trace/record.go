// Package trace provides per-tick movement recording for boarding runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// MoveRecord captures a single one-cell relocation of a passenger.
type MoveRecord struct {
	Passenger string `yaml:"passenger"`
	FromX     int    `yaml:"from_x"`
	FromY     int    `yaml:"from_y"`
	ToX       int    `yaml:"to_x"`
	ToY       int    `yaml:"to_y"`
}

// TickRecord captures everything that happened during one tick.
type TickRecord struct {
	Tick    int64        `yaml:"tick"`
	Moves   []MoveRecord `yaml:"moves,omitempty"`
	Loading []string     `yaml:"loading,omitempty"` // passengers that spent the tick loading luggage
	Seated  int          `yaml:"seated"`            // passengers in their assigned seat after the tick
}

// EmbarkRecord captures the tick at which a passenger reached its seat.
type EmbarkRecord struct {
	Passenger string `yaml:"passenger"`
	Seat      string `yaml:"seat"`
	Tick      int64  `yaml:"tick"`
}
