package trace

import (
	"fmt"
	"io"

	"github.com/rs/xid"
	"gopkg.in/yaml.v3"
)

// TraceLevel controls the verbosity of movement tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelMoves captures every move, loading tick and embark.
	TraceLevelMoves TraceLevel = "moves"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelMoves: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level    TraceLevel `yaml:"level"`
	Ordering string     `yaml:"ordering"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Seed     int64      `yaml:"seed"`
}

// SimulationTrace collects movement records during a boarding run.
type SimulationTrace struct {
	RunID   string         `yaml:"run_id"`
	Config  TraceConfig    `yaml:"config"`
	Ticks   []TickRecord   `yaml:"ticks"`
	Embarks []EmbarkRecord `yaml:"embarks"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording, stamped
// with a fresh run ID.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		RunID:   xid.New().String(),
		Config:  config,
		Ticks:   make([]TickRecord, 0),
		Embarks: make([]EmbarkRecord, 0),
	}
}

// Enabled reports whether records should be collected.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelMoves
}

// RecordTick appends a tick record.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	st.Ticks = append(st.Ticks, record)
}

// RecordEmbark appends an embark record.
func (st *SimulationTrace) RecordEmbark(record EmbarkRecord) {
	st.Embarks = append(st.Embarks, record)
}

// WriteYAML encodes the trace as a YAML document.
func (st *SimulationTrace) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding trace %s: %w", st.RunID, err)
	}
	return enc.Close()
}
