// Tracks run-wide and per-passenger boarding metrics.

package sim

import (
	"fmt"
	"io"
	"sort"
)

// Metrics aggregates statistics about a boarding run for final reporting.
type Metrics struct {
	Iterations    int64 // ticks elapsed
	Passengers    int   // passengers on the grid
	Seated        int   // passengers that embarked
	Moves         int   // one-cell relocations across all passengers
	LuggageTicks  int   // turns spent loading luggage
	PeakOccupancy int   // most passengers seen in one non-entrance cell
	PeakCell      string

	EmbarkTick map[string]int64 // passenger label -> tick it embarked
}

// NewMetrics creates Metrics for a run with the given passenger count.
func NewMetrics(passengers int) *Metrics {
	return &Metrics{
		Passengers: passengers,
		EmbarkTick: make(map[string]int64),
	}
}

func (m *Metrics) recordEmbark(label string, tick int64) {
	if _, ok := m.EmbarkTick[label]; ok {
		return
	}
	m.EmbarkTick[label] = tick
	m.Seated++
}

// observeOccupancy updates the peak co-occupancy from the current grid.
// The entrance is excluded: every passenger starts there.
func (m *Metrics) observeOccupancy(g *Grid) {
	for _, row := range g.cells {
		for _, c := range row {
			if c.Kind == CellEntrance {
				continue
			}
			if n := len(c.passengers); n > m.PeakOccupancy {
				m.PeakOccupancy = n
				m.PeakCell = SeatLabel(c.X, c.Y)
			}
		}
	}
}

// MeanEmbarkTick returns the average tick at which passengers embarked,
// or 0 when nobody has.
func (m *Metrics) MeanEmbarkTick() float64 {
	if len(m.EmbarkTick) == 0 {
		return 0
	}
	var sum int64
	for _, t := range m.EmbarkTick {
		sum += t
	}
	return float64(sum) / float64(len(m.EmbarkTick))
}

// LastEmbarked returns the labels of the passengers that embarked on the
// latest tick, sorted.
func (m *Metrics) LastEmbarked() []string {
	var last int64
	for _, t := range m.EmbarkTick {
		if t > last {
			last = t
		}
	}
	var labels []string
	for label, t := range m.EmbarkTick {
		if t == last {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Print writes the aggregated metrics at the end of a run.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Iterations           : %d\n", m.Iterations)
	fmt.Fprintf(w, "Seated Passengers    : %d / %d\n", m.Seated, m.Passengers)
	fmt.Fprintf(w, "Total Moves          : %d\n", m.Moves)
	if m.Seated > 0 {
		fmt.Fprintf(w, "Mean Embark Tick     : %.2f\n", m.MeanEmbarkTick())
	}
	if m.LuggageTicks > 0 {
		fmt.Fprintf(w, "Luggage Loading Ticks: %d\n", m.LuggageTicks)
	}
	if m.PeakOccupancy > 0 {
		fmt.Fprintf(w, "Peak Cell Occupancy  : %d (at %s)\n", m.PeakOccupancy, m.PeakCell)
	}
}
