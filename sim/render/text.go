// Package render turns simulation snapshots into display formats.
package render

import (
	"fmt"
	"strings"

	"github.com/boarding-sim/boarding-sim/sim"
)

// AlleyMarker is shown for an empty alley or entrance cell.
const AlleyMarker = "A"

// Text renders a snapshot as one line per row with cells joined by a single
// space. An occupied cell shows its first occupant's label; an empty seat its
// seat label; an empty alley or entrance AlleyMarker; an empty void cell its
// coordinates.
func Text(snap sim.Snapshot) string {
	lines := make([]string, len(snap.Cells))
	for y, row := range snap.Cells {
		tokens := make([]string, len(row))
		for x, c := range row {
			tokens[x] = cellText(c)
		}
		lines[y] = strings.Join(tokens, " ")
	}
	return strings.Join(lines, "\n")
}

func cellText(c sim.CellView) string {
	if len(c.Occupants) > 0 {
		return c.Occupants[0]
	}
	switch c.Kind {
	case sim.CellSeat:
		return c.Seat
	case sim.CellAlley, sim.CellEntrance:
		return AlleyMarker
	default:
		return sim.SeatLabel(c.X, c.Y)
	}
}

// Status renders a one-line progress summary.
func Status(snap sim.Snapshot) string {
	inSeats, total := 0, 0
	for _, row := range snap.Cells {
		for _, c := range row {
			total += len(c.Occupants)
			if c.Kind == sim.CellSeat {
				inSeats += len(c.Occupants)
			}
		}
	}
	line := fmt.Sprintf("tick %d | in seats %d/%d", snap.Iterations, inSeats, total)
	if snap.Paused {
		line += " | paused"
	}
	if snap.AllSeated {
		line += " | all seated"
	}
	return line
}
