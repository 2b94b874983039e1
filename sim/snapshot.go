package sim

// CellView is a read-only copy of one cell.
type CellView struct {
	X, Y      int
	Kind      CellKind
	Seat      string
	Occupants []string // passenger labels in arrival order
}

// Snapshot is a read-only copy of the simulation state, suitable for
// rendering without holding references into the live grid.
type Snapshot struct {
	Width      int
	Height     int
	Iterations int64
	Paused     bool
	AllSeated  bool
	Cells      [][]CellView // [y][x]
}

// Snapshot copies the grid's cells and occupants.
func (g *Grid) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  g.width,
		Height: g.height,
		Cells:  make([][]CellView, g.height),
	}
	for y, row := range g.cells {
		views := make([]CellView, len(row))
		for x, c := range row {
			v := CellView{X: c.X, Y: c.Y, Kind: c.Kind, Seat: c.Seat}
			if len(c.passengers) > 0 {
				v.Occupants = make([]string, len(c.passengers))
				for i, p := range c.passengers {
					v.Occupants[i] = p.label
				}
			}
			views[x] = v
		}
		snap.Cells[y] = views
	}
	snap.AllSeated = g.AllSeated()
	return snap
}
