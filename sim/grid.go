package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by NewGrid when the cabin cannot hold an
// entrance row plus at least one seat row.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid owns the cabin's cell matrix and the boarding-ordered passenger list.
//
// Row 0 is the entrance row: every cell is void except the middle column,
// which is the single entrance. Rows 1..Height-1 are seat rows whose middle
// column is the alley.
type Grid struct {
	width, height int
	cells         [][]*Cell // [y][x]
	passengers    []*Passenger
}

// GridOption customizes NewGrid.
type GridOption func(*gridOptions)

type gridOptions struct {
	populate bool
}

// WithEmptyCabin builds the cells without creating any passengers.
// Callers place passengers themselves via PlacePassenger.
func WithEmptyCabin() GridOption {
	return func(o *gridOptions) { o.populate = false }
}

// NewGrid builds a width × height cabin. Unless WithEmptyCabin is given, one
// passenger per seat is created at the entrance, already assigned to that seat,
// in row-major seat order.
func NewGrid(width, height int, opts ...GridOption) (*Grid, error) {
	if width < 1 || height < 2 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (need width >= 1, height >= 2)",
			ErrInvalidDimensions, width, height)
	}
	o := gridOptions{populate: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{width: width, height: height}
	mid := g.AlleyColumn()
	g.cells = make([][]*Cell, height)
	for y := 0; y < height; y++ {
		row := make([]*Cell, width)
		for x := 0; x < width; x++ {
			c := &Cell{X: x, Y: y, grid: g}
			switch {
			case y == 0 && x == mid:
				c.Kind = CellEntrance
			case y == 0:
				c.Kind = CellVoid
			case x == mid:
				c.Kind = CellAlley
			default:
				c.Kind = CellSeat
				c.Seat = SeatLabel(x, y)
			}
			row[x] = c
		}
		g.cells[y] = row
	}

	if o.populate {
		entrance := g.Entrance()
		for y := 1; y < height; y++ {
			for x := 0; x < width; x++ {
				c := g.cells[y][x]
				if !c.IsSeat() {
					continue
				}
				p := g.PlacePassenger(fmt.Sprintf("%d%d", x, y), entrance)
				p.AssignSeat(c.Seat)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, entrance row included.
func (g *Grid) Height() int { return g.height }

// AlleyColumn returns the column index of the entrance and the alley.
func (g *Grid) AlleyColumn() int { return g.width / 2 }

// Get returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) Get(x, y int) *Cell {
	if y < 0 || y >= g.height || x < 0 || x >= g.width {
		return nil
	}
	return g.cells[y][x]
}

// Entrance returns the single entrance cell.
func (g *Grid) Entrance() *Cell {
	return g.cells[0][g.AlleyColumn()]
}

// Rows returns the cell matrix row by row. Callers must not modify it.
func (g *Grid) Rows() [][]*Cell { return g.cells }

// SeatCells returns every seat cell in row-major order.
func (g *Grid) SeatCells() []*Cell {
	var seats []*Cell
	for _, row := range g.cells {
		for _, c := range row {
			if c.IsSeat() {
				seats = append(seats, c)
			}
		}
	}
	return seats
}

// SeatCell resolves a seat label to its cell. It returns nil when the label
// does not parse or does not name a seat cell of this grid.
func (g *Grid) SeatCell(label string) *Cell {
	x, y, err := ParseSeat(label)
	if err != nil {
		return nil
	}
	c := g.Get(x, y)
	if c == nil || !c.IsSeat() {
		return nil
	}
	return c
}

// Passengers returns the passenger list in its current boarding order.
// The returned slice is a copy.
func (g *Grid) Passengers() []*Passenger {
	out := make([]*Passenger, len(g.passengers))
	copy(out, g.passengers)
	return out
}

// PlacePassenger creates an unassigned passenger at cell and appends it to
// the passenger list. cell must belong to this grid.
func (g *Grid) PlacePassenger(label string, cell *Cell) *Passenger {
	if cell == nil || cell.grid != g {
		panic(fmt.Sprintf("PlacePassenger(%q): cell does not belong to this grid", label))
	}
	p := &Passenger{label: label, grid: g, x: cell.X, y: cell.Y, placed: true}
	cell.add(p)
	g.passengers = append(g.passengers, p)
	return p
}

// setOrder replaces the boarding order. order must be a permutation of the
// current passenger list.
func (g *Grid) setOrder(order []*Passenger) {
	if len(order) != len(g.passengers) {
		panic(fmt.Sprintf("ordering returned %d passengers, want %d", len(order), len(g.passengers)))
	}
	g.passengers = order
}

// AllSeated reports whether every passenger currently occupies the seat it is
// assigned to. A grid without passengers is trivially seated.
func (g *Grid) AllSeated() bool {
	for _, p := range g.passengers {
		if !p.InAssignedSeat() {
			return false
		}
	}
	return true
}

// Layout returns the cabin shape for ordering policies.
func (g *Grid) Layout() Layout {
	return Layout{Width: g.width, Height: g.height}
}
