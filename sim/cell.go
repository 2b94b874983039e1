package sim

// CellKind classifies a grid position. It is fixed at construction.
type CellKind string

const (
	CellSeat     CellKind = "seat"
	CellAlley    CellKind = "alley"
	CellEntrance CellKind = "entrance"
	CellVoid     CellKind = "void"
)

// Cell is a single grid position. Seat cells carry their seat label.
//
// Occupancy is deliberately unbounded: any number of passengers may share a
// cell at the same time (pooling at the entrance, passing through a seat row).
type Cell struct {
	X, Y int
	Kind CellKind
	Seat string // empty unless Kind == CellSeat

	grid       *Grid
	passengers []*Passenger
}

// IsSeat reports whether the cell is a seat.
func (c *Cell) IsSeat() bool { return c.Kind == CellSeat }

// IsEmpty reports whether no passenger currently occupies the cell.
func (c *Cell) IsEmpty() bool { return len(c.passengers) == 0 }

// Passengers returns the current occupants in arrival order.
// The returned slice is a copy; mutating it does not move anyone.
func (c *Cell) Passengers() []*Passenger {
	out := make([]*Passenger, len(c.passengers))
	copy(out, c.passengers)
	return out
}

// Up returns the cell one row towards the entrance, or nil at the edge.
func (c *Cell) Up() *Cell { return c.grid.Get(c.X, c.Y-1) }

// Down returns the cell one row towards the back of the cabin, or nil.
func (c *Cell) Down() *Cell { return c.grid.Get(c.X, c.Y+1) }

// Left returns the cell one column to the left, or nil.
func (c *Cell) Left() *Cell { return c.grid.Get(c.X-1, c.Y) }

// Right returns the cell one column to the right, or nil.
func (c *Cell) Right() *Cell { return c.grid.Get(c.X+1, c.Y) }

func (c *Cell) add(p *Passenger) {
	c.passengers = append(c.passengers, p)
}

func (c *Cell) remove(p *Passenger) {
	for i, q := range c.passengers {
		if q == p {
			c.passengers = append(c.passengers[:i], c.passengers[i+1:]...)
			return
		}
	}
}
