package sim

import (
	"errors"
	"fmt"
)

// ErrUnreachableSeat is returned when a passenger's assigned seat does not
// resolve to a seat cell reachable by the down-then-sideways route.
var ErrUnreachableSeat = errors.New("unreachable seat")

// PassengerState is the movement state of a passenger.
type PassengerState string

const (
	StateUnassigned     PassengerState = "unassigned"
	StateEnRoute        PassengerState = "en-route"
	StateLoadingLuggage PassengerState = "loading-luggage"
	StateEmbarked       PassengerState = "embarked"
)

// Turn describes what a passenger did during one TakeTurn call.
type Turn string

const (
	TurnIdle    Turn = "idle"
	TurnMoved   Turn = "moved"
	TurnLoading Turn = "loading"
)

// Passenger is a boarding agent. It refers back to its cell by grid
// coordinates; the grid owns the cell and the passenger list.
type Passenger struct {
	label        string
	assignedSeat string // "x,y"; empty means unassigned

	grid   *Grid
	x, y   int
	placed bool

	embarked bool // terminal, never reset

	loadsLuggage       bool
	luggageLoadingTime int
	isLoadingLuggage   bool
}

// Label returns the passenger's display label.
func (p *Passenger) Label() string { return p.label }

// AssignedSeat returns the target seat label, or "" when unassigned.
func (p *Passenger) AssignedSeat() string { return p.assignedSeat }

// Embarked reports whether the passenger has reached its seat.
func (p *Passenger) Embarked() bool { return p.embarked }

// IsLoadingLuggage reports whether the passenger spent its last turn loading.
func (p *Passenger) IsLoadingLuggage() bool { return p.isLoadingLuggage }

// LuggageLoadingTime returns the remaining loading ticks.
func (p *Passenger) LuggageLoadingTime() int { return p.luggageLoadingTime }

// Cell returns the cell the passenger currently occupies.
func (p *Passenger) Cell() *Cell {
	if !p.placed {
		return nil
	}
	return p.grid.Get(p.x, p.y)
}

// State derives the passenger's movement state.
func (p *Passenger) State() PassengerState {
	switch {
	case p.embarked:
		return StateEmbarked
	case p.assignedSeat == "":
		return StateUnassigned
	case p.isLoadingLuggage:
		return StateLoadingLuggage
	default:
		return StateEnRoute
	}
}

// AssignSeat sets or overwrites the target seat. The label is validated
// lazily, on the first turn or path computation that needs it.
func (p *Passenger) AssignSeat(seat string) {
	p.assignedSeat = seat
}

// SetLuggage enables the luggage-loading delay: on reaching its row the
// passenger waits ticks turns before turning into the seat row.
func (p *Passenger) SetLuggage(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	p.loadsLuggage = true
	p.luggageLoadingTime = ticks
}

// InAssignedSeat reports whether the passenger's current cell is the seat it
// is assigned to.
func (p *Passenger) InAssignedSeat() bool {
	c := p.Cell()
	return c != nil && p.assignedSeat != "" && c.IsSeat() && c.Seat == p.assignedSeat
}

// TakeTurn advances the passenger by at most one cell: down the alley to the
// target row first, then sideways into the seat row. Occupied cells never
// block the move.
func (p *Passenger) TakeTurn() (Turn, error) {
	if p.assignedSeat == "" || p.embarked {
		return TurnIdle, nil
	}
	if p.InAssignedSeat() {
		p.embarked = true
		p.isLoadingLuggage = false
		return TurnIdle, nil
	}
	_, ty, err := ParseSeat(p.assignedSeat)
	if err != nil {
		return TurnIdle, fmt.Errorf("passenger %s: %w", p.label, err)
	}
	if p.y == ty && p.loadsLuggage && p.luggageLoadingTime > 0 {
		p.isLoadingLuggage = true
		p.luggageLoadingTime--
		return TurnLoading, nil
	}

	next, err := p.NextCell()
	if err != nil {
		return TurnIdle, err
	}
	p.isLoadingLuggage = false
	p.move(next)
	if next.IsSeat() && next.Seat == p.assignedSeat {
		p.embarked = true
	}
	return TurnMoved, nil
}

// NextCell returns the cell the passenger would step into on its next move,
// ignoring any luggage delay. It returns nil without error when the passenger
// is unassigned or already seated.
func (p *Passenger) NextCell() (*Cell, error) {
	if p.assignedSeat == "" || p.InAssignedSeat() {
		return nil, nil
	}
	cur := p.Cell()
	if cur == nil {
		panic(fmt.Sprintf("passenger %s has no cell", p.label))
	}
	tx, ty, err := ParseSeat(p.assignedSeat)
	if err != nil {
		return nil, fmt.Errorf("passenger %s: %w", p.label, err)
	}
	next := step(cur, tx, ty)
	if next == nil {
		return nil, fmt.Errorf("%w: passenger %s at %s cannot reach seat %s",
			ErrUnreachableSeat, p.label, SeatLabel(cur.X, cur.Y), p.assignedSeat)
	}
	return next, nil
}

// PathToSeat returns the route from the entrance to the assigned seat, both
// ends included.
func (p *Passenger) PathToSeat() ([]*Cell, error) {
	if p.assignedSeat == "" {
		return nil, nil
	}
	tx, ty, err := ParseSeat(p.assignedSeat)
	if err != nil {
		return nil, fmt.Errorf("passenger %s: %w", p.label, err)
	}
	cur := p.grid.Entrance()
	path := []*Cell{cur}
	for !(cur.X == tx && cur.Y == ty) {
		cur = step(cur, tx, ty)
		if cur == nil {
			break
		}
		path = append(path, cur)
	}
	if cur == nil || !cur.IsSeat() || cur.Seat != p.assignedSeat {
		return nil, fmt.Errorf("%w: passenger %s: no seat at %s", ErrUnreachableSeat, p.label, p.assignedSeat)
	}
	return path, nil
}

// step returns the neighbour of cur one move closer to (tx, ty): rows first,
// then columns. It returns nil when cur is already at (tx, ty) or when the
// move would leave the grid.
func step(cur *Cell, tx, ty int) *Cell {
	switch {
	case cur.Y < ty:
		return cur.Down()
	case cur.Y > ty:
		return cur.Up()
	case cur.X < tx:
		return cur.Right()
	case cur.X > tx:
		return cur.Left()
	default:
		return nil
	}
}

// MoveAt relocates the passenger to cell regardless of adjacency.
func (p *Passenger) MoveAt(cell *Cell) {
	if cell == nil {
		return
	}
	if cell.grid != p.grid {
		panic(fmt.Sprintf("passenger %s: cell %s belongs to another grid", p.label, SeatLabel(cell.X, cell.Y)))
	}
	p.move(cell)
}

// MoveUp relocates the passenger one row towards the entrance; no-op at the edge.
func (p *Passenger) MoveUp() { p.MoveAt(p.mustCell().Up()) }

// MoveDown relocates the passenger one row towards the back; no-op at the edge.
func (p *Passenger) MoveDown() { p.MoveAt(p.mustCell().Down()) }

// MoveLeft relocates the passenger one column left; no-op at the edge.
func (p *Passenger) MoveLeft() { p.MoveAt(p.mustCell().Left()) }

// MoveRight relocates the passenger one column right; no-op at the edge.
func (p *Passenger) MoveRight() { p.MoveAt(p.mustCell().Right()) }

func (p *Passenger) mustCell() *Cell {
	c := p.Cell()
	if c == nil {
		panic(fmt.Sprintf("passenger %s has no cell", p.label))
	}
	return c
}

// move detaches the passenger from its current cell and appends it to dst.
func (p *Passenger) move(dst *Cell) {
	src := p.mustCell()
	src.remove(p)
	p.x, p.y = dst.X, dst.Y
	dst.add(p)
}
