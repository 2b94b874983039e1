package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmptyGrid returns a cabin with no passengers.
func newEmptyGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, WithEmptyCabin())
	require.NoError(t, err)
	return g
}

// coords renders a path as "x,y x,y ...".
func coords(path []*Cell) []string {
	out := make([]string, len(path))
	for i, c := range path {
		out[i] = SeatLabel(c.X, c.Y)
	}
	return out
}

func TestPassenger_TakeTurn_DownThenSideways(t *testing.T) {
	// GIVEN a passenger at the entrance assigned to seat 6,2
	g := newEmptyGrid(t, 7, 3)
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("6,2")

	// WHEN it takes turns until embarked
	var visited []string
	for i := 0; i < 10 && !p.Embarked(); i++ {
		turn, err := p.TakeTurn()
		require.NoError(t, err)
		require.Equal(t, TurnMoved, turn)
		visited = append(visited, SeatLabel(p.Cell().X, p.Cell().Y))
	}

	// THEN it went down the alley first, then right into the seat row
	assert.Equal(t, []string{"3,1", "3,2", "4,2", "5,2", "6,2"}, visited)
	assert.True(t, p.Embarked())
	assert.Equal(t, StateEmbarked, p.State())
	assert.True(t, p.InAssignedSeat())
}

func TestPassenger_TakeTurn_MovesLeft(t *testing.T) {
	g := newEmptyGrid(t, 7, 2)
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("1,1")

	for i := 0; i < 3; i++ {
		_, err := p.TakeTurn()
		require.NoError(t, err)
	}
	assert.Same(t, g.Get(1, 1), p.Cell())
	assert.True(t, p.Embarked())
}

func TestPassenger_TakeTurn_EmbarkedIsInert(t *testing.T) {
	g := newEmptyGrid(t, 3, 2)
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("0,1")
	for !p.Embarked() {
		_, err := p.TakeTurn()
		require.NoError(t, err)
	}
	seat := p.Cell()

	for i := 0; i < 5; i++ {
		turn, err := p.TakeTurn()
		require.NoError(t, err)
		assert.Equal(t, TurnIdle, turn)
		assert.Same(t, seat, p.Cell())
	}
}

func TestPassenger_TakeTurn_UnassignedIsInert(t *testing.T) {
	g := newEmptyGrid(t, 3, 2)
	p := g.PlacePassenger("p", g.Entrance())

	turn, err := p.TakeTurn()
	require.NoError(t, err)
	assert.Equal(t, TurnIdle, turn)
	assert.Same(t, g.Entrance(), p.Cell())
	assert.Equal(t, StateUnassigned, p.State())
}

func TestPassenger_TakeTurn_PassesThroughOccupiedCells(t *testing.T) {
	// GIVEN a seated passenger in 4,1 and another heading for 6,1
	g := newEmptyGrid(t, 7, 2)
	blocker := g.PlacePassenger("b", g.Get(4, 1))
	blocker.AssignSeat("4,1")
	p := g.PlacePassenger("p", g.Get(3, 1))
	p.AssignSeat("6,1")

	// WHEN p moves right
	_, err := p.TakeTurn()
	require.NoError(t, err)

	// THEN it shares the occupied seat cell
	assert.Same(t, g.Get(4, 1), p.Cell())
	assert.Len(t, g.Get(4, 1).Passengers(), 2)
	assert.False(t, p.Embarked())

	// AND continues on the next turn
	_, err = p.TakeTurn()
	require.NoError(t, err)
	assert.Same(t, g.Get(5, 1), p.Cell())
	assert.Equal(t, []*Passenger{blocker}, g.Get(4, 1).Passengers())
}

func TestPassenger_TakeTurn_PlacedInOwnSeatEmbarks(t *testing.T) {
	g := newEmptyGrid(t, 3, 2)
	p := g.PlacePassenger("p", g.Get(2, 1))
	p.AssignSeat("2,1")

	turn, err := p.TakeTurn()
	require.NoError(t, err)
	assert.Equal(t, TurnIdle, turn)
	assert.True(t, p.Embarked())
}

func TestPassenger_TakeTurn_LuggageDelay(t *testing.T) {
	// GIVEN a passenger for seat 4,1 with two ticks of luggage
	g := newEmptyGrid(t, 7, 2)
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("4,1")
	p.SetLuggage(2)

	// WHEN turns are taken
	turns := make([]Turn, 0, 4)
	states := make([]PassengerState, 0, 4)
	for i := 0; i < 4; i++ {
		turn, err := p.TakeTurn()
		require.NoError(t, err)
		turns = append(turns, turn)
		states = append(states, p.State())
	}

	// THEN it moves down, loads twice in the alley, then turns into its seat
	assert.Equal(t, []Turn{TurnMoved, TurnLoading, TurnLoading, TurnMoved}, turns)
	assert.Equal(t, []PassengerState{StateEnRoute, StateLoadingLuggage, StateLoadingLuggage, StateEmbarked}, states)
	assert.Equal(t, 0, p.LuggageLoadingTime())
	assert.False(t, p.IsLoadingLuggage())
	assert.True(t, p.Embarked())
}

func TestPassenger_TakeTurn_UnreachableSeat(t *testing.T) {
	tests := []struct {
		name  string
		seat  string
		turns int // turns that succeed before the error
	}{
		{"column past the cabin edge", "9,1", 4},
		{"row past the back", "0,5", 2},
		{"alley as target", "3,1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newEmptyGrid(t, 7, 3)
			p := g.PlacePassenger("p", g.Entrance())
			p.AssignSeat(tt.seat)

			for i := 0; i < tt.turns; i++ {
				_, err := p.TakeTurn()
				require.NoError(t, err, "turn %d", i+1)
			}
			_, err := p.TakeTurn()
			assert.ErrorIs(t, err, ErrUnreachableSeat)
		})
	}
}

func TestPassenger_TakeTurn_InvalidSeatLabel(t *testing.T) {
	g := newEmptyGrid(t, 3, 2)
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("window")

	_, err := p.TakeTurn()
	assert.ErrorIs(t, err, ErrInvalidSeatLabel)
}

func TestPassenger_PathToSeat(t *testing.T) {
	g := newEmptyGrid(t, 7, 2)
	p := g.PlacePassenger("p", g.Get(4, 0))
	p.AssignSeat("6,1")

	path, err := p.PathToSeat()
	require.NoError(t, err)
	assert.Equal(t, []string{"3,0", "3,1", "4,1", "5,1", "6,1"}, coords(path))

	// path computation does not move the passenger
	assert.Same(t, g.Get(4, 0), p.Cell())
}

func TestPassenger_PathToSeat_Unreachable(t *testing.T) {
	g := newEmptyGrid(t, 7, 3)
	for _, seat := range []string{"3,2", "7,1", "0,3", "0,0"} {
		p := g.PlacePassenger("p", g.Entrance())
		p.AssignSeat(seat)
		_, err := p.PathToSeat()
		assert.ErrorIs(t, err, ErrUnreachableSeat, "seat %s", seat)
	}
}

func TestPassenger_ManualMoves(t *testing.T) {
	g := newEmptyGrid(t, 3, 2)
	p := g.PlacePassenger("p", g.Get(0, 0))

	p.MoveLeft() // edge: no-op
	p.MoveUp()   // edge: no-op
	assert.Same(t, g.Get(0, 0), p.Cell())

	p.MoveRight()
	assert.Same(t, g.Get(1, 0), p.Cell())
	assert.True(t, g.Get(0, 0).IsEmpty())

	p.MoveDown()
	assert.Same(t, g.Get(1, 1), p.Cell())

	p.MoveAt(g.Get(2, 0))
	assert.Same(t, g.Get(2, 0), p.Cell())
	assert.Equal(t, []*Passenger{p}, g.Get(2, 0).Passengers())
	assert.True(t, g.Get(1, 1).IsEmpty())
}

func TestPassenger_MoveWithoutCellPanics(t *testing.T) {
	var p Passenger
	assert.Panics(t, func() { p.MoveDown() })
}
