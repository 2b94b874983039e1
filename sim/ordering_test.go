package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatsOf(ps []*Passenger) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.AssignedSeat()
	}
	return out
}

// assertPermutation checks that got holds exactly the passengers of want.
func assertPermutation(t *testing.T, want, got []*Passenger) {
	t.Helper()
	require.Len(t, got, len(want))
	seen := make(map[*Passenger]int, len(got))
	for _, p := range got {
		seen[p]++
	}
	for _, p := range want {
		if seen[p] != 1 {
			t.Errorf("passenger %s appears %d times, want 1", p.Label(), seen[p])
		}
	}
}

func TestOrderingPolicies_ArePermutations(t *testing.T) {
	for _, dims := range [][2]int{{1, 2}, {2, 2}, {7, 15}, {8, 5}, {9, 3}, {4, 7}} {
		g, err := NewGrid(dims[0], dims[1])
		require.NoError(t, err)
		for _, name := range OrderingPolicyNames() {
			policy := NewOrderingPolicy(name, rand.New(rand.NewSource(1)))
			got := policy.Order(g.Passengers(), g.Layout())
			assertPermutation(t, g.Passengers(), got)
		}
	}
}

func TestOrderingPolicies_DoNotMutateInput(t *testing.T) {
	g, err := NewGrid(7, 4)
	require.NoError(t, err)
	before := g.Passengers()
	input := g.Passengers()

	for _, name := range OrderingPolicyNames() {
		NewOrderingPolicy(name, rand.New(rand.NewSource(1))).Order(input, g.Layout())
	}
	assert.Equal(t, before, input)
	for _, p := range input {
		assert.Same(t, g.Entrance(), p.Cell())
	}
}

func TestFrontToBackOrdering(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	got := seatsOf(FrontToBackOrdering{}.Order(g.Passengers(), g.Layout()))
	assert.Equal(t, []string{"0,1", "2,1", "0,2", "2,2", "0,3", "2,3"}, got)
}

func TestBackToFrontOrdering(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	got := seatsOf(BackToFrontOrdering{}.Order(g.Passengers(), g.Layout()))
	assert.Equal(t, []string{"0,3", "2,3", "0,2", "2,2", "0,1", "2,1"}, got)
}

func TestRandomOrdering_DeterministicPerSeed(t *testing.T) {
	g, err := NewGrid(7, 6)
	require.NoError(t, err)

	a := NewRandomOrdering(rand.New(rand.NewSource(99))).Order(g.Passengers(), g.Layout())
	b := NewRandomOrdering(rand.New(rand.NewSource(99))).Order(g.Passengers(), g.Layout())
	c := NewRandomOrdering(rand.New(rand.NewSource(100))).Order(g.Passengers(), g.Layout())

	assert.Equal(t, seatsOf(a), seatsOf(b))
	assert.NotEqual(t, seatsOf(a), seatsOf(c))
}

func TestSteffenOrdering_EightSeatColumnsTwoRows(t *testing.T) {
	// GIVEN 4 seat columns on each side of the alley and 2 seat rows
	g, err := NewGrid(9, 3)
	require.NoError(t, err)

	// WHEN the Steffen ordering is applied
	got := seatsOf(SteffenOrdering{}.Order(g.Passengers(), g.Layout()))

	// THEN window seats board first, back row before front row, alternating
	// sides, one column pair inward at a time
	want := []string{
		"0,2", "8,2", "0,1", "8,1",
		"1,2", "7,2", "1,1", "7,1",
		"2,2", "6,2", "2,1", "6,1",
		"3,2", "5,2", "3,1", "5,1",
	}
	assert.Equal(t, want, got)
}

func TestSteffenOrdering_AlternatingRowParity(t *testing.T) {
	// GIVEN a narrow cabin with five seat rows
	g, err := NewGrid(3, 6)
	require.NoError(t, err)

	got := seatsOf(SteffenOrdering{}.Order(g.Passengers(), g.Layout()))

	// THEN rows 5, 3, 1 come before rows 4, 2
	want := []string{
		"0,5", "2,5", "0,3", "2,3", "0,1", "2,1",
		"0,4", "2,4", "0,2", "2,2",
	}
	assert.Equal(t, want, got)
}

func TestSteffenOrdering_EvenWidthSkipsAlleyColumn(t *testing.T) {
	// GIVEN width 4: seats in columns 0, 1, 3 and the alley in column 2
	g, err := NewGrid(4, 2)
	require.NoError(t, err)

	got := seatsOf(SteffenOrdering{}.Order(g.Passengers(), g.Layout()))

	// pairs (0,3) then (1,2); the alley has nobody assigned
	assert.Equal(t, []string{"0,1", "3,1", "1,1"}, got)
}

func TestSteffenOrdering_UnvisitedSeatsKeptAtEnd(t *testing.T) {
	// GIVEN two passengers, one assigned outside the cabin
	g := newEmptyGrid(t, 3, 2)
	stray := g.PlacePassenger("s", g.Entrance())
	stray.AssignSeat("5,5")
	p := g.PlacePassenger("p", g.Entrance())
	p.AssignSeat("2,1")
	dup := g.PlacePassenger("d", g.Entrance())
	dup.AssignSeat("2,1")

	got := SteffenOrdering{}.Order(g.Passengers(), g.Layout())

	assert.Equal(t, []*Passenger{p, stray, dup}, got)
}

func TestNewOrderingPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.IsType(t, BackToFrontOrdering{}, NewOrderingPolicy("", nil))
	assert.IsType(t, BackToFrontOrdering{}, NewOrderingPolicy(OrderingBackToFront, nil))
	assert.IsType(t, FrontToBackOrdering{}, NewOrderingPolicy(OrderingFrontToBack, nil))
	assert.IsType(t, SteffenOrdering{}, NewOrderingPolicy(OrderingSteffen, nil))
	assert.IsType(t, &RandomOrdering{}, NewOrderingPolicy(OrderingRandom, rng))

	assert.Panics(t, func() { NewOrderingPolicy("window-middle-aisle", rng) })
	assert.Panics(t, func() { NewOrderingPolicy(OrderingRandom, nil) })
}
