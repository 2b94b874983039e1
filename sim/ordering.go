package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// Layout describes the cabin shape an ordering policy works against.
type Layout struct {
	Width  int
	Height int // entrance row included
}

// OrderingPolicy permutes the passenger list before a run starts.
// Implementations return a new slice containing every input passenger exactly
// once and MUST NOT modify the passengers or the input slice.
type OrderingPolicy interface {
	Order(passengers []*Passenger, layout Layout) []*Passenger
}

// FrontToBackOrdering boards ascending by assigned seat row.
// Ties keep their previous relative order.
type FrontToBackOrdering struct{}

func (FrontToBackOrdering) Order(passengers []*Passenger, _ Layout) []*Passenger {
	out := clonePassengers(passengers)
	sort.SliceStable(out, func(i, j int) bool {
		return seatRow(out[i].assignedSeat) < seatRow(out[j].assignedSeat)
	})
	return out
}

// BackToFrontOrdering boards descending by assigned seat row.
// Ties keep their previous relative order.
type BackToFrontOrdering struct{}

func (BackToFrontOrdering) Order(passengers []*Passenger, _ Layout) []*Passenger {
	out := clonePassengers(passengers)
	sort.SliceStable(out, func(i, j int) bool {
		return seatRow(out[i].assignedSeat) > seatRow(out[j].assignedSeat)
	})
	return out
}

// RandomOrdering boards in a uniform random permutation.
type RandomOrdering struct {
	rand *rand.Rand
}

// NewRandomOrdering creates a random ordering drawing from rng.
func NewRandomOrdering(rng *rand.Rand) *RandomOrdering {
	return &RandomOrdering{rand: rng}
}

func (r *RandomOrdering) Order(passengers []*Passenger, _ Layout) []*Passenger {
	out := clonePassengers(passengers)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SteffenOrdering is the modified Steffen method.
//
// Seat columns are paired from the outside in: (0, W-1), (1, W-2), ... until
// the indices cross. Within a pair, rows are walked back to front in two
// parity passes, last row, last-2, ... and then last-1, last-3, ... For each
// visited row the low-column seat is taken before the high-column seat.
// Seats nobody is assigned to are skipped. Passengers whose seat is never
// visited (reassigned outside the cabin, for example) keep their relative
// order at the end of the list.
type SteffenOrdering struct{}

func (SteffenOrdering) Order(passengers []*Passenger, layout Layout) []*Passenger {
	bySeat := make(map[string][]*Passenger, len(passengers))
	for _, p := range passengers {
		bySeat[p.assignedSeat] = append(bySeat[p.assignedSeat], p)
	}

	out := make([]*Passenger, 0, len(passengers))
	taken := make(map[*Passenger]bool, len(passengers))
	take := func(x, y int) {
		label := SeatLabel(x, y)
		queue := bySeat[label]
		if len(queue) == 0 {
			return
		}
		out = append(out, queue[0])
		taken[queue[0]] = true
		bySeat[label] = queue[1:]
	}

	lastRow := layout.Height - 1
	for lo, hi := 0, layout.Width-1; lo <= hi; lo, hi = lo+1, hi-1 {
		for _, start := range []int{lastRow, lastRow - 1} {
			for y := start; y >= 1; y -= 2 {
				take(lo, y)
				if hi != lo {
					take(hi, y)
				}
			}
		}
	}

	for _, p := range passengers {
		if !taken[p] {
			out = append(out, p)
		}
	}
	return out
}

func clonePassengers(passengers []*Passenger) []*Passenger {
	out := make([]*Passenger, len(passengers))
	copy(out, passengers)
	return out
}

// Ordering policy names accepted by NewOrderingPolicy.
const (
	OrderingBackToFront = "back-to-front"
	OrderingFrontToBack = "front-to-back"
	OrderingRandom      = "random"
	OrderingSteffen     = "steffen"
)

// ValidOrderingPolicies is the set of recognized ordering policy names.
// Shared by ScenarioBundle.Validate() and NewOrderingPolicy().
// Empty string defaults to back-to-front.
var ValidOrderingPolicies = map[string]bool{
	"":                  true,
	OrderingBackToFront: true,
	OrderingFrontToBack: true,
	OrderingRandom:      true,
	OrderingSteffen:     true,
}

// IsValidOrderingPolicy returns true if name is a recognized ordering policy.
func IsValidOrderingPolicy(name string) bool {
	return ValidOrderingPolicies[name]
}

// OrderingPolicyNames returns the non-empty policy names in a stable order.
func OrderingPolicyNames() []string {
	return []string{OrderingBackToFront, OrderingFrontToBack, OrderingRandom, OrderingSteffen}
}

// NewOrderingPolicy creates an OrderingPolicy by name. rng is only used by
// the random policy and may be nil for the others.
// Panics on unrecognized names.
func NewOrderingPolicy(name string, rng *rand.Rand) OrderingPolicy {
	if !IsValidOrderingPolicy(name) {
		panic(fmt.Sprintf("unknown ordering policy %q", name))
	}
	switch name {
	case "", OrderingBackToFront:
		return BackToFrontOrdering{}
	case OrderingFrontToBack:
		return FrontToBackOrdering{}
	case OrderingRandom:
		if rng == nil {
			panic("random ordering policy requires an RNG")
		}
		return NewRandomOrdering(rng)
	case OrderingSteffen:
		return SteffenOrdering{}
	default:
		panic(fmt.Sprintf("unhandled ordering policy %q", name))
	}
}
