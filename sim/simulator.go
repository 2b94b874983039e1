// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/boarding-sim/boarding-sim/sim/trace"
)

// Simulator drives a boarding run. It owns the Grid and advances it one tick
// per Tick call; pacing between ticks belongs to the caller.
//
// Thread-safety: NOT thread-safe. Tick, Pause, Resume and subscriber
// callbacks all run on the caller's goroutine.
type Simulator struct {
	grid *Grid
	rng  *PartitionedRNG

	iterations int64
	paused     bool
	allSeated  bool // monotonic

	subscribers []subscriber
	nextSubID   int
	notifying   int // notification depth, Tick must not run while > 0

	metrics *Metrics
	trace   *trace.SimulationTrace
}

type subscriber struct {
	id int
	fn func()
}

// NewSimulator builds the grid, draws luggage times when enabled, and applies
// the configured ordering policy.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		grid:    g,
		rng:     NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		metrics: NewMetrics(len(g.passengers)),
	}
	if cfg.TraceLevel == trace.TraceLevelMoves {
		s.trace = trace.NewSimulationTrace(trace.TraceConfig{
			Level:    cfg.TraceLevel,
			Ordering: cfg.Ordering,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Seed:     cfg.Seed,
		})
	}

	if cfg.Luggage.Enabled {
		rng := s.rng.ForSubsystem(SubsystemLuggage)
		span := cfg.Luggage.MaxTicks - cfg.Luggage.MinTicks + 1
		for _, p := range g.passengers {
			p.SetLuggage(cfg.Luggage.MinTicks + rng.Intn(span))
		}
	}

	s.ApplyOrdering(NewOrderingPolicy(cfg.Ordering, s.rng.ForSubsystem(SubsystemOrdering)))

	logrus.Debugf("boarding simulator ready: %dx%d cabin, %d passengers, ordering=%q, luggage=%v",
		cfg.Width, cfg.Height, len(g.passengers), cfg.Ordering, cfg.Luggage.Enabled)
	return s, nil
}

// NewSimulatorForGrid wraps an existing grid, for callers that build or
// populate the cabin themselves. No ordering policy is applied.
func NewSimulatorForGrid(g *Grid, seed int64) *Simulator {
	return &Simulator{
		grid:    g,
		rng:     NewPartitionedRNG(NewSimulationKey(seed)),
		metrics: NewMetrics(len(g.passengers)),
	}
}

// Grid returns the simulated grid.
func (s *Simulator) Grid() *Grid { return s.grid }

// Iterations returns the number of non-paused ticks elapsed.
func (s *Simulator) Iterations() int64 { return s.iterations }

// Paused reports whether Tick is currently a no-op.
func (s *Simulator) Paused() bool { return s.paused }

// AllSeated reports whether every passenger has reached its seat. Once true
// it stays true.
func (s *Simulator) AllSeated() bool { return s.allSeated }

// Metrics returns the live run metrics.
func (s *Simulator) Metrics() *Metrics { return s.metrics }

// Trace returns the movement trace, or nil when tracing is disabled.
func (s *Simulator) Trace() *trace.SimulationTrace { return s.trace }

// RNG returns the run's partitioned RNG.
func (s *Simulator) RNG() *PartitionedRNG { return s.rng }

// ApplyOrdering reorders the passenger list. It is meant to be called before
// the first tick; applying it mid-run is allowed but logged.
func (s *Simulator) ApplyOrdering(policy OrderingPolicy) {
	if s.iterations > 0 {
		logrus.Warnf("ordering policy %T applied after %d ticks", policy, s.iterations)
	}
	s.grid.setOrder(policy.Order(s.grid.Passengers(), s.grid.Layout()))
}

// Tick lets every passenger take one turn in list order, then updates the
// seated flag and notifies subscribers. It is a no-op while paused.
//
// An unreachable seat aborts the tick: the error is returned, iterations is
// left unchanged and subscribers are not notified.
func (s *Simulator) Tick() error {
	if s.notifying > 0 {
		panic("sim: Tick called from a subscriber callback")
	}
	if s.paused {
		return nil
	}

	tick := s.iterations + 1
	tracing := s.trace.Enabled()
	var rec trace.TickRecord
	moved := 0

	for _, p := range s.grid.passengers {
		from := p.Cell()
		wasEmbarked := p.embarked
		turn, err := p.TakeTurn()
		if err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
		switch turn {
		case TurnMoved:
			moved++
			s.metrics.Moves++
			if tracing {
				to := p.Cell()
				rec.Moves = append(rec.Moves, trace.MoveRecord{
					Passenger: p.label,
					FromX:     from.X,
					FromY:     from.Y,
					ToX:       to.X,
					ToY:       to.Y,
				})
			}
		case TurnLoading:
			s.metrics.LuggageTicks++
			if tracing {
				rec.Loading = append(rec.Loading, p.label)
			}
		}
		if !wasEmbarked && p.embarked {
			s.metrics.recordEmbark(p.label, tick)
			if tracing {
				s.trace.RecordEmbark(trace.EmbarkRecord{Passenger: p.label, Seat: p.assignedSeat, Tick: tick})
			}
		}
	}

	s.iterations = tick
	s.metrics.Iterations = tick
	s.metrics.observeOccupancy(s.grid)
	if !s.allSeated && s.grid.AllSeated() {
		s.allSeated = true
		logrus.Infof("all %d passengers seated after %d ticks", len(s.grid.passengers), tick)
	}
	if tracing {
		rec.Tick = tick
		rec.Seated = s.metrics.Seated
		s.trace.RecordTick(rec)
	}
	logrus.Debugf("tick %d: %d moved, %d/%d seated", tick, moved, s.metrics.Seated, len(s.grid.passengers))

	s.notify()
	return nil
}

// Run ticks until every passenger is seated, the simulator is paused, or
// maxTicks ticks have elapsed in total (maxTicks <= 0 means no limit). It
// does no pacing. Returns the iteration count.
func (s *Simulator) Run(maxTicks int64) (int64, error) {
	for !s.allSeated && !s.paused {
		if maxTicks > 0 && s.iterations >= maxTicks {
			logrus.Warnf("stopping after %d ticks with %d/%d passengers seated",
				s.iterations, s.metrics.Seated, len(s.grid.passengers))
			break
		}
		if err := s.Tick(); err != nil {
			return s.iterations, err
		}
	}
	return s.iterations, nil
}

// Pause makes subsequent Tick calls no-ops. Subscribers are notified when the
// state changes.
func (s *Simulator) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	logrus.Debugf("paused at tick %d", s.iterations)
	s.notify()
}

// Resume re-enables Tick. Subscribers are notified when the state changes.
func (s *Simulator) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	logrus.Debugf("resumed at tick %d", s.iterations)
	s.notify()
}

// Subscribe registers fn to be called synchronously after every tick, pause
// and resume. fn must not call Tick. The returned function unsubscribes.
func (s *Simulator) Subscribe(fn func()) (unsubscribe func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Simulator) notify() {
	s.notifying++
	defer func() { s.notifying-- }()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn()
	}
}

// Snapshot copies the current state for rendering.
func (s *Simulator) Snapshot() Snapshot {
	snap := s.grid.Snapshot()
	snap.Iterations = s.iterations
	snap.Paused = s.paused
	snap.AllSeated = s.allSeated
	return snap
}
