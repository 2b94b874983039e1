package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks        int
	TotalMoves        int
	TotalLoadingTicks int
	Embarked          int
	LastEmbarkTick    int64
	MovesPerPassenger map[string]int // passenger label → number of moves
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		MovesPerPassenger: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	for _, t := range st.Ticks {
		summary.TotalMoves += len(t.Moves)
		summary.TotalLoadingTicks += len(t.Loading)
		for _, m := range t.Moves {
			summary.MovesPerPassenger[m.Passenger]++
		}
	}

	summary.Embarked = len(st.Embarks)
	for _, e := range st.Embarks {
		if e.Tick > summary.LastEmbarkTick {
			summary.LastEmbarkTick = e.Tick
		}
	}

	return summary
}
