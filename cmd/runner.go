package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	sim "github.com/boarding-sim/boarding-sim/sim"
)

// runBoarding calls Tick until every passenger is seated, limit ticks have
// elapsed (limit <= 0 means no limit) or ctx is cancelled. With a positive
// interval, ticks are paced by a ticker; while the simulator is paused the
// ticker keeps running and the ticks are no-ops. Without an interval, a
// paused simulator ends the run.
func runBoarding(ctx context.Context, s *sim.Simulator, interval time.Duration, limit int64) (int64, error) {
	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	for !s.AllSeated() {
		if limit > 0 && s.Iterations() >= limit {
			logrus.Warnf("tick limit %d reached with %d/%d passengers seated",
				limit, s.Metrics().Seated, s.Metrics().Passengers)
			break
		}
		if ticker == nil {
			if s.Paused() {
				break
			}
			if err := ctx.Err(); err != nil {
				logrus.Infof("boarding run cancelled at tick %d", s.Iterations())
				break
			}
		} else {
			select {
			case <-ctx.Done():
				logrus.Infof("boarding run cancelled at tick %d", s.Iterations())
				return s.Iterations(), nil
			case <-ticker.C:
			}
		}
		if err := s.Tick(); err != nil {
			return s.Iterations(), err
		}
	}
	return s.Iterations(), nil
}
