package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/boarding-sim/boarding-sim/sim"
)

// compareCmd runs every ordering policy on the same cabin and seed
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all ordering policies on the same cabin",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, limit, err := resolveConfig(cmd.Flags().Changed, configPath)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}
		results, err := compareOrderings(cfg, limit)
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}
		printComparison(cmd.OutOrStdout(), results)
	},
}

// comparisonResult summarizes one policy's run.
type comparisonResult struct {
	Ordering       string
	Iterations     int64
	AllSeated      bool
	MeanEmbarkTick float64
	Moves          int
	PeakOccupancy  int
}

// compareOrderings runs cfg once per ordering policy.
func compareOrderings(cfg sim.SimConfig, limit int64) ([]comparisonResult, error) {
	names := sim.OrderingPolicyNames()
	results := make([]comparisonResult, 0, len(names))
	for _, name := range names {
		run := cfg
		run.Ordering = name
		s, err := sim.NewSimulator(run)
		if err != nil {
			return nil, fmt.Errorf("ordering %s: %w", name, err)
		}
		n, err := s.Run(limit)
		if err != nil {
			return nil, fmt.Errorf("ordering %s: %w", name, err)
		}
		m := s.Metrics()
		results = append(results, comparisonResult{
			Ordering:       name,
			Iterations:     n,
			AllSeated:      s.AllSeated(),
			MeanEmbarkTick: m.MeanEmbarkTick(),
			Moves:          m.Moves,
			PeakOccupancy:  m.PeakOccupancy,
		})
		logrus.Debugf("ordering %s: %d ticks", name, n)
	}
	return results, nil
}

func printComparison(w io.Writer, results []comparisonResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDERING\tTICKS\tSEATED\tMEAN EMBARK\tMOVES\tPEAK CELL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%.2f\t%d\t%d\n",
			r.Ordering, r.Iterations, r.AllSeated, r.MeanEmbarkTick, r.Moves, r.PeakOccupancy)
	}
	_ = tw.Flush()
}
