package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/boarding-sim/boarding-sim/sim"
	"github.com/boarding-sim/boarding-sim/sim/render"
	"github.com/boarding-sim/boarding-sim/sim/trace"
)

var (
	// CLI flags for the cabin and the boarding run
	width        int           // Cabin width in cells, alley included
	height       int           // Cabin height in cells, entrance row included
	ordering     string        // Ordering policy name
	seed         int64         // Seed for the random ordering and luggage times
	maxTicks     int64         // Stop after this many ticks (0 = until seated)
	tickInterval time.Duration // Wall-clock pause between ticks
	logLevel     string        // Log verbosity level
	configPath   string        // Optional scenario YAML

	// Luggage-loading variant
	luggage    bool // Enable luggage-loading delay
	luggageMin int  // Minimum loading ticks per passenger
	luggageMax int  // Maximum loading ticks per passenger

	// Output
	renderTicks bool   // Print the cabin after every tick
	traceLevel  string // Movement trace verbosity
	traceOutput string // File to write the trace to as YAML
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boarding-sim",
	Short: "Tick-based airplane boarding simulator",
}

// runCmd executes one boarding run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a boarding simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, limit, err := resolveConfig(cmd.Flags().Changed, configPath)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}
		if traceOutput != "" && (cfg.TraceLevel == "" || cfg.TraceLevel == trace.TraceLevelNone) {
			cfg.TraceLevel = trace.TraceLevelMoves
		}
		logrus.Infof("Starting boarding run: %dx%d cabin, ordering=%q, seed=%d, luggage=%v",
			cfg.Width, cfg.Height, cfg.Ordering, cfg.Seed, cfg.Luggage.Enabled)

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}
		if renderTicks {
			out := cmd.OutOrStdout()
			s.Subscribe(func() {
				snap := s.Snapshot()
				fmt.Fprintln(out, render.Status(snap))
				fmt.Fprintln(out, render.Text(snap))
				fmt.Fprintln(out)
			})
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		startTime := time.Now()
		n, err := runBoarding(ctx, s, tickInterval, limit)
		if err != nil {
			logrus.Fatalf("boarding run failed: %v", err)
		}
		s.Metrics().Print(cmd.OutOrStdout())
		logrus.Infof("Boarding finished after %d ticks (all seated: %v) in %s", n, s.AllSeated(), time.Since(startTime))

		if traceOutput != "" {
			if err := writeTrace(s.Trace(), traceOutput); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
		}
	},
}

// setupLogging applies the --log flag to the package-level logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig builds the run configuration from flag values, overlaid by
// the scenario file when given. Flags the user set explicitly win over the
// file.
func resolveConfig(changed func(string) bool, path string) (sim.SimConfig, int64, error) {
	cfg := sim.SimConfig{
		Width:    width,
		Height:   height,
		Seed:     seed,
		Ordering: ordering,
		Luggage: sim.LuggageConfig{
			Enabled:  luggage,
			MinTicks: luggageMin,
			MaxTicks: luggageMax,
		},
		TraceLevel: trace.TraceLevel(traceLevel),
	}
	limit := maxTicks
	if path == "" {
		return cfg, limit, cfg.Validate()
	}

	bundle, err := sim.LoadScenarioBundle(path)
	if err != nil {
		return cfg, limit, err
	}
	if err := bundle.Validate(); err != nil {
		return cfg, limit, fmt.Errorf("scenario %s: %w", path, err)
	}
	bundle.ApplyTo(&cfg)
	if bundle.MaxTicks != nil && !changed("max-ticks") {
		limit = *bundle.MaxTicks
	}

	if changed("width") {
		cfg.Width = width
	}
	if changed("height") {
		cfg.Height = height
	}
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("ordering") {
		cfg.Ordering = ordering
	}
	if changed("luggage") {
		cfg.Luggage.Enabled = luggage
	}
	if changed("luggage-min") {
		cfg.Luggage.MinTicks = luggageMin
	}
	if changed("luggage-max") {
		cfg.Luggage.MaxTicks = luggageMax
	}
	if changed("trace-level") {
		cfg.TraceLevel = trace.TraceLevel(traceLevel)
	}
	return cfg, limit, cfg.Validate()
}

// writeTrace writes the run's movement trace to path as YAML.
func writeTrace(st *trace.SimulationTrace, path string) error {
	if st == nil {
		return fmt.Errorf("no trace recorded; set --trace-level=%s", trace.TraceLevelMoves)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := st.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	summary := trace.Summarize(st)
	logrus.Infof("Trace %s written to %s: %d ticks, %d moves, %d loading ticks",
		st.RunID, path, summary.TotalTicks, summary.TotalMoves, summary.TotalLoadingTicks)
	return f.Close()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerScenarioFlags adds the flags shared by run and compare.
func registerScenarioFlags(c *cobra.Command) {
	c.Flags().IntVar(&width, "width", 7, "Cabin width in cells, alley column included")
	c.Flags().IntVar(&height, "height", 15, "Cabin height in cells, entrance row included")
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for random ordering and luggage times")
	c.Flags().Int64Var(&maxTicks, "max-ticks", 10000, "Stop after this many ticks (0 = until all seated)")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&configPath, "config", "", "Scenario YAML file; explicitly set flags override it")
	c.Flags().BoolVar(&luggage, "luggage", false, "Enable the luggage-loading delay")
	c.Flags().IntVar(&luggageMin, "luggage-min", 1, "Minimum luggage loading ticks per passenger")
	c.Flags().IntVar(&luggageMax, "luggage-max", 5, "Maximum luggage loading ticks per passenger")
}

// init sets up CLI flags and subcommands
func init() {
	registerScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&ordering, "ordering", sim.OrderingBackToFront, "Ordering policy (back-to-front, front-to-back, random, steffen)")
	runCmd.Flags().DurationVar(&tickInterval, "tick-interval", 0, "Wall-clock delay between ticks (e.g. 150ms)")
	runCmd.Flags().BoolVar(&renderTicks, "render", false, "Print the cabin after every tick")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Movement trace level (none, moves)")
	runCmd.Flags().StringVar(&traceOutput, "trace-output", "", "Write the movement trace to this YAML file")

	registerScenarioFlags(compareCmd)

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
