package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mulbench/internal/benchmark"
	"mulbench/internal/bigint"
	"mulbench/internal/plot"
	"mulbench/internal/telemetry"
	"mulbench/internal/ui"
)

var (
	runSizes       string
	runAlgos       []string
	runWarmup      time.Duration
	runMeasure     time.Duration
	runSamples     int
	runLabel       string
	runSave        bool
	runJSON        string
	runPlot        string
	runProgress    bool
	runQuiet       bool
	runMetricsPort int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the multiplication benchmarks",
	Long: `Measures every selected algorithm across the configured operand
sizes, criterion style: warmup, then a fixed measurement budget divided
into samples, reduced to the median microseconds per multiplication.`,
	RunE: runBenchmarks,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runSizes, "sizes", "", "comma-separated limb sizes (default 1,2,4,...,max_digits)")
	runCmd.Flags().StringSliceVar(&runAlgos, "algos", nil, "algorithms to measure (naive, karatsuba, fft)")
	runCmd.Flags().DurationVar(&runWarmup, "warmup", 0, "warmup time per algorithm/size (default from config)")
	runCmd.Flags().DurationVar(&runMeasure, "measure", 0, "measurement time per algorithm/size (default from config)")
	runCmd.Flags().IntVar(&runSamples, "samples", 0, "samples per algorithm/size (default from config)")
	runCmd.Flags().StringVar(&runLabel, "label", "", "label stored with the run")
	runCmd.Flags().BoolVar(&runSave, "save", true, "save the run to history")
	runCmd.Flags().StringVar(&runJSON, "json", "", "also export the run as JSON to this path")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "also render a chart to this path (.png or .svg)")
	runCmd.Flags().BoolVar(&runProgress, "progress", false, "show a live progress bar")
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "suppress per-step progress lines")
	runCmd.Flags().IntVar(&runMetricsPort, "metrics-port", 0, "serve Prometheus metrics on this port while running")
}

// benchOptions merges config defaults with command flags.
func benchOptions() (benchmark.Options, error) {
	opts := benchmark.Options{
		Sizes:   benchmark.SizesUpTo(viper.GetInt("max_digits")),
		Warmup:  viper.GetDuration("warmup"),
		Measure: viper.GetDuration("measure"),
		Samples: viper.GetInt("samples"),
	}
	if runSizes != "" {
		sizes, err := benchmark.ParseSizes(runSizes)
		if err != nil {
			return benchmark.Options{}, err
		}
		opts.Sizes = sizes
	}
	if runWarmup > 0 {
		opts.Warmup = runWarmup
	}
	if runMeasure > 0 {
		opts.Measure = runMeasure
	}
	if runSamples > 0 {
		opts.Samples = runSamples
	}
	return opts, nil
}

// selectAlgorithms resolves the algorithm list from flags or config.
func selectAlgorithms(names []string) ([]bigint.Multiplier, error) {
	if len(names) == 0 {
		names = viper.GetStringSlice("algorithms")
	}
	algos := make([]bigint.Multiplier, 0, len(names))
	for _, name := range names {
		a, err := bigint.ByName(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts, err := benchOptions()
	if err != nil {
		return err
	}
	algos, err := selectAlgorithms(runAlgos)
	if err != nil {
		return err
	}

	var metrics *telemetry.Metrics
	var recorder benchmark.Recorder
	port := runMetricsPort
	if port == 0 {
		port = viper.GetInt("metrics_port")
	}
	if port > 0 {
		metrics = telemetry.NewMetrics()
		recorder = metrics
		go metrics.Serve(ctx, port)
	}

	var run *benchmark.Run
	if runProgress {
		run, err = runWithProgressUI(ctx, cancel, opts, algos, recorder)
	} else {
		onProgress := func(p benchmark.Progress) {
			if !runQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "  [%d/%d] %s %d digits\n", p.Step, p.Total, p.Algorithm, p.Digits)
			}
		}
		run, err = benchmark.NewRunner(opts, onProgress, recorder).Run(ctx, algos)
	}
	if err != nil {
		return err
	}
	run.Label = runLabel
	if metrics != nil {
		metrics.RunsTotal.Inc()
	}

	ui.RenderRun(cmd.OutOrStdout(), run)

	if runSave {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		id, err := s.SaveRun(run)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved run %d\n", id)
	}

	if runJSON != "" {
		if err := benchmark.SaveJSON(runJSON, run); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", runJSON)
	}

	if runPlot != "" {
		if err := plot.RenderFile(run, runPlot, chartOptions()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", runPlot)
	}

	return nil
}

// newProgressProgram is swapped out in tests.
var newProgressProgram = ui.NewProgressProgram

// runWithProgressUI drives the benchmark under a bubbletea progress
// bar. The UI owns the terminal while it runs, so quitting it (q or
// ctrl+c) must cancel the benchmark context: the signal handler never
// sees ctrl+c in raw mode.
func runWithProgressUI(ctx context.Context, cancel context.CancelFunc, opts benchmark.Options, algos []bigint.Multiplier, recorder benchmark.Recorder) (*benchmark.Run, error) {
	prog := newProgressProgram()

	type result struct {
		run *benchmark.Run
		err error
	}
	done := make(chan result, 1)

	go func() {
		runner := benchmark.NewRunner(opts, func(p benchmark.Progress) {
			prog.Send(p)
		}, recorder)
		run, err := runner.Run(ctx, algos)
		prog.Send(ui.ProgressDone{Err: err})
		done <- result{run, err}
	}()

	_, uiErr := prog.Run()
	// No-op after a completed run; aborts the runner when the UI was
	// quit early.
	cancel()
	res := <-done
	if uiErr != nil {
		return nil, fmt.Errorf("progress UI failed: %w", uiErr)
	}
	return res.run, res.err
}

// chartOptions builds plot options from config.
func chartOptions() plot.Options {
	opts := plot.DefaultOptions()
	if w := viper.GetInt("chart.width"); w > 0 {
		opts.Width = w
	}
	if h := viper.GetInt("chart.height"); h > 0 {
		opts.Height = h
	}
	return opts
}
