package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mulbench/internal/benchmark"
	"mulbench/internal/ui"
)

var (
	compareBaseline  int64
	compareCurrent   int64
	compareThreshold float64
	compareFail      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two stored runs",
	Long: `Compares per-algorithm, per-size timings between two stored runs.
Without flags the latest run is compared against the one before it.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Int64Var(&compareBaseline, "baseline", 0, "baseline run id (default: second newest)")
	compareCmd.Flags().Int64Var(&compareCurrent, "current", 0, "current run id (default: newest)")
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 0, "slowdown percentage treated as a regression (default from config)")
	compareCmd.Flags().BoolVar(&compareFail, "fail-on-regression", false, "exit with an error if any point regressed")
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	baselineID, currentID := compareBaseline, compareCurrent
	if baselineID == 0 || currentID == 0 {
		summaries, err := s.ListRuns(2)
		if err != nil {
			return err
		}
		if len(summaries) < 2 {
			return fmt.Errorf("need at least two stored runs to compare, have %d", len(summaries))
		}
		if currentID == 0 {
			currentID = summaries[0].ID
		}
		if baselineID == 0 {
			baselineID = summaries[1].ID
		}
	}

	prev, err := s.LoadRun(baselineID)
	if err != nil {
		return err
	}
	curr, err := s.LoadRun(currentID)
	if err != nil {
		return err
	}

	threshold := compareThreshold
	if threshold <= 0 {
		threshold = viper.GetFloat64("threshold")
	}

	comparisons := benchmark.Compare(prev, curr)
	if len(comparisons) == 0 {
		return fmt.Errorf("runs %d and %d have no points in common", baselineID, currentID)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Comparing run %d against baseline %d (threshold %.1f%%)\n\n", currentID, baselineID, threshold)
	ui.RenderComparisons(cmd.OutOrStdout(), comparisons, threshold)

	if compareFail {
		for _, c := range comparisons {
			if c.Regression(threshold) {
				return fmt.Errorf("performance regression: %s", c)
			}
		}
	}
	return nil
}
