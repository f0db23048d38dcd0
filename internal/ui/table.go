package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"mulbench/internal/benchmark"
	"mulbench/internal/store"
)

// RenderRun prints a run as a table with one column per algorithm.
func RenderRun(w io.Writer, run *benchmark.Run) {
	header := fmt.Sprintf("Run %s", run.Timestamp.Format("2006-01-02 15:04:05"))
	if run.Label != "" {
		header += "  " + run.Label
	}
	if run.Commit != "" {
		header += "  @" + run.Commit
	}
	fmt.Fprintln(w, maybe(titleStyle, header))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprint(tw, maybe(headerStyle, "DIGITS"))
	for _, s := range run.Series {
		fmt.Fprintf(tw, "\t%s", maybe(headerStyle, s.Algorithm+" µs"))
	}
	fmt.Fprintln(tw)

	if len(run.Series) > 0 {
		for i, p := range run.Series[0].Points {
			fmt.Fprintf(tw, "%d", p.Digits)
			for _, s := range run.Series {
				fmt.Fprintf(tw, "\t%s", formatMicros(s.Points[i].Micros))
			}
			fmt.Fprintln(tw)
		}
	}
	tw.Flush()
}

// RenderComparisons prints per-point deltas between two runs, flagging
// regressions and improvements against the threshold.
func RenderComparisons(w io.Writer, comparisons []benchmark.Comparison, thresholdPct float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		maybe(headerStyle, "BENCHMARK"),
		maybe(headerStyle, "PREV µs"),
		maybe(headerStyle, "CURR µs"),
		maybe(headerStyle, "DIFF %"),
		maybe(headerStyle, "STATUS"))

	for _, c := range comparisons {
		status := "OK"
		if c.Regression(thresholdPct) {
			status = maybe(errorStyle, "SLOWER")
		} else if c.Improvement(thresholdPct) {
			status = maybe(successStyle, "FASTER")
		}
		fmt.Fprintf(tw, "%s/%d\t%s\t%s\t%+.2f%%\t%s\n",
			c.Algorithm, c.Digits,
			formatMicros(c.PrevMicros), formatMicros(c.CurrMicros),
			c.DiffPct, status)
	}
	tw.Flush()
}

// RenderRunList prints stored run summaries, newest first.
func RenderRunList(w io.Writer, summaries []store.RunSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, maybe(mutedStyle, "No stored runs."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		maybe(headerStyle, "ID"),
		maybe(headerStyle, "DATE"),
		maybe(headerStyle, "LABEL"),
		maybe(headerStyle, "COMMIT"),
		maybe(headerStyle, "SERIES"),
		maybe(headerStyle, "POINTS"))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
			s.ID, s.Timestamp.Format("2006-01-02 15:04"), s.Label, s.Commit, s.Series, s.Points)
	}
	tw.Flush()
}

// formatMicros keeps small timings readable without drowning large
// ones in decimals.
func formatMicros(v float64) string {
	switch {
	case v < 1:
		return fmt.Sprintf("%.5f", v)
	case v < 100:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
