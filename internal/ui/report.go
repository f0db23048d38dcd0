package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"mulbench/internal/benchmark"
)

// BuildReport renders a run as a markdown document: the timing table
// plus crossover analysis between the algorithms.
func BuildReport(run *benchmark.Run) string {
	var sb strings.Builder

	sb.WriteString("# Multiplication benchmark report\n\n")
	fmt.Fprintf(&sb, "- Date: %s\n", run.Timestamp.Format("2006-01-02 15:04:05"))
	if run.Label != "" {
		fmt.Fprintf(&sb, "- Label: %s\n", run.Label)
	}
	if run.Commit != "" {
		fmt.Fprintf(&sb, "- Commit: %s\n", run.Commit)
	}
	if run.GoVersion != "" {
		fmt.Fprintf(&sb, "- Go: %s\n", run.GoVersion)
	}
	sb.WriteString("\n## Timings (µs per multiplication)\n\n")

	sb.WriteString("| Digits |")
	for _, s := range run.Series {
		fmt.Fprintf(&sb, " %s |", s.Algorithm)
	}
	sb.WriteString("\n|---|")
	for range run.Series {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	if len(run.Series) > 0 {
		for i, p := range run.Series[0].Points {
			fmt.Fprintf(&sb, "| %d |", p.Digits)
			for _, s := range run.Series {
				fmt.Fprintf(&sb, " %s |", formatMicros(s.Points[i].Micros))
			}
			sb.WriteString("\n")
		}
	}

	if lines := crossoverLines(run); len(lines) > 0 {
		sb.WriteString("\n## Crossovers\n\n")
		for _, l := range lines {
			sb.WriteString("- " + l + "\n")
		}
	}

	return sb.String()
}

// crossoverLines describes, per algorithm pair, the first size at which
// the asymptotically better algorithm overtakes the simpler one.
func crossoverLines(run *benchmark.Run) []string {
	var lines []string
	for i, a := range run.Series {
		for _, b := range run.Series[i+1:] {
			if size, ok := crossover(&a, &b); ok {
				lines = append(lines, fmt.Sprintf("%s beats %s from %d digits on", b.Algorithm, a.Algorithm, size))
			} else {
				lines = append(lines, fmt.Sprintf("%s never beats %s in the measured range", b.Algorithm, a.Algorithm))
			}
		}
	}
	return lines
}

// crossover returns the smallest size from which b stays faster than a.
func crossover(a, b *benchmark.Series) (int, bool) {
	if len(a.Points) != len(b.Points) {
		return 0, false
	}
	for i := len(a.Points) - 1; i >= 0; i-- {
		if b.Points[i].Micros >= a.Points[i].Micros {
			if i == len(a.Points)-1 {
				return 0, false
			}
			return a.Points[i+1].Digits, true
		}
	}
	if len(a.Points) == 0 {
		return 0, false
	}
	return a.Points[0].Digits, true
}

// RenderMarkdown pretty-prints markdown for the terminal.
func RenderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
