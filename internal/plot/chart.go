// Package plot renders benchmark runs as log-log line charts.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"mulbench/internal/benchmark"
)

// Options configures chart rendering.
type Options struct {
	Title  string
	Width  int
	Height int
}

// DefaultOptions returns the standard chart geometry.
func DefaultOptions() Options {
	return Options{
		Title:  "Big-integer multiplication",
		Width:  1024,
		Height: 768,
	}
}

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorOrange,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorCyan,
}

// lineStyle renders both a connecting stroke and point markers, the
// equivalent of matplotlib's marker='o' line plot.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

// Render writes the run's log2-x / log-y line chart to w in the given
// format ("png" or "svg").
func Render(run *benchmark.Run, w io.Writer, format string, opts Options) error {
	if err := run.Validate(); err != nil {
		return err
	}

	provider, err := rendererFor(format)
	if err != nil {
		return err
	}

	axis := run.Series[0].Sizes()

	var series []chart.Series
	for i, s := range run.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			// Sizes are plotted on a log2 axis; taking log2 up front and
			// labeling ticks with the real sizes keeps spacing even.
			xs[j] = math.Log2(float64(p.Digits))
			ys[j] = p.Micros
		}
		series = append(series, chart.ContinuousSeries{
			Name:    seriesTitle(s.Algorithm),
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColors[i%len(seriesColors)]),
		})
	}

	ticks := make([]chart.Tick, len(axis))
	for i, size := range axis {
		ticks[i] = chart.Tick{Value: math.Log2(float64(size)), Label: strconv.Itoa(size)}
	}

	graph := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Digits (log2 scale)",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Time (microseconds, log scale)",
			Range: &chart.LogarithmicRange{},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("plot: render failed: %w", err)
	}
	return nil
}

// RenderFile renders to path, picking the format from the extension.
func RenderFile(run *benchmark.Run, path string, opts Options) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("plot: failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(run, f, format, opts); err != nil {
		return err
	}
	return f.Close()
}

func rendererFor(format string) (chart.RendererProvider, error) {
	switch strings.ToLower(format) {
	case "png":
		return chart.PNG, nil
	case "svg":
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("plot: unsupported format %q (want png or svg)", format)
	}
}

func formatForPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("plot: cannot infer format from %q, use a .png or .svg extension", path)
	}
	return ext, nil
}

// seriesTitle capitalizes an algorithm name for the legend, matching
// the reference chart's labels (Naive, Karatsuba, FFT).
func seriesTitle(algorithm string) string {
	if algorithm == "fft" {
		return "FFT"
	}
	if algorithm == "" {
		return ""
	}
	return strings.ToUpper(algorithm[:1]) + algorithm[1:]
}
