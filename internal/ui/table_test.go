package ui

import (
	"bytes"
	"testing"
	"time"

	"mulbench/internal/benchmark"
	"mulbench/internal/store"

	"github.com/stretchr/testify/assert"
)

func uiRun() *benchmark.Run {
	return &benchmark.Run{
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Label:     "baseline",
		Commit:    "abc1234",
		Series: []benchmark.Series{
			{Algorithm: "naive", Points: []benchmark.Point{
				{Digits: 64, Micros: 1.4112},
				{Digits: 8192, Micros: 17367},
			}},
			{Algorithm: "fft", Points: []benchmark.Point{
				{Digits: 64, Micros: 7.5764},
				{Digits: 8192, Micros: 2134.6},
			}},
		},
	}
}

func TestRenderRun(t *testing.T) {
	var buf bytes.Buffer
	RenderRun(&buf, uiRun())

	out := buf.String()
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "@abc1234")
	assert.Contains(t, out, "DIGITS")
	assert.Contains(t, out, "naive µs")
	assert.Contains(t, out, "fft µs")
	assert.Contains(t, out, "8192")
	assert.Contains(t, out, "17367.0")
	assert.Contains(t, out, "2134.6")
}

func TestRenderComparisons(t *testing.T) {
	comparisons := []benchmark.Comparison{
		{Algorithm: "naive", Digits: 64, PrevMicros: 1.0, CurrMicros: 2.0, DiffPct: 100},
		{Algorithm: "fft", Digits: 64, PrevMicros: 8.0, CurrMicros: 4.0, DiffPct: -50},
		{Algorithm: "fft", Digits: 128, PrevMicros: 16.0, CurrMicros: 16.5, DiffPct: 3.125},
	}

	var buf bytes.Buffer
	RenderComparisons(&buf, comparisons, 10)

	out := buf.String()
	assert.Contains(t, out, "SLOWER")
	assert.Contains(t, out, "FASTER")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "naive/64")
	assert.Contains(t, out, "+100.00%")
	assert.Contains(t, out, "-50.00%")
}

func TestRenderRunList(t *testing.T) {
	var buf bytes.Buffer
	RenderRunList(&buf, nil)
	assert.Contains(t, buf.String(), "No stored runs")

	buf.Reset()
	RenderRunList(&buf, []store.RunSummary{
		{ID: 2, Timestamp: time.Now(), Label: "tuned", Commit: "def5678", Series: 3, Points: 42},
		{ID: 1, Timestamp: time.Now().Add(-time.Hour), Label: "baseline", Series: 3, Points: 42},
	})
	out := buf.String()
	assert.Contains(t, out, "tuned")
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "def5678")
}

func TestFormatMicros(t *testing.T) {
	assert.Equal(t, "0.05784", formatMicros(0.05784))
	assert.Equal(t, "7.576", formatMicros(7.5764))
	assert.Equal(t, "2134.6", formatMicros(2134.6))
}
