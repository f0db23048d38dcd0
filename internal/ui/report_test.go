package ui

import (
	"testing"

	"mulbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	run := uiRun()
	md := BuildReport(run)

	assert.Contains(t, md, "# Multiplication benchmark report")
	assert.Contains(t, md, "- Label: baseline")
	assert.Contains(t, md, "- Commit: abc1234")
	assert.Contains(t, md, "| Digits |")
	assert.Contains(t, md, "| 8192 |")
	assert.Contains(t, md, "## Crossovers")
	assert.Contains(t, md, "fft beats naive from 8192 digits on")
}

func TestCrossover(t *testing.T) {
	a := benchmark.Series{Algorithm: "naive", Points: []benchmark.Point{
		{Digits: 1, Micros: 1}, {Digits: 2, Micros: 10}, {Digits: 4, Micros: 100},
	}}
	b := benchmark.Series{Algorithm: "fft", Points: []benchmark.Point{
		{Digits: 1, Micros: 5}, {Digits: 2, Micros: 8}, {Digits: 4, Micros: 20},
	}}

	size, ok := crossover(&a, &b)
	require.True(t, ok)
	assert.Equal(t, 2, size)

	// b always slower: no crossover.
	slow := benchmark.Series{Algorithm: "slow", Points: []benchmark.Point{
		{Digits: 1, Micros: 50}, {Digits: 2, Micros: 500}, {Digits: 4, Micros: 5000},
	}}
	_, ok = crossover(&a, &slow)
	assert.False(t, ok)

	// b always faster: crossover from the first size.
	fast := benchmark.Series{Algorithm: "fast", Points: []benchmark.Point{
		{Digits: 1, Micros: 0.1}, {Digits: 2, Micros: 0.2}, {Digits: 4, Micros: 0.5},
	}}
	size, ok = crossover(&a, &fast)
	require.True(t, ok)
	assert.Equal(t, 1, size)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nsome *body*\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
