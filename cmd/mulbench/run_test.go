package main

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"mulbench/internal/benchmark"
	"mulbench/internal/bigint"
	"mulbench/internal/ui"
)

func TestRunWithProgressUIQuitCancelsRun(t *testing.T) {
	orig := newProgressProgram
	defer func() { newProgressProgram = orig }()
	newProgressProgram = func(...tea.ProgramOption) *tea.Program {
		return ui.NewProgressProgram(
			tea.WithInput(strings.NewReader("q")),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Budgets far longer than the test should ever take: only
	// cancellation can end the run promptly.
	opts := benchmark.Options{
		Sizes:   []int{1},
		Warmup:  time.Minute,
		Measure: time.Minute,
		Samples: 100,
	}

	_, err := runWithProgressUI(ctx, cancel, opts, []bigint.Multiplier{bigint.NaiveMul{}}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Error(t, ctx.Err())
}
