package benchmark

import (
	"context"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"mulbench/internal/bigint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastOptions keeps runner tests quick.
func fastOptions() Options {
	return Options{
		Sizes:   []int{1, 2, 4},
		Warmup:  time.Millisecond,
		Measure: 10 * time.Millisecond,
		Samples: 3,
	}
}

func TestRunnerRun(t *testing.T) {
	var events []Progress
	runner := NewRunner(fastOptions(), func(p Progress) {
		events = append(events, p)
	}, nil)

	run, err := runner.Run(context.Background(), bigint.Algorithms())
	require.NoError(t, err)
	require.NoError(t, run.Validate())

	assert.Len(t, run.Series, 3)
	assert.Equal(t, "naive", run.Series[0].Algorithm)
	assert.Equal(t, []int{1, 2, 4}, run.Series[0].Sizes())
	assert.NotEmpty(t, run.GoVersion)

	// One progress event per algorithm/size pair, monotonically stepped.
	require.Len(t, events, 9)
	assert.Equal(t, 1, events[0].Step)
	assert.Equal(t, 9, events[8].Step)
	assert.Equal(t, 9, events[8].Total)

	for _, s := range run.Series {
		for _, p := range s.Points {
			assert.Positive(t, p.Micros, "%s/%d", s.Algorithm, p.Digits)
			assert.GreaterOrEqual(t, p.MaxMicros, p.MinMicros)
			assert.Equal(t, 3, p.Samples)
			assert.Positive(t, p.Iterations)
		}
	}
}

func TestRunnerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(fastOptions(), nil, nil)
	_, err := runner.Run(ctx, bigint.Algorithms())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRejectsBadOptions(t *testing.T) {
	cases := []Options{
		{Sizes: nil, Warmup: 0, Measure: time.Millisecond, Samples: 1},
		{Sizes: []int{0, 1}, Measure: time.Millisecond, Samples: 1},
		{Sizes: []int{4, 2}, Measure: time.Millisecond, Samples: 1},
		{Sizes: []int{1, 2}, Measure: time.Millisecond, Samples: 0},
		{Sizes: []int{1, 2}, Measure: 0, Samples: 1},
	}
	for i, opts := range cases {
		_, err := NewRunner(opts, nil, nil).Run(context.Background(), bigint.Algorithms())
		assert.Error(t, err, "case %d", i)
	}
}

func TestRunnerRejectsNoAlgorithms(t *testing.T) {
	_, err := NewRunner(fastOptions(), nil, nil).Run(context.Background(), nil)
	assert.ErrorContains(t, err, "no algorithms")
}

type countingRecorder struct {
	mu    sync.Mutex
	count int
}

func (c *countingRecorder) ObserveSample(string, int, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func TestRunnerRecorder(t *testing.T) {
	rec := &countingRecorder{}
	runner := NewRunner(fastOptions(), nil, rec)

	_, err := runner.Run(context.Background(), []bigint.Multiplier{bigint.NaiveMul{}})
	require.NoError(t, err)

	// 3 sizes x 3 samples
	assert.Equal(t, 9, rec.count)
}

func TestGitCommitMocked(t *testing.T) {
	orig := execCommand
	defer func() { execCommand = orig }()

	execCommand = fakeExecCommand("abc1234\n")
	commit, err := gitCommit()
	require.NoError(t, err)
	assert.Equal(t, "abc1234", commit)
}

// fakeExecCommand substitutes a command that prints the given output.
func fakeExecCommand(output string) func(string, ...string) *exec.Cmd {
	return func(string, ...string) *exec.Cmd {
		return exec.Command("echo", strings.TrimSpace(output))
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, median(nil))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultSizes, opts.Sizes)
	assert.Equal(t, 2*time.Second, opts.Warmup)
	assert.Equal(t, 5*time.Second, opts.Measure)
	assert.Equal(t, 100, opts.Samples)
	assert.NoError(t, opts.validate())
}
