package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"mulbench/internal/bigint"
)

// DefaultSizes is the measured size axis: powers of two from 1 to 8192
// limbs.
var DefaultSizes = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}

// Options configures a benchmark run.
type Options struct {
	Sizes   []int         // operand sizes in limbs, strictly increasing
	Warmup  time.Duration // per algorithm/size warmup time
	Measure time.Duration // per algorithm/size measurement time
	Samples int           // samples the measurement time is divided into
}

// DefaultOptions mirrors the criterion configuration the project's
// reference numbers were produced with.
func DefaultOptions() Options {
	return Options{
		Sizes:   DefaultSizes,
		Warmup:  2 * time.Second,
		Measure: 5 * time.Second,
		Samples: 100,
	}
}

func (o Options) validate() error {
	if len(o.Sizes) == 0 {
		return fmt.Errorf("benchmark: no sizes configured")
	}
	if o.Sizes[0] <= 0 {
		return fmt.Errorf("benchmark: sizes must be positive, got %d", o.Sizes[0])
	}
	for i := 1; i < len(o.Sizes); i++ {
		if o.Sizes[i] <= o.Sizes[i-1] {
			return fmt.Errorf("benchmark: sizes must be strictly increasing at %d", o.Sizes[i])
		}
	}
	if o.Samples <= 0 {
		return fmt.Errorf("benchmark: samples must be positive, got %d", o.Samples)
	}
	if o.Measure <= 0 {
		return fmt.Errorf("benchmark: measure duration must be positive")
	}
	return nil
}

// Progress describes one completed algorithm/size step.
type Progress struct {
	Algorithm string
	Digits    int
	Step      int // 1-based completed step count
	Total     int
}

// ProgressFunc receives progress events during a run.
type ProgressFunc func(Progress)

// Recorder receives raw sample observations, e.g. for Prometheus export.
type Recorder interface {
	ObserveSample(algorithm string, digits int, perOp time.Duration)
}

// Runner executes multiplication benchmarks in-process.
type Runner struct {
	opts       Options
	onProgress ProgressFunc
	recorder   Recorder
}

// NewRunner creates a Runner. onProgress and recorder may be nil.
func NewRunner(opts Options, onProgress ProgressFunc, recorder Recorder) *Runner {
	return &Runner{opts: opts, onProgress: onProgress, recorder: recorder}
}

// sink defeats dead-code elimination of the measured multiplications.
var sink *bigint.Int

// Run measures every algorithm over the configured sizes and returns a
// validated Run. It stops early if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, algos []bigint.Multiplier) (*Run, error) {
	if err := r.opts.validate(); err != nil {
		return nil, err
	}
	if len(algos) == 0 {
		return nil, fmt.Errorf("benchmark: no algorithms selected")
	}

	run := &Run{
		Timestamp: time.Now(),
		GoVersion: runtime.Version(),
	}
	if commit, err := gitCommit(); err == nil {
		run.Commit = commit
	}

	total := len(algos) * len(r.opts.Sizes)
	step := 0

	for _, algo := range algos {
		series := Series{Algorithm: algo.Name()}
		for _, size := range r.opts.Sizes {
			point, err := r.measure(ctx, algo, size)
			if err != nil {
				return nil, err
			}
			series.Points = append(series.Points, point)

			step++
			slog.Debug("benchmark step complete",
				"algorithm", algo.Name(), "digits", size, "micros", point.Micros)
			if r.onProgress != nil {
				r.onProgress(Progress{
					Algorithm: algo.Name(),
					Digits:    size,
					Step:      step,
					Total:     total,
				})
			}
		}
		run.Series = append(run.Series, series)
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

// measure times one algorithm at one size: warm up, calibrate the
// iteration count so a sample lasts roughly Measure/Samples, then
// collect per-sample means and reduce to the median.
func (r *Runner) measure(ctx context.Context, algo bigint.Multiplier, size int) (Point, error) {
	x := bigint.Fixture(size)
	y := bigint.Fixture(size)

	perOp := r.warmup(ctx, algo, x, y)
	if err := ctx.Err(); err != nil {
		return Point{}, err
	}

	perSample := r.opts.Measure / time.Duration(r.opts.Samples)
	iters := int64(1)
	if perOp > 0 {
		iters = int64(perSample / perOp)
		if iters < 1 {
			iters = 1
		}
	}

	samples := make([]float64, 0, r.opts.Samples)
	for s := 0; s < r.opts.Samples; s++ {
		select {
		case <-ctx.Done():
			return Point{}, ctx.Err()
		default:
		}

		start := time.Now()
		for i := int64(0); i < iters; i++ {
			sink = algo.Mul(x, y)
		}
		elapsed := time.Since(start)

		op := elapsed / time.Duration(iters)
		if r.recorder != nil {
			r.recorder.ObserveSample(algo.Name(), size, op)
		}
		samples = append(samples, float64(elapsed.Nanoseconds())/float64(iters)/1e3)
	}

	return Point{
		Digits:     size,
		Micros:     median(samples),
		MinMicros:  minOf(samples),
		MaxMicros:  maxOf(samples),
		Samples:    len(samples),
		Iterations: iters,
	}, nil
}

// warmup runs the multiplication until the warmup budget is spent and
// returns the observed per-op cost for sample calibration.
func (r *Runner) warmup(ctx context.Context, algo bigint.Multiplier, x, y *bigint.Int) time.Duration {
	start := time.Now()
	var ops int64
	for time.Since(start) < r.opts.Warmup {
		if ctx.Err() != nil {
			return 0
		}
		sink = algo.Mul(x, y)
		ops++
	}
	if ops == 0 {
		return 0
	}
	return time.Since(start) / time.Duration(ops)
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// execCommand allows mocking git in tests.
var execCommand = exec.Command

func gitCommit() (string, error) {
	out, err := execCommand("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
