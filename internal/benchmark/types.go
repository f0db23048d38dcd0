package benchmark

import (
	"fmt"
	"time"
)

// Point is the measurement for one algorithm at one operand size.
type Point struct {
	Digits     int     `json:"digits"`     // operand size in base-10^8 limbs
	Micros     float64 `json:"micros"`     // median microseconds per multiplication
	MinMicros  float64 `json:"min_micros"` // fastest sample
	MaxMicros  float64 `json:"max_micros"` // slowest sample
	Samples    int     `json:"samples"`
	Iterations int64   `json:"iterations"` // multiplications per sample
}

// Series holds the points of a single algorithm, ordered by size.
type Series struct {
	Algorithm string  `json:"algorithm"`
	Points    []Point `json:"points"`
}

// Sizes returns the digit axis of the series.
func (s *Series) Sizes() []int {
	sizes := make([]int, len(s.Points))
	for i, p := range s.Points {
		sizes[i] = p.Digits
	}
	return sizes
}

// Run is one complete benchmark execution across all algorithms.
type Run struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label,omitempty"`
	Commit    string    `json:"commit,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
	Series    []Series  `json:"series"`
}

// SeriesByName returns the series for an algorithm, or nil.
func (r *Run) SeriesByName(algorithm string) *Series {
	for i := range r.Series {
		if r.Series[i].Algorithm == algorithm {
			return &r.Series[i]
		}
	}
	return nil
}

// Validate checks the structural invariants every run must satisfy
// before it can be stored or plotted on logarithmic axes: at least one
// series, every series sharing one strictly increasing size axis, and
// strictly positive timings.
func (r *Run) Validate() error {
	if len(r.Series) == 0 {
		return fmt.Errorf("benchmark: run has no series")
	}

	axis := r.Series[0].Sizes()
	if len(axis) == 0 {
		return fmt.Errorf("benchmark: series %q has no points", r.Series[0].Algorithm)
	}
	if axis[0] <= 0 {
		return fmt.Errorf("benchmark: size axis must be positive, got %d", axis[0])
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("benchmark: size axis not strictly increasing at %d", axis[i])
		}
	}

	for _, s := range r.Series {
		if got := s.Sizes(); !equalInts(got, axis) {
			return fmt.Errorf("benchmark: series %q size axis %v differs from %v", s.Algorithm, got, axis)
		}
		for _, p := range s.Points {
			if p.Micros <= 0 {
				return fmt.Errorf("benchmark: series %q has non-positive timing %g at %d digits", s.Algorithm, p.Micros, p.Digits)
			}
		}
	}
	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
