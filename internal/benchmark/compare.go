package benchmark

import "fmt"

// Comparison is the delta between the same measurement in two runs.
type Comparison struct {
	Algorithm  string
	Digits     int
	PrevMicros float64
	CurrMicros float64
	DiffPct    float64 // positive means the current run is slower
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%d: %+.2f%%", c.Algorithm, c.Digits, c.DiffPct)
}

// Regression reports whether the slowdown exceeds thresholdPct.
func (c Comparison) Regression(thresholdPct float64) bool {
	return c.DiffPct > thresholdPct
}

// Improvement reports whether the speedup exceeds thresholdPct.
func (c Comparison) Improvement(thresholdPct float64) bool {
	return c.DiffPct < -thresholdPct
}

// Compare matches points present in both runs by algorithm and size and
// computes percentage deltas, in the current run's order.
func Compare(prev, curr *Run) []Comparison {
	prevPoints := make(map[string]Point)
	for _, s := range prev.Series {
		for _, p := range s.Points {
			prevPoints[pointKey(s.Algorithm, p.Digits)] = p
		}
	}

	var comparisons []Comparison
	for _, s := range curr.Series {
		for _, p := range s.Points {
			pp, ok := prevPoints[pointKey(s.Algorithm, p.Digits)]
			if !ok || pp.Micros <= 0 {
				continue
			}
			comparisons = append(comparisons, Comparison{
				Algorithm:  s.Algorithm,
				Digits:     p.Digits,
				PrevMicros: pp.Micros,
				CurrMicros: p.Micros,
				DiffPct:    (p.Micros - pp.Micros) / pp.Micros * 100,
			})
		}
	}
	return comparisons
}

func pointKey(algorithm string, digits int) string {
	return fmt.Sprintf("%s/%d", algorithm, digits)
}
