package bigint

import "fmt"

// Multiplier is a big-integer multiplication algorithm.
type Multiplier interface {
	// Name identifies the algorithm in benchmark output and charts.
	Name() string

	// Mul returns x * y.
	Mul(x, y *Int) *Int

	// Threshold is the largest limb count the algorithm is intended for
	// on the default dispatch path.
	Threshold() int
}

// Mul returns x * y, picking the algorithm by operand size: schoolbook
// for small operands, FFT above the naive threshold. Karatsuba is kept
// for benchmarking but loses to FFT on constant factors, so it is not
// part of the default path.
func (x *Int) Mul(y *Int) *Int {
	n := len(x.limbs)
	if len(y.limbs) > n {
		n = len(y.limbs)
	}
	if n <= (NaiveMul{}).Threshold() {
		return NaiveMul{}.Mul(x, y)
	}
	return FFTMul{}.Mul(x, y)
}

// Algorithms returns every multiplication algorithm, in benchmark order.
func Algorithms() []Multiplier {
	return []Multiplier{NaiveMul{}, KaratsubaMul{}, FFTMul{}}
}

// ByName resolves an algorithm by its Name.
func ByName(name string) (Multiplier, error) {
	for _, a := range Algorithms() {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("bigint: unknown algorithm %q", name)
}

// productSign is the sign of a product with the given operand signs,
// normalized for zero results.
func productSign(x, y, result *Int) bool {
	return (x.neg != y.neg) && !result.IsZero()
}
