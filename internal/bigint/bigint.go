package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Base is the value of a single limb. Limbs hold 8 decimal digits so
	// that a limb product fits comfortably in 64 bits.
	Base = 100_000_000

	// Width is the number of decimal digits per limb (Base = 10^Width).
	Width = 8
)

// Int is an arbitrary-precision signed integer.
//
// Limbs are stored little-endian in base 10^8. The highest limb is never
// zero except for the value zero itself, which is always non-negative and
// stored as a single zero limb.
type Int struct {
	neg   bool
	limbs []uint32
}

// fromLimbs builds an Int from raw limbs, trimming leading zeros and
// normalizing the sign of zero.
func fromLimbs(neg bool, limbs []uint32) *Int {
	for len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		limbs = []uint32{0}
	}
	if len(limbs) == 1 && limbs[0] == 0 {
		neg = false
	}
	return &Int{neg: neg, limbs: limbs}
}

// Zero returns a new Int with value 0.
func Zero() *Int { return &Int{limbs: []uint32{0}} }

// One returns a new Int with value 1.
func One() *Int { return &Int{limbs: []uint32{1}} }

// FromInt64 converts v to an Int.
func FromInt64(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	var limbs []uint32
	for {
		limbs = append(limbs, uint32(u%Base))
		u /= Base
		if u == 0 {
			break
		}
	}
	return fromLimbs(neg, limbs)
}

// Parse converts a decimal string, with an optional leading '-' or '+',
// to an Int.
func Parse(s string) (*Int, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("bigint: cannot parse %q", orig)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("bigint: cannot parse %q: invalid digit %q", orig, c)
		}
	}

	// Chunk from the least significant end, Width digits per limb.
	limbs := make([]uint32, 0, len(s)/Width+1)
	for end := len(s); end > 0; end -= Width {
		start := end - Width
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(s[start:end], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bigint: cannot parse %q: %w", orig, err)
		}
		limbs = append(limbs, uint32(v))
	}
	return fromLimbs(neg, limbs), nil
}

// String renders the value in decimal.
func (x *Int) String() string {
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(uint64(x.limbs[len(x.limbs)-1]), 10))
	for i := len(x.limbs) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08d", x.limbs[i])
	}
	return sb.String()
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return len(x.limbs) == 1 && x.limbs[0] == 0
}

// Sign returns -1, 0 or 1.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Limbs returns the number of base-10^8 limbs.
func (x *Int) Limbs() int { return len(x.limbs) }

// Digits returns the number of significant decimal digits.
func (x *Int) Digits() int {
	n := (len(x.limbs) - 1) * Width
	high := x.limbs[len(x.limbs)-1]
	if high == 0 {
		return n + 1 // the value zero
	}
	for high > 0 {
		n++
		high /= 10
	}
	return n
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return &Int{limbs: x.limbs}
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.IsZero() {
		return Zero()
	}
	return &Int{neg: !x.neg, limbs: x.limbs}
}

// CmpAbs compares |x| and |y|, returning -1, 0 or 1.
func (x *Int) CmpAbs(y *Int) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.CmpAbs(y)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x and y have the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// absAdd returns |x| + |y|.
func absAdd(x, y *Int) *Int {
	n := len(x.limbs)
	if len(y.limbs) > n {
		n = len(y.limbs)
	}
	limbs := make([]uint32, 0, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		sum := carry
		if i < len(x.limbs) {
			sum += uint64(x.limbs[i])
		}
		if i < len(y.limbs) {
			sum += uint64(y.limbs[i])
		}
		limbs = append(limbs, uint32(sum%Base))
		carry = sum / Base
	}
	if carry > 0 {
		limbs = append(limbs, uint32(carry))
	}
	return fromLimbs(false, limbs)
}

// absSub returns |x| - |y|. Requires |x| >= |y|.
func absSub(x, y *Int) *Int {
	limbs := make([]uint32, 0, len(x.limbs))
	var borrow int64
	for i := 0; i < len(x.limbs); i++ {
		d := int64(x.limbs[i]) - borrow
		if i < len(y.limbs) {
			d -= int64(y.limbs[i])
		}
		if d < 0 {
			d += Base
			borrow = 1
		} else {
			borrow = 0
		}
		limbs = append(limbs, uint32(d))
	}
	return fromLimbs(false, limbs)
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		s := absAdd(x, y)
		s.neg = x.neg && !s.IsZero()
		return s
	}
	switch x.CmpAbs(y) {
	case 0:
		return Zero()
	case 1:
		d := absSub(x, y)
		d.neg = x.neg
		return d
	default:
		d := absSub(y, x)
		d.neg = y.neg
		return d
	}
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// MulUint32 returns x * m. Any uint32 multiplier is fine: a limb
// product plus carry always fits in 64 bits.
func (x *Int) MulUint32(m uint32) *Int {
	if m == 0 || x.IsZero() {
		return Zero()
	}
	limbs := make([]uint32, 0, len(x.limbs)+1)
	var carry uint64
	for _, l := range x.limbs {
		t := uint64(l)*uint64(m) + carry
		limbs = append(limbs, uint32(t%Base))
		carry = t / Base
	}
	if carry > 0 {
		limbs = append(limbs, uint32(carry))
	}
	return fromLimbs(x.neg, limbs)
}

// Pow returns x raised to exp by binary exponentiation.
func (x *Int) Pow(exp uint64) *Int {
	result := One()
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// shiftLimbs returns x * Base^n.
func shiftLimbs(x *Int, n int) *Int {
	if x.IsZero() {
		return Zero()
	}
	limbs := make([]uint32, n, n+len(x.limbs))
	limbs = append(limbs, x.limbs...)
	return fromLimbs(x.neg, limbs)
}

// splitAt splits |x| into high and low parts at limb m: x = high*Base^m + low.
func splitAt(x *Int, m int) (high, low *Int) {
	if len(x.limbs) <= m {
		return Zero(), x.Abs()
	}
	return fromLimbs(false, x.limbs[m:]), fromLimbs(false, x.limbs[:m])
}

// Fixture builds a deterministic positive operand with the given limb
// count, used by the benchmark harness so that runs are reproducible.
func Fixture(limbs int) *Int {
	if limbs <= 0 {
		panic("bigint: fixture limb count must be positive")
	}
	v := make([]uint32, limbs)
	for i := range v {
		v[i] = (uint32(i+1) * 12_345_679) % Base
	}
	return fromLimbs(false, v)
}
