package bigint

// KaratsubaMul is divide-and-conquer multiplication with three
// half-size recursive products instead of four. It is implemented for
// benchmarking and comparison; the default dispatch path goes straight
// from schoolbook to FFT because Karatsuba's constant factors lose to
// the FFT here across the measured range.
type KaratsubaMul struct{}

func (KaratsubaMul) Name() string { return "karatsuba" }

func (KaratsubaMul) Threshold() int { return 256 }

func (KaratsubaMul) Mul(x, y *Int) *Int {
	res := karatsuba(x.Abs(), y.Abs())
	res.neg = productSign(x, y, res)
	return res
}

// karatsuba multiplies non-negative operands recursively, falling back
// to schoolbook below the naive threshold.
func karatsuba(x, y *Int) *Int {
	n := len(x.limbs)
	if len(y.limbs) > n {
		n = len(y.limbs)
	}
	if n <= (NaiveMul{}).Threshold() {
		return NaiveMul{}.Mul(x, y)
	}

	m := n >> 1
	a, b := splitAt(x, m)
	c, d := splitAt(y, m)

	ac := karatsuba(a, c)
	bd := karatsuba(b, d)
	mid := karatsuba(a.Add(b), c.Add(d)).Sub(ac).Sub(bd)

	// x*y = ac*Base^2m + mid*Base^m + bd
	return shiftLimbs(ac, m<<1).Add(shiftLimbs(mid, m)).Add(bd)
}
