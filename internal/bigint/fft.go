package bigint

import "math"

// FFTMul multiplies via complex FFT convolution. Each base-10^8 limb is
// split into two base-10^4 coefficients so that the rounded convolution
// stays well inside float64 precision across the supported range.
type FFTMul struct{}

const fftSplitBase = 10_000

func (FFTMul) Name() string { return "fft" }

func (FFTMul) Threshold() int { return 1 << 20 }

func (FFTMul) Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	// Two coefficients per limb.
	fftLen := nextPow2(len(x.limbs)<<1 + len(y.limbs)<<1)

	buf := make([]complex128, fftLen*2)
	fa, fb := buf[:fftLen], buf[fftLen:]
	limbsToCoeffs(x, fa)
	limbsToCoeffs(y, fb)

	fft(fa, false)
	fft(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	res := coeffsToInt(fa)
	res.neg = productSign(x, y, res)
	return res
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// fft is an in-place iterative radix-2 transform. len(data) must be a
// power of two.
func fft(data []complex128, inverse bool) {
	n := len(data)

	// Bit-reversal permutation.
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		angle := -2 * math.Pi / float64(length)
		if inverse {
			angle = -angle
		}
		wLen := complex(math.Cos(angle), math.Sin(angle))

		for start := 0; start < n; start += length {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := data[start+k]
				v := data[start+k+half] * w
				data[start+k] = u + v
				data[start+k+half] = u - v
				w *= wLen
			}
		}
	}

	if inverse {
		factor := complex(1/float64(n), 0)
		for i := range data {
			data[i] *= factor
		}
	}
}

// limbsToCoeffs writes the base-10^4 coefficient expansion of x into
// target, zero-padding the rest.
func limbsToCoeffs(x *Int, target []complex128) {
	for i := range target {
		target[i] = 0
	}
	for i, limb := range x.limbs {
		pos := i * 2
		if pos < len(target) {
			target[pos] = complex(float64(limb%fftSplitBase), 0)
		}
		if pos+1 < len(target) {
			target[pos+1] = complex(float64(limb/fftSplitBase), 0)
		}
	}
}

// coeffsToInt rounds the convolution back to limbs, propagating carries.
func coeffsToInt(data []complex128) *Int {
	limbs := make([]uint32, 0, len(data)/2+1)
	var carry uint64
	for i := 0; i < len(data); i += 2 {
		low := roundCoeff(data[i])
		var high uint64
		if i+1 < len(data) {
			high = roundCoeff(data[i+1])
		}
		combined := low + high*fftSplitBase + carry
		limbs = append(limbs, uint32(combined%Base))
		carry = combined / Base
	}
	for carry > 0 {
		limbs = append(limbs, uint32(carry%Base))
		carry /= Base
	}
	return fromLimbs(false, limbs)
}

func roundCoeff(c complex128) uint64 {
	v := math.Floor(real(c) + 0.5)
	if v < 0 {
		return 0
	}
	return uint64(v)
}
