package bigint

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Int {
	t.Helper()
	v, err := Parse(s)
	require.NoError(t, err)
	return v
}

func TestMultipliersBasic(t *testing.T) {
	a := mustParse(t, "12345678") // single limb
	b := mustParse(t, "87654321")
	expected := "1082152022374638"

	for _, algo := range Algorithms() {
		got := algo.Mul(a, b)
		assert.Equal(t, expected, got.String(), algo.Name())
		assert.Equal(t, 1, got.Sign(), algo.Name())
	}
}

func TestMultipliersLarge(t *testing.T) {
	a := mustParse(t, strings.Repeat("1234567890", 4))
	b := mustParse(t, strings.Repeat("9876543210", 4))
	expected := "12193263113702179522618503273386678859448712086533622923332237463801111263526900"

	for _, algo := range Algorithms() {
		assert.Equal(t, expected, algo.Mul(a, b).String(), algo.Name())
	}
}

func TestMultipliersZero(t *testing.T) {
	a := mustParse(t, "12345678901234567890")
	zero := Zero()

	for _, algo := range Algorithms() {
		assert.True(t, algo.Mul(a, zero).IsZero(), algo.Name())
		assert.True(t, algo.Mul(zero, a).IsZero(), algo.Name())
		assert.Equal(t, 0, algo.Mul(a, zero).Sign(), algo.Name())
	}
}

func TestMultipliersSign(t *testing.T) {
	a := mustParse(t, "12345678")
	b := mustParse(t, "-87654321")
	expectedAbs := "1082152022374638"

	for _, algo := range Algorithms() {
		got := algo.Mul(a, b)
		assert.Equal(t, -1, got.Sign(), algo.Name())
		assert.Equal(t, "-"+expectedAbs, got.String(), algo.Name())

		both := algo.Mul(a.Neg(), b)
		assert.Equal(t, expectedAbs, both.String(), algo.Name())
	}
}

func TestMultipliersAgree(t *testing.T) {
	// All three algorithms must produce identical products on random
	// operands that cross both dispatch thresholds.
	rng := rand.New(rand.NewSource(1))
	naive := NaiveMul{}

	for _, digits := range []int{1, 7, 40, 300, 1000} {
		a := randomInt(rng, digits)
		b := randomInt(rng, digits)
		want := naive.Mul(a, b).String()

		assert.Equal(t, want, (KaratsubaMul{}).Mul(a, b).String(), "karatsuba %d digits", digits)
		assert.Equal(t, want, (FFTMul{}).Mul(a, b).String(), "fft %d digits", digits)
		assert.Equal(t, want, a.Mul(b).String(), "dispatch %d digits", digits)
	}
}

func TestKaratsubaUnevenOperands(t *testing.T) {
	// Recursion must handle one operand much shorter than the other.
	a := Fixture(400)
	b := Fixture(3)
	want := (NaiveMul{}).Mul(a, b).String()
	assert.Equal(t, want, (KaratsubaMul{}).Mul(a, b).String())
	assert.Equal(t, want, (FFTMul{}).Mul(a, b).String())
}

func TestMulSquareIdentity(t *testing.T) {
	// (x+1)^2 = x^2 + 2x + 1 across the FFT path.
	x := Fixture(128)
	one := One()
	lhs := x.Add(one).Mul(x.Add(one))
	rhs := x.Mul(x).Add(x.MulUint32(2)).Add(one)
	assert.Equal(t, rhs.String(), lhs.String())
}

func TestByName(t *testing.T) {
	for _, name := range []string{"naive", "karatsuba", "fft"} {
		algo, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, algo.Name())
	}
	_, err := ByName("toomcook")
	assert.Error(t, err)
}

func TestThresholdOrdering(t *testing.T) {
	assert.Less(t, (NaiveMul{}).Threshold(), (KaratsubaMul{}).Threshold())
	assert.Less(t, (KaratsubaMul{}).Threshold(), (FFTMul{}).Threshold())
}

// randomInt builds a random positive integer with the given decimal
// digit count, first digit non-zero.
func randomInt(rng *rand.Rand, digits int) *Int {
	var sb strings.Builder
	sb.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < digits; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	v, err := Parse(sb.String())
	if err != nil {
		panic(err)
	}
	return v
}
