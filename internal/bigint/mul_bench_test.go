package bigint

import (
	"fmt"
	"testing"
)

var benchSink *Int

func benchmarkMul(b *testing.B, algo Multiplier, limbs int) {
	x := Fixture(limbs)
	y := Fixture(limbs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = algo.Mul(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	for _, algo := range Algorithms() {
		for _, limbs := range []int{1, 16, 256} {
			b.Run(fmt.Sprintf("%s/%d-limbs", algo.Name(), limbs), func(b *testing.B) {
				benchmarkMul(b, algo, limbs)
			})
		}
	}
}
