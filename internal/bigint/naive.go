package bigint

// NaiveMul is schoolbook O(n^2) multiplication. It wins on small
// operands where the asymptotically better algorithms pay more in
// overhead than they save.
type NaiveMul struct{}

func (NaiveMul) Name() string { return "naive" }

func (NaiveMul) Threshold() int { return 32 }

func (NaiveMul) Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	res := make([]uint64, len(x.limbs)+len(y.limbs))
	for i, xv := range x.limbs {
		var carry uint64
		for j, yv := range y.limbs {
			cur := res[i+j] + uint64(xv)*uint64(yv) + carry
			res[i+j] = cur % Base
			carry = cur / Base
		}
		res[i+len(y.limbs)] += carry
	}

	limbs := make([]uint32, 0, len(res))
	var carry uint64
	for _, v := range res {
		t := v + carry
		limbs = append(limbs, uint32(t%Base))
		carry = t / Base
	}
	for carry > 0 {
		limbs = append(limbs, uint32(carry%Base))
		carry /= Base
	}

	out := fromLimbs(false, limbs)
	out.neg = productSign(x, y, out)
	return out
}
