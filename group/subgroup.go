package group

import (
	"fmt"
	"math/cmplx"

	"pyqcd/rng"
)

// SU2SubgroupCount returns Nc(Nc-1)/2, the number of SU(2) subgroups of
// SU(Nc).
func SU2SubgroupCount(nc int) int { return nc * (nc - 1) / 2 }

// SU2SubgroupPos returns the unordered index pair (i,j), 0<=i<j<nc, at
// lexicographic position k. k out of [0, Nc(Nc-1)/2) is a range error.
func SU2SubgroupPos(nc, k int) (i, j int, err error) {
	count := SU2SubgroupCount(nc)
	if k < 0 || k >= count {
		return 0, 0, fmt.Errorf("group: subgroup index %d out of range [0,%d)", k, count)
	}
	idx := 0
	for a := 0; a < nc; a++ {
		for b := a + 1; b < nc; b++ {
			if idx == k {
				return a, b, nil
			}
			idx++
		}
	}
	panic("group: subgroup enumeration did not reach index in range")
}

// ExtractSU2 forms the 2x2 submatrix R of w at subgroup k's (i,j) pair
// and returns R - R† + I*conj(trace(R)): a projection of that subblock
// into the SU(2) tangent, not itself unitary. Callers normalise by
// dividing by sqrt(det).
func ExtractSU2(w *ColorMatrix, k int) (*ColorMatrix, error) {
	i, j, err := SU2SubgroupPos(w.Nc(), k)
	if err != nil {
		return nil, err
	}

	r := NewColorMatrix(2)
	r.Set(0, 0, w.At(i, i))
	r.Set(0, 1, w.At(i, j))
	r.Set(1, 0, w.At(j, i))
	r.Set(1, 1, w.At(j, j))

	adj := r.Adjoint()
	traceConj := cmplx.Conj(r.Trace())
	out := NewColorMatrix(2)
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			v := r.At(a, b) - adj.At(a, b)
			if a == b {
				v += traceConj
			}
			out.Set(a, b, v)
		}
	}
	return out, nil
}

// InsertSU2 overwrites the (i,i), (i,j), (j,i), (j,j) entries of the
// nc×nc identity with x's entries, where (i,j) is subgroup k's pair. The
// result lies in SU(Nc) when x lies in SU(2).
func InsertSU2(x *ColorMatrix, nc, k int) (*ColorMatrix, error) {
	i, j, err := SU2SubgroupPos(nc, k)
	if err != nil {
		return nil, err
	}

	out := IdentityColorMatrix(nc)
	out.Set(i, i, x.At(0, 0))
	out.Set(i, j, x.At(0, 1))
	out.Set(j, i, x.At(1, 0))
	out.Set(j, j, x.At(1, 1))
	return out, nil
}

// RandomSUN samples a uniform SU(Nc) element as the product, over every
// SU(2) subgroup in lexicographic order, of insert(random_su2, k),
// starting from the identity.
func RandomSUN(stream *rng.Stream, nc int) *ColorMatrix {
	out := IdentityColorMatrix(nc)
	for k := 0; k < SU2SubgroupCount(nc); k++ {
		x := RandomSU2(stream)
		n, err := InsertSU2(x, nc, k)
		if err != nil {
			panic(err) // k is always in range here
		}
		out = out.Mul(n)
	}
	return out
}
