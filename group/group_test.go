package group

import (
	"math/cmplx"
	"testing"

	"pyqcd/rng"
)

func checkSU2(t *testing.T, m *ColorMatrix) {
	t.Helper()
	id := IdentityColorMatrix(2)
	prod := m.Adjoint().Mul(m)
	if d := prod.MaxAbsDiff(id); d > 1e-12 {
		t.Fatalf("X†X deviates from I by %v", d)
	}
	if d := cmplx.Abs(m.Det() - 1); d > 1e-12 {
		t.Fatalf("det X deviates from 1 by %v", d)
	}
}

func TestRandomSU2IsUnitaryUnitDeterminant(t *testing.T) {
	s := rng.NewStream(11)
	for i := 0; i < 200; i++ {
		checkSU2(t, RandomSU2(s))
	}
}

func TestHeatbathSU2IsUnitaryUnitDeterminant(t *testing.T) {
	s := rng.NewStream(13)
	for i := 0; i < 200; i++ {
		checkSU2(t, HeatbathSU2(s, 2.5))
	}
}

func TestRandomSUNIsUnitaryUnitDeterminant(t *testing.T) {
	s := rng.NewStream(17)
	for _, nc := range []int{2, 3, 4} {
		for i := 0; i < 50; i++ {
			m := RandomSUN(s, nc)
			id := IdentityColorMatrix(nc)
			prod := m.Adjoint().Mul(m)
			if d := prod.MaxAbsDiff(id); d > 1e-12 {
				t.Fatalf("nc=%d: U†U deviates from I by %v", nc, d)
			}
			if d := cmplx.Abs(m.Det() - 1); d > 1e-12 {
				t.Fatalf("nc=%d: det deviates from 1 by %v", nc, d)
			}
		}
	}
}

func TestSU2SubgroupPosForNc3(t *testing.T) {
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for k, w := range want {
		i, j, err := SU2SubgroupPos(3, k)
		if err != nil {
			t.Fatalf("SU2SubgroupPos(3, %d): %v", k, err)
		}
		if i != w[0] || j != w[1] {
			t.Fatalf("k=%d: want (%d,%d), got (%d,%d)", k, w[0], w[1], i, j)
		}
	}
}

func TestSU2SubgroupPosRangeError(t *testing.T) {
	if _, _, err := SU2SubgroupPos(3, 3); err == nil {
		t.Fatalf("expected range error for k=3, nc=3")
	}
	if _, _, err := SU2SubgroupPos(3, -1); err == nil {
		t.Fatalf("expected range error for k=-1")
	}
}

func TestExtractInsertRoundTripWithinSubgroup(t *testing.T) {
	s := rng.NewStream(23)
	u := RandomSUN(s, 3)
	for k := 0; k < SU2SubgroupCount(3); k++ {
		r, err := ExtractSU2(u, k)
		if err != nil {
			t.Fatalf("ExtractSU2: %v", err)
		}
		det := r.Det()
		sqrtDet := cmplx.Sqrt(det)
		normalised := r.Scale(1 / sqrtDet)

		i, j, _ := SU2SubgroupPos(3, k)
		inserted, err := InsertSU2(normalised, 3, k)
		if err != nil {
			t.Fatalf("InsertSU2: %v", err)
		}

		pairs := [][2]int{{i, i}, {i, j}, {j, i}, {j, j}}
		for _, p := range pairs {
			got := inserted.At(p[0], p[1])
			want := u.At(p[0], p[1])
			if cmplx.Abs(got-want) > 1e-9 {
				t.Fatalf("subgroup %d entry (%d,%d): want %v, got %v", k, p[0], p[1], want, got)
			}
		}
	}
}

func TestColorMatrixMulAndAdjoint(t *testing.T) {
	a := NewColorMatrix(2)
	a.Set(0, 0, 1)
	a.Set(0, 1, complex(0, 1))
	a.Set(1, 0, 2)
	a.Set(1, 1, 3)

	id := IdentityColorMatrix(2)
	prod := a.Mul(id)
	if prod.MaxAbsDiff(a) > 1e-15 {
		t.Fatalf("A*I should equal A")
	}

	adj := a.Adjoint()
	if got := adj.At(0, 1); got != cmplx.Conj(a.At(1, 0)) {
		t.Fatalf("adjoint mismatch at (0,1): got %v", got)
	}
}
