package fermion

import (
	"testing"

	"pyqcd/gauge"
	"pyqcd/lattice"
)

func TestNewWilsonRejectsNonFourDimensionalLattice(t *testing.T) {
	layout, err := lattice.NewLayout([]int{4, 4, 4})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	field, _ := gauge.NewIdentityLinkField(layout, 3, 3)
	if _, err := NewWilson(0.1, field, nil); err == nil {
		t.Fatalf("expected error for a 3-dimensional lattice")
	}
}

func TestNewWilsonRejectsTwistFractionLengthMismatch(t *testing.T) {
	layout, _ := lattice.NewLayout([]int{2, 2, 2, 2})
	field, _ := gauge.NewIdentityLinkField(layout, 4, 3)
	if _, err := NewWilson(0.1, field, []float64{0, 0}); err == nil {
		t.Fatalf("expected error for mismatched twist fraction count")
	}
}

func TestWilsonApplyFullIsLinear(t *testing.T) {
	layout, _ := lattice.NewLayout([]int{3, 3, 3, 3})
	field, _ := gauge.NewIdentityLinkField(layout, 4, 2)
	action, err := NewWilson(0.1, field, nil)
	if err != nil {
		t.Fatalf("NewWilson: %v", err)
	}

	x, _ := NewSpinorField(layout, 4, 2)
	y, _ := NewSpinorField(layout, 4, 2)
	x.Set(1, 0, 0, complex(1, 2))
	y.Set(2, 1, 1, complex(-1, 3))

	combo, _ := NewSpinorField(layout, 4, 2)
	ScaleAdd(combo, x, complex(2, 0), y)

	outX, _ := NewSpinorField(layout, 4, 2)
	outY, _ := NewSpinorField(layout, 4, 2)
	outCombo, _ := NewSpinorField(layout, 4, 2)
	if err := action.ApplyFull(outX, x); err != nil {
		t.Fatalf("ApplyFull(x): %v", err)
	}
	if err := action.ApplyFull(outY, y); err != nil {
		t.Fatalf("ApplyFull(y): %v", err)
	}
	if err := action.ApplyFull(outCombo, combo); err != nil {
		t.Fatalf("ApplyFull(combo): %v", err)
	}

	want, _ := NewSpinorField(layout, 4, 2)
	ScaleAdd(want, outX, complex(2, 0), outY)

	rc, rw := outCombo.Raw(), want.Raw()
	for i := range rc {
		diff := rc[i] - rw[i]
		if re, im := real(diff), imag(diff); re*re+im*im > 1e-18 {
			t.Fatalf("linearity violated at index %d: %v vs %v", i, rc[i], rw[i])
		}
	}
}

func TestWilsonApplyHermiticityIsAnInvolution(t *testing.T) {
	layout, _ := lattice.NewLayout([]int{2, 2, 2, 2})
	field, _ := gauge.NewIdentityLinkField(layout, 4, 3)
	action, err := NewWilson(0.1, field, nil)
	if err != nil {
		t.Fatalf("NewWilson: %v", err)
	}

	x, _ := NewSpinorField(layout, 4, 3)
	x.Set(0, 1, 2, complex(2, -1))
	x.Set(5, 3, 0, complex(0, 4))

	original := x.CloneSpinor()
	if err := action.ApplyHermiticity(x); err != nil {
		t.Fatalf("ApplyHermiticity: %v", err)
	}
	if err := action.RemoveHermiticity(x); err != nil {
		t.Fatalf("RemoveHermiticity: %v", err)
	}

	ro, rx := original.Raw(), x.Raw()
	for i := range ro {
		if ro[i] != rx[i] {
			t.Fatalf("hermiticity round trip failed at index %d: %v vs %v", i, rx[i], ro[i])
		}
	}
}

func TestWilsonApplyFullOnZeroFieldIsZero(t *testing.T) {
	layout, _ := lattice.NewLayout([]int{2, 2, 2, 2})
	field, _ := gauge.NewIdentityLinkField(layout, 4, 3)
	action, err := NewWilson(0.1, field, nil)
	if err != nil {
		t.Fatalf("NewWilson: %v", err)
	}

	in, _ := NewSpinorField(layout, 4, 3)
	out, _ := NewSpinorField(layout, 4, 3)
	if err := action.ApplyFull(out, in); err != nil {
		t.Fatalf("ApplyFull: %v", err)
	}
	for _, v := range out.Raw() {
		if v != 0 {
			t.Fatalf("expected zero output for zero input, got %v", v)
		}
	}
}
