package fermion

import (
	"math"
	"testing"

	"pyqcd/lattice"
)

func newTestLayout(t *testing.T) *lattice.Layout {
	t.Helper()
	layout, err := lattice.NewLayout([]int{2, 2, 2, 2})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return layout
}

func TestNewSpinorFieldRejectsNonPositiveShape(t *testing.T) {
	layout := newTestLayout(t)
	if _, err := NewSpinorField(layout, 0, 3); err == nil {
		t.Fatalf("expected error for ns=0")
	}
	if _, err := NewSpinorField(layout, 4, 0); err == nil {
		t.Fatalf("expected error for nc=0")
	}
}

func TestSpinorFieldAtSetAddRoundTrip(t *testing.T) {
	layout := newTestLayout(t)
	s, err := NewSpinorField(layout, 4, 3)
	if err != nil {
		t.Fatalf("NewSpinorField: %v", err)
	}
	s.Set(5, 2, 1, complex(3, -4))
	if got := s.At(5, 2, 1); got != complex(3, -4) {
		t.Fatalf("At = %v, want 3-4i", got)
	}
	s.Add(5, 2, 1, complex(1, 1))
	if got := s.At(5, 2, 1); got != complex(4, -3) {
		t.Fatalf("At after Add = %v, want 4-3i", got)
	}
}

func TestSpinorFieldZeroOut(t *testing.T) {
	layout := newTestLayout(t)
	s, _ := NewSpinorField(layout, 4, 3)
	s.Set(0, 0, 0, complex(1, 1))
	s.ZeroOut()
	for _, v := range s.Raw() {
		if v != 0 {
			t.Fatalf("expected all-zero field after ZeroOut, got %v", v)
		}
	}
}

func TestSpinorFieldCloneIsIndependent(t *testing.T) {
	layout := newTestLayout(t)
	s, _ := NewSpinorField(layout, 4, 3)
	s.Set(0, 0, 0, complex(1, 0))
	clone := s.CloneSpinor()
	clone.Set(0, 0, 0, complex(9, 0))
	if s.At(0, 0, 0) != complex(1, 0) {
		t.Fatalf("mutating clone affected original")
	}
}

func TestInnerProductConjugatesFirstArgument(t *testing.T) {
	layout := newTestLayout(t)
	a, _ := NewSpinorField(layout, 4, 3)
	b, _ := NewSpinorField(layout, 4, 3)
	a.Set(0, 0, 0, complex(0, 1))
	b.Set(0, 0, 0, complex(1, 0))

	got, err := InnerProduct(a, b)
	if err != nil {
		t.Fatalf("InnerProduct: %v", err)
	}
	want := complex(0, -1)
	if got != want {
		t.Fatalf("InnerProduct = %v, want %v", got, want)
	}
}

func TestInnerProductShapeMismatch(t *testing.T) {
	layout := newTestLayout(t)
	a, _ := NewSpinorField(layout, 4, 3)
	b, _ := NewSpinorField(layout, 4, 2)
	if _, err := InnerProduct(a, b); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}

func TestNormSquaredMatchesManualSum(t *testing.T) {
	layout := newTestLayout(t)
	a, _ := NewSpinorField(layout, 4, 3)
	a.Set(0, 0, 0, complex(3, 4))
	if got, want := NormSquared(a), 25.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("NormSquared = %v, want %v", got, want)
	}
}

func TestAXPYAccumulatesInPlace(t *testing.T) {
	layout := newTestLayout(t)
	dst, _ := NewSpinorField(layout, 4, 3)
	x, _ := NewSpinorField(layout, 4, 3)
	dst.Set(0, 0, 0, complex(1, 0))
	x.Set(0, 0, 0, complex(2, 0))

	if err := AXPY(dst, complex(3, 0), x); err != nil {
		t.Fatalf("AXPY: %v", err)
	}
	if got, want := dst.At(0, 0, 0), complex(7, 0); got != want {
		t.Fatalf("AXPY result = %v, want %v", got, want)
	}
}

func TestScaleAddOverwritesDestination(t *testing.T) {
	layout := newTestLayout(t)
	dst, _ := NewSpinorField(layout, 4, 3)
	x, _ := NewSpinorField(layout, 4, 3)
	y, _ := NewSpinorField(layout, 4, 3)
	x.Set(0, 0, 0, complex(1, 0))
	y.Set(0, 0, 0, complex(2, 0))

	if err := ScaleAdd(dst, x, complex(5, 0), y); err != nil {
		t.Fatalf("ScaleAdd: %v", err)
	}
	if got, want := dst.At(0, 0, 0), complex(11, 0); got != want {
		t.Fatalf("ScaleAdd result = %v, want %v", got, want)
	}
}
