// Package fermion implements the nearest-neighbour hopping stencil, the
// Wilson fermion action built from it, and the conjugate-gradient solver
// that inverts a self-adjoint fermion operator supplied only through the
// Action contract.
package fermion

import (
	"fmt"

	"pyqcd/lattice"
)

// SpinorField holds Ns spin components per site, each a length-Nc colour
// vector over ℂ, flattened per site as offset = spin*Nc + colour.
type SpinorField struct {
	*lattice.Field[complex128]
	ns, nc int
}

// NewSpinorField allocates a zero spinor field over layout with ns spin
// components and nc colour components per site.
func NewSpinorField(layout *lattice.Layout, ns, nc int) (*SpinorField, error) {
	if ns < 1 || nc < 1 {
		return nil, fmt.Errorf("fermion: spinor field requires ns>=1 and nc>=1, got ns=%d nc=%d", ns, nc)
	}
	f, err := lattice.NewField(layout, complex128(0), ns*nc)
	if err != nil {
		return nil, err
	}
	return &SpinorField{Field: f, ns: ns, nc: nc}, nil
}

// NumSpins returns Ns.
func (s *SpinorField) NumSpins() int { return s.ns }

// NumColors returns Nc.
func (s *SpinorField) NumColors() int { return s.nc }

func (s *SpinorField) offset(spin, colour int) int { return spin*s.nc + colour }

// At returns the component at (site, spin, colour).
func (s *SpinorField) At(site, spin, colour int) complex128 {
	return s.Field.At(site, s.offset(spin, colour))
}

// Set overwrites the component at (site, spin, colour).
func (s *SpinorField) Set(site, spin, colour int, v complex128) {
	s.Field.Set(site, s.offset(spin, colour), v)
}

// Add accumulates v into the component at (site, spin, colour).
func (s *SpinorField) Add(site, spin, colour int, v complex128) {
	cur := s.At(site, spin, colour)
	s.Set(site, spin, colour, cur+v)
}

// ZeroOut resets every component to 0 in place.
func (s *SpinorField) ZeroOut() {
	raw := s.Raw()
	for i := range raw {
		raw[i] = 0
	}
}

// CloneSpinor returns a deep copy sharing no backing storage.
func (s *SpinorField) CloneSpinor() *SpinorField {
	return &SpinorField{Field: s.Field.Clone(), ns: s.ns, nc: s.nc}
}

// sameShape reports whether a and b share a lattice volume, Ns, and Nc.
func sameShape(a, b *SpinorField) bool {
	return a.ns == b.ns && a.nc == b.nc && a.Layout().Volume() == b.Layout().Volume()
}

// InnerProduct returns ⟨a,b⟩ = Σ conj(a_i)*b_i, the complex conjugate
// always taken over the first argument, accumulated in float64 working
// precision.
func InnerProduct(a, b *SpinorField) (complex128, error) {
	if !sameShape(a, b) {
		return 0, fmt.Errorf("fermion: inner product shape mismatch")
	}
	var sum complex128
	ra, rb := a.Raw(), b.Raw()
	for i := range ra {
		sum += cmplxConj(ra[i]) * rb[i]
	}
	return sum, nil
}

// NormSquared returns ⟨a,a⟩.real, the squared norm used by the CG
// convergence test.
func NormSquared(a *SpinorField) float64 {
	var sum float64
	for _, v := range a.Raw() {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return sum
}

// AXPY computes dst = dst + alpha*x in place.
func AXPY(dst *SpinorField, alpha complex128, x *SpinorField) error {
	if !sameShape(dst, x) {
		return fmt.Errorf("fermion: axpy shape mismatch")
	}
	rd, rx := dst.Raw(), x.Raw()
	for i := range rd {
		rd[i] += alpha * rx[i]
	}
	return nil
}

// ScaleAdd computes dst = x + alpha*y in place, overwriting dst (which
// may alias x but not y).
func ScaleAdd(dst, x *SpinorField, alpha complex128, y *SpinorField) error {
	if !sameShape(dst, x) || !sameShape(dst, y) {
		return fmt.Errorf("fermion: scale-add shape mismatch")
	}
	rd, rx, ry := dst.Raw(), x.Raw(), y.Raw()
	for i := range rd {
		rd[i] = rx[i] + alpha*ry[i]
	}
	return nil
}

func cmplxConj(v complex128) complex128 { return complex(real(v), -imag(v)) }
