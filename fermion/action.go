package fermion

import (
	"fmt"
	"math"
	"math/cmplx"

	"pyqcd/group"
)

// Action is the polymorphic fermion operator contract: applying the
// full operator M, and applying (and undoing) the γ5-hermiticity
// transform a γ5-Hermitian M satisfies (M† = γ5 M γ5), which the
// conjugate-gradient solver uses to form M† without the action
// exposing an adjoint of its own.
type Action interface {
	ApplyFull(out, in *SpinorField) error
	ApplyHermiticity(x *SpinorField) error
	RemoveHermiticity(x *SpinorField) error
}

// Wilson is the Wilson fermion action:
//
//	M·in = (4+m)·in - (1/2)·H·in
//
// where H is the nearest-neighbour hopping stencil built from the link
// field, the bare mass m, and per-axis boundary twist fractions (a
// twist fraction of 0 reproduces periodic boundaries; twisted
// boundaries are an extension point, following the phase convention of
// the original hopping matrix).
type Wilson struct {
	mass   float64
	hop    *HoppingMatrix
	ns, nc int
}

// NewWilson builds a Wilson fermion action over field at the given bare
// mass. twistFractions, if non-nil, must have one entry per axis; axis
// d's boundary links pick up a phase exp(2πi·twistFractions[d]). A nil
// slice is equivalent to all-zero fractions, i.e. periodic boundaries.
func NewWilson(mass float64, field *group.LinkField, twistFractions []float64) (*Wilson, error) {
	nd := field.SiteSize()
	if nd != 4 {
		return nil, fmt.Errorf("fermion: wilson action requires a 4-dimensional lattice, got %d axes", nd)
	}
	if twistFractions != nil && len(twistFractions) != nd {
		return nil, fmt.Errorf("fermion: wilson action requires one twist fraction per axis, got %d for %d axes", len(twistFractions), nd)
	}

	phases := make([]complex128, nd)
	for d := 0; d < nd; d++ {
		frac := 0.0
		if twistFractions != nil {
			frac = twistFractions[d]
		}
		phases[d] = cmplx.Exp(complex(0, 2*math.Pi*frac))
	}

	gammaPlus, gammaMinus := WilsonGammaProjectors(nd)
	hop, err := NewHoppingMatrixWithSpinStructures(field, phases, gammaPlus, gammaMinus)
	if err != nil {
		return nil, err
	}

	nc := field.At(0, 0).Nc()
	return &Wilson{mass: mass, hop: hop, ns: hop.NumSpins(), nc: nc}, nil
}

// Mass returns the bare mass m.
func (w *Wilson) Mass() float64 { return w.mass }

// ApplyFull computes out = [(4+m)·I - (1/2)·H]·in.
func (w *Wilson) ApplyFull(out, in *SpinorField) error {
	hopped, err := NewSpinorField(in.Layout(), w.ns, w.nc)
	if err != nil {
		return err
	}
	if err := w.hop.ApplyFull(hopped, in); err != nil {
		return err
	}

	coef := complex(4+w.mass, 0)
	ro, ri, rh := out.Raw(), in.Raw(), hopped.Raw()
	for idx := range ro {
		ro[idx] = coef*ri[idx] - 0.5*rh[idx]
	}
	return nil
}

// ApplyHermiticity applies γ5 in spin space, in place: x ← γ5·x.
func (w *Wilson) ApplyHermiticity(x *SpinorField) error {
	return applyGamma5(x)
}

// RemoveHermiticity undoes ApplyHermiticity. γ5²=I, so this is the same
// transform.
func (w *Wilson) RemoveHermiticity(x *SpinorField) error {
	return applyGamma5(x)
}

// applyGamma5 multiplies x's spin index by γ5 = diag(1,1,-1,-1) at every
// site and colour, in place.
func applyGamma5(x *SpinorField) error {
	if x.NumSpins() != 4 {
		return fmt.Errorf("fermion: gamma5 requires ns=4, got %d", x.NumSpins())
	}
	volume := x.Layout().Volume()
	nc := x.NumColors()
	for site := 0; site < volume; site++ {
		for c := 0; c < nc; c++ {
			x.Set(site, 2, c, -x.At(site, 2, c))
			x.Set(site, 3, c, -x.At(site, 3, c))
		}
	}
	return nil
}
