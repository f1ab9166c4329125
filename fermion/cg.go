package fermion

import (
	"fmt"
	"math"
)

// applyAdjoint computes out = M†·in for a γ5-Hermitian action (M† =
// γ5 M γ5), without requiring the action to expose an adjoint directly.
func applyAdjoint(action Action, out, in *SpinorField) error {
	tmp := in.CloneSpinor()
	if err := action.ApplyHermiticity(tmp); err != nil {
		return err
	}
	if err := action.ApplyFull(out, tmp); err != nil {
		return err
	}
	return action.ApplyHermiticity(out)
}

// ConjugateGradient solves M†M·x = M†·rhs for x, where M is supplied
// only through action's ApplyFull/ApplyHermiticity contract. It starts
// from x=0 and iterates until the residual norm falls to tol times the
// right-hand side's norm, or maxIter iterations are exhausted.
//
// If the initial residual r0=M†·rhs is exactly zero (in particular if
// rhs is the zero field), the solver returns the zero solution
// immediately with iteration count 1.
func ConjugateGradient(action Action, rhs *SpinorField, maxIter int, tol float64) (*SpinorField, float64, int, error) {
	if tol <= 0 {
		return nil, 0, 0, fmt.Errorf("fermion: cg tolerance must be positive, got %v", tol)
	}
	if maxIter < 1 {
		return nil, 0, 0, fmt.Errorf("fermion: cg max_iter must be positive, got %d", maxIter)
	}

	layout := rhs.Layout()
	ns, nc := rhs.NumSpins(), rhs.NumColors()

	x, err := NewSpinorField(layout, ns, nc)
	if err != nil {
		return nil, 0, 0, err
	}

	r, err := NewSpinorField(layout, ns, nc)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := applyAdjoint(action, r, rhs); err != nil {
		return nil, 0, 0, err
	}

	bNormSq := NormSquared(rhs)
	rNormSq := NormSquared(r)
	if rNormSq == 0 {
		return x, 0, 1, nil
	}

	p := r.CloneSpinor()
	t, err := NewSpinorField(layout, ns, nc)
	if err != nil {
		return nil, 0, 0, err
	}
	q, err := NewSpinorField(layout, ns, nc)
	if err != nil {
		return nil, 0, 0, err
	}

	threshold := tol * tol * bNormSq
	if threshold == 0 {
		threshold = tol * tol
	}

	for k := 0; k < maxIter; k++ {
		if err := action.ApplyFull(t, p); err != nil {
			return nil, 0, 0, err
		}
		if err := applyAdjoint(action, q, t); err != nil {
			return nil, 0, 0, err
		}

		pq, err := InnerProduct(p, q)
		if err != nil {
			return nil, 0, 0, err
		}
		alpha := complex(rNormSq, 0) / pq

		if err := AXPY(x, alpha, p); err != nil {
			return nil, 0, 0, err
		}

		rNext := r.CloneSpinor()
		if err := AXPY(rNext, -alpha, q); err != nil {
			return nil, 0, 0, err
		}

		rNextNormSq := NormSquared(rNext)
		if rNextNormSq <= threshold {
			return x, math.Sqrt(rNextNormSq), k + 1, nil
		}

		betaCG := rNextNormSq / rNormSq
		newP := rNext.CloneSpinor()
		if err := AXPY(newP, complex(betaCG, 0), p); err != nil {
			return nil, 0, 0, err
		}

		p = newP
		r = rNext
		rNormSq = rNextNormSq
	}

	return x, math.Sqrt(rNormSq), maxIter, nil
}
