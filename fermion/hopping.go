package fermion

import (
	"fmt"

	"pyqcd/group"
	"pyqcd/lattice"
)

// HoppingMatrix is the precomputed nearest-neighbour stencil term of a
// fermion discretisation, excluding the on-site mass. It borrows the
// link field only at construction, to materialise the "scattered" gauge
// field (links indexed by (site, signed direction)) and the neighbour
// table; after that it depends only on those derived, read-only
// structures, flat and contiguous rather than slice-of-slices so the
// hot loops in ApplyFull walk a single backing array.
type HoppingMatrix struct {
	layout *lattice.Layout
	nd, nc, ns, hops int

	// scattered and neighbours are both indexed [site*2*nd + 2*d +
	// signed], signed=0 forward, signed=1 backward.
	scattered  []*group.ColorMatrix
	neighbours []int

	// gammaPlus[d], gammaMinus[d] are the Ns×Ns spin projectors Γ⁺_d,
	// Γ⁻_d. Data, not code: injected after construction.
	gammaPlus, gammaMinus []*group.ColorMatrix
}

// NewHoppingMatrix builds a HoppingMatrix with H=1 hops, the typical
// case.
func NewHoppingMatrix(field *group.LinkField, phases []complex128) (*HoppingMatrix, error) {
	return NewHoppingMatrixWithHops(field, phases, 1)
}

// NewHoppingMatrixWithSpinStructures builds a HoppingMatrix with H=1
// hops and immediately injects the spin projectors.
func NewHoppingMatrixWithSpinStructures(
	field *group.LinkField, phases []complex128, gammaPlus, gammaMinus []*group.ColorMatrix,
) (*HoppingMatrix, error) {
	hm, err := NewHoppingMatrix(field, phases)
	if err != nil {
		return nil, err
	}
	if err := hm.SetSpinStructures(gammaPlus, gammaMinus); err != nil {
		return nil, err
	}
	return hm, nil
}

// NewHoppingMatrixWithHops builds a HoppingMatrix with an explicit
// number of hops H.
func NewHoppingMatrixWithHops(field *group.LinkField, phases []complex128, hops int) (*HoppingMatrix, error) {
	if field == nil {
		return nil, fmt.Errorf("fermion: hopping matrix requires a non-nil link field")
	}
	nd := field.SiteSize()
	if len(phases) != nd {
		return nil, fmt.Errorf("fermion: hopping matrix requires one phase per axis, got %d for %d axes", len(phases), nd)
	}
	if hops < 1 {
		return nil, fmt.Errorf("fermion: hopping matrix requires hops>=1, got %d", hops)
	}

	layout := field.Layout()
	volume := layout.Volume()
	nc := field.At(0, 0).Nc()
	ns := 1 << (nd / 2)

	scattered := make([]*group.ColorMatrix, volume*2*nd)
	neighbours := make([]int, volume*2*nd)

	for site := 0; site < volume; site++ {
		coords := layout.SiteCoordsOf(site)
		for d := 0; d < nd; d++ {
			extent := layout.Extent(d)
			c := coords[d]

			phiFwd := complex128(1)
			if c+hops >= extent {
				phiFwd = phases[d]
			}
			phiBwd := complex128(1)
			if c < hops {
				phiBwd = phases[d]
			}

			fwd := group.IdentityColorMatrix(nc).Scale(phiFwd)
			cur := site
			for h := 0; h < hops; h++ {
				fwd = fwd.Mul(field.At(cur, d))
				cur = layout.NeighbourUp(cur, d)
			}
			neighFwd := cur

			bwd := group.IdentityColorMatrix(nc).Scale(phiBwd)
			cur = site
			for h := 0; h < hops; h++ {
				cur = layout.NeighbourDown(cur, d)
			}
			neighBwd := cur
			for h := 0; h < hops; h++ {
				bwd = bwd.Mul(field.At(cur, d))
				cur = layout.NeighbourUp(cur, d)
			}

			idxFwd := site*2*nd + 2*d
			idxBwd := idxFwd + 1
			scattered[idxFwd] = fwd
			scattered[idxBwd] = bwd
			neighbours[idxFwd] = neighFwd
			neighbours[idxBwd] = neighBwd
		}
	}

	return &HoppingMatrix{
		layout:     layout,
		nd:         nd,
		nc:         nc,
		ns:         ns,
		hops:       hops,
		scattered:  scattered,
		neighbours: neighbours,
	}, nil
}

// SetSpinStructures injects the Dirac γ-projectors, one Γ⁺ and one Γ⁻
// per axis. Each matrix must be Ns×Ns.
func (hm *HoppingMatrix) SetSpinStructures(gammaPlus, gammaMinus []*group.ColorMatrix) error {
	if len(gammaPlus) != hm.nd || len(gammaMinus) != hm.nd {
		return fmt.Errorf("fermion: expected %d spin structures per slot, got %d/%d", hm.nd, len(gammaPlus), len(gammaMinus))
	}
	for d := 0; d < hm.nd; d++ {
		if gammaPlus[d].Nc() != hm.ns || gammaMinus[d].Nc() != hm.ns {
			return fmt.Errorf("fermion: spin structure at axis %d must be %d×%d", d, hm.ns, hm.ns)
		}
	}
	hm.gammaPlus = gammaPlus
	hm.gammaMinus = gammaMinus
	return nil
}

// NumSpins returns Ns = 2^(Nd/2).
func (hm *HoppingMatrix) NumSpins() int { return hm.ns }

// ApplyFull computes out = H*in, the nearest-neighbour stencil term: a
// matrix-vector partial-product phase, indexed by source site, followed
// by a neighbour-dependent scatter phase. This separation keeps the
// heavy colour-matrix multiplication local while confining the
// neighbour-dependent memory traffic to a second, simpler pass.
func (hm *HoppingMatrix) ApplyFull(out, in *SpinorField) error {
	if hm.gammaPlus == nil {
		return fmt.Errorf("fermion: hopping matrix apply_full called before set_spin_structures")
	}
	if in.Layout().Volume() != hm.layout.Volume() || in.NumSpins() != hm.ns || in.NumColors() != hm.nc {
		return fmt.Errorf("fermion: hopping matrix apply_full shape mismatch")
	}
	if out.Layout().Volume() != hm.layout.Volume() || out.NumSpins() != hm.ns || out.NumColors() != hm.nc {
		return fmt.Errorf("fermion: hopping matrix apply_full shape mismatch")
	}

	volume := hm.layout.Volume()
	nd, ns, nc := hm.nd, hm.ns, hm.nc
	partialFwd := make([]complex128, volume*nd*ns*nc)
	partialBwd := make([]complex128, volume*nd*ns*nc)

	vFwd := make([]complex128, nc)
	vBwd := make([]complex128, nc)

	for site := 0; site < volume; site++ {
		for d := 0; d < nd; d++ {
			idxFwd := site*2*nd + 2*d
			idxBwd := idxFwd + 1
			ufwd := hm.scattered[idxFwd]
			ubwdAdj := hm.scattered[idxBwd].Adjoint()
			gp := hm.gammaPlus[d]
			gm := hm.gammaMinus[d]
			base := (site*nd + d) * ns * nc

			for beta := 0; beta < ns; beta++ {
				for row := 0; row < nc; row++ {
					var sFwd, sBwd complex128
					for col := 0; col < nc; col++ {
						v := in.At(site, beta, col)
						sFwd += ufwd.At(row, col) * v
						sBwd += ubwdAdj.At(row, col) * v
					}
					vFwd[row] = sFwd
					vBwd[row] = sBwd
				}

				for alpha := 0; alpha < ns; alpha++ {
					gpVal := gp.At(alpha, beta)
					gmVal := gm.At(alpha, beta)
					if gpVal == 0 && gmVal == 0 {
						continue
					}
					off := base + alpha*nc
					for row := 0; row < nc; row++ {
						if gpVal != 0 {
							partialFwd[off+row] += gpVal * vFwd[row]
						}
						if gmVal != 0 {
							partialBwd[off+row] += gmVal * vBwd[row]
						}
					}
				}
			}
		}
	}

	out.ZeroOut()
	for site := 0; site < volume; site++ {
		for d := 0; d < nd; d++ {
			idxFwd := site*2*nd + 2*d
			idxBwd := idxFwd + 1
			neighFwd := hm.neighbours[idxFwd]
			neighBwd := hm.neighbours[idxBwd]
			base := (site*nd + d) * ns * nc

			for alpha := 0; alpha < ns; alpha++ {
				off := base + alpha*nc
				for row := 0; row < nc; row++ {
					out.Add(neighFwd, alpha, row, partialFwd[off+row])
					out.Add(neighBwd, alpha, row, partialBwd[off+row])
				}
			}
		}
	}
	return nil
}
