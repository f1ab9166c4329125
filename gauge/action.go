// Package gauge implements the Wilson-style gauge action, its staple
// computation, and the pseudo-heatbath link updater.
package gauge

import (
	"fmt"

	"pyqcd/group"
	"pyqcd/lattice"
)

// LinkField is a link field: Nd colour matrices per site, one per
// direction, addressed as field.At(site, direction). Re-exported from
// package group, which owns the type so that neither gauge nor fermion
// has to depend on the other.
type LinkField = group.LinkField

// NewIdentityLinkField allocates a link field over layout with nd
// directions per site and nc×nc colour matrices, every link set to the
// identity.
func NewIdentityLinkField(layout *lattice.Layout, nd, nc int) (*LinkField, error) {
	return group.NewIdentityLinkField(layout, nd, nc)
}

// LinkIndex encodes a (site, direction) pair as a single integer:
// link_index = site_index*Nd + direction.
func LinkIndex(siteIndex, direction, nd int) int { return siteIndex*nd + direction }

// SiteOf and DirOf decode a link index produced by LinkIndex.
func SiteOf(linkIndex, nd int) int { return linkIndex / nd }
func DirOf(linkIndex, nd int) int  { return linkIndex % nd }

// Action is the polymorphic gauge-action contract: a coupling and a
// staple computation for a given link.
type Action interface {
	// Beta returns the inverse coupling β.
	Beta() float64
	// ComputeStaples returns the sum of staples weighting the link at
	// linkIndex.
	ComputeStaples(field *LinkField, linkIndex int) *group.ColorMatrix
}

// link returns the colour matrix stored at the given (site, direction).
func link(field *LinkField, site, dir int) *group.ColorMatrix { return field.At(site, dir) }

// requirePositiveBeta is shared by every concrete Action constructor.
func requirePositiveBeta(beta float64) error {
	if beta <= 0 {
		return fmt.Errorf("gauge: beta must be positive, got %v", beta)
	}
	return nil
}

// plaquetteStaples returns the up- and down-staple contribution of the
// μ-ν plaquette to the link U_μ(site):
//
//	up   = U_ν(x+μ̂)   U_μ(x+ν̂)†  U_ν(x)†
//	down = U_ν(x+μ̂-ν̂)† U_μ(x-ν̂)†  U_ν(x-ν̂)
func plaquetteStaples(field *LinkField, layout *lattice.Layout, site, mu, nu int) *group.ColorMatrix {
	xPlusMu := layout.NeighbourUp(site, mu)
	xPlusNu := layout.NeighbourUp(site, nu)
	xMinusNu := layout.NeighbourDown(site, nu)
	xPlusMuMinusNu := layout.NeighbourDown(xPlusMu, nu)

	up := link(field, xPlusMu, nu).
		Mul(link(field, xPlusNu, mu).Adjoint()).
		Mul(link(field, site, nu).Adjoint())

	down := link(field, xPlusMuMinusNu, nu).Adjoint().
		Mul(link(field, xMinusNu, mu).Adjoint()).
		Mul(link(field, xMinusNu, nu))

	return up.Add(down)
}
