// Package lattice provides the canonical site-coordinate bijections and
// the generic per-site field container used by every other package in
// this module.
package lattice

import "fmt"

// Layout owns the mapping between a rank-tuple lattice coordinate, a
// canonical (lexicographic) site index, and a storage-order array index.
// A Layout is immutable once constructed.
type Layout struct {
	shape   []int // axis extents, in declared order
	strides []int // strides[i] = product of shape[i+1:]
	volume  int

	// neighbourUp and neighbourDown are both indexed [site*len(shape)+axis]
	// and hold the ±1-shifted neighbour site index along that axis,
	// precomputed once so hot per-link, per-sweep callers never repeat the
	// SiteCoordsOf/Sanitise/SiteIndexOf decomposition Shift performs.
	neighbourUp, neighbourDown []int
}

// NewLayout builds a Layout over the given axis extents. Every extent
// must be positive.
func NewLayout(shape []int) (*Layout, error) {
	if len(shape) < 1 {
		return nil, fmt.Errorf("lattice: layout must have at least one dimension")
	}
	shapeCopy := make([]int, len(shape))
	copy(shapeCopy, shape)
	for i, e := range shapeCopy {
		if e <= 0 {
			return nil, fmt.Errorf("lattice: axis %d extent must be positive, got %d", i, e)
		}
	}

	strides := make([]int, len(shapeCopy))
	stride := 1
	for i := len(shapeCopy) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shapeCopy[i]
	}

	l := &Layout{shape: shapeCopy, strides: strides, volume: stride}

	nd := len(shapeCopy)
	l.neighbourUp = make([]int, l.volume*nd)
	l.neighbourDown = make([]int, l.volume*nd)
	for site := 0; site < l.volume; site++ {
		coords := l.SiteCoordsOf(site)
		for axis := 0; axis < nd; axis++ {
			up := append([]int(nil), coords...)
			up[axis]++
			up = l.Sanitise(up)
			l.neighbourUp[site*nd+axis] = l.SiteIndexOf(up)

			down := append([]int(nil), coords...)
			down[axis]--
			down = l.Sanitise(down)
			l.neighbourDown[site*nd+axis] = l.SiteIndexOf(down)
		}
	}

	return l, nil
}

// NumDims returns the rank of the layout.
func (l *Layout) NumDims() int { return len(l.shape) }

// Volume returns the total number of sites.
func (l *Layout) Volume() int { return l.volume }

// Shape returns a copy of the axis extents.
func (l *Layout) Shape() []int {
	out := make([]int, len(l.shape))
	copy(out, l.shape)
	return out
}

// Extent returns the extent of a single axis.
func (l *Layout) Extent(axis int) int { return l.shape[axis] }

// SiteCoordsOf decomposes a canonical site index into its rank-tuple
// coordinate via mixed-radix decomposition in declared axis order.
func (l *Layout) SiteCoordsOf(siteIndex int) []int {
	coords := make([]int, len(l.shape))
	rem := siteIndex
	for i, stride := range l.strides {
		coords[i] = rem / stride
		rem -= coords[i] * stride
	}
	return coords
}

// SiteIndexOf is the inverse of SiteCoordsOf. Behaviour is undefined
// unless every component of coords lies within [0, extent); callers
// sanitise first.
func (l *Layout) SiteIndexOf(coords []int) int {
	index := 0
	for i, stride := range l.strides {
		index += coords[i] * stride
	}
	return index
}

// ArrayIndexOf maps a canonical site index to the storage-order array
// index. The baseline layout is lexicographic, so this is the identity.
func (l *Layout) ArrayIndexOf(siteIndex int) int { return siteIndex }

// SiteIndexOfArray is the inverse of ArrayIndexOf.
func (l *Layout) SiteIndexOfArray(arrayIndex int) int { return arrayIndex }

// Sanitise reduces each coordinate component modulo its axis extent,
// using mathematical modulo (always non-negative) rather than Go's
// truncating remainder, so that signed inputs wrap correctly.
func (l *Layout) Sanitise(coords []int) []int {
	out := make([]int, len(coords))
	for i, c := range coords {
		e := l.shape[i]
		m := c % e
		if m < 0 {
			m += e
		}
		out[i] = m
	}
	return out
}

// Shift returns the array index of the site reached by moving delta
// steps along axis from siteIndex, wrapping periodically. delta may be
// negative.
func (l *Layout) Shift(siteIndex, axis, delta int) int {
	coords := l.SiteCoordsOf(siteIndex)
	coords[axis] += delta
	coords = l.Sanitise(coords)
	return l.ArrayIndexOf(l.SiteIndexOf(coords))
}

// NeighbourUp returns the array index of the site one step forward from
// siteIndex along axis, wrapping periodically. Backed by a table built
// once in NewLayout, so repeated calls cost a single slice lookup rather
// than a coordinate decomposition.
func (l *Layout) NeighbourUp(siteIndex, axis int) int {
	return l.neighbourUp[siteIndex*len(l.shape)+axis]
}

// NeighbourDown returns the array index of the site one step backward
// from siteIndex along axis, wrapping periodically. Backed by the same
// precomputed table as NeighbourUp.
func (l *Layout) NeighbourDown(siteIndex, axis int) int {
	return l.neighbourDown[siteIndex*len(l.shape)+axis]
}
