package gauge

import "pyqcd/group"

// pathStep is one edge of a loop traversal used to build rectangle
// staples: a move along axis in direction dir (+1 forward, -1
// backward), multiplying in the forward link or the adjoint of the
// backward link encountered along the way.
type pathStep struct {
	axis int
	dir  int
}

// walkPath multiplies in the link (or its adjoint, for backward steps)
// encountered at each step of path, starting at site, and returns the
// accumulated product.
func walkPath(field *LinkField, layout LinkFieldLayout, site int, path []pathStep) *group.ColorMatrix {
	nc := link(field, site, 0).Nc()
	result := group.IdentityColorMatrix(nc)
	cur := site
	for _, st := range path {
		if st.dir > 0 {
			result = result.Mul(link(field, cur, st.axis))
			cur = layout.Shift(cur, st.axis, 1)
		} else {
			cur = layout.Shift(cur, st.axis, -1)
			result = result.Mul(link(field, cur, st.axis).Adjoint())
		}
	}
	return result
}

// LinkFieldLayout is the subset of *lattice.Layout rectangleStaples
// needs; declared as an alias so this file does not have to import
// lattice directly just for the Shift method's receiver type.
type LinkFieldLayout = interface {
	Shift(siteIndex, axis, delta int) int
}

// rectangleStaples returns the sum of the four 2x1/1x2 rectangle staples
// in the μ-ν plane that contribute to the link U_μ(site), built by
// walking each rectangle's boundary with walkPath.
func rectangleStaples(field *LinkField, layout LinkFieldLayout, site, mu, nu int) *group.ColorMatrix {
	start := layout.Shift(site, mu, 1)

	wide := []pathStep{{mu, +1}, {nu, +1}, {mu, -1}, {mu, -1}, {nu, -1}}
	wideDown := []pathStep{{mu, +1}, {nu, -1}, {mu, -1}, {mu, -1}, {nu, +1}}
	tall := []pathStep{{nu, +1}, {nu, +1}, {mu, -1}, {nu, -1}, {nu, -1}}
	tallDown := []pathStep{{nu, -1}, {nu, -1}, {mu, -1}, {nu, +1}, {nu, +1}}

	sum := walkPath(field, layout, start, wide)
	sum = sum.Add(walkPath(field, layout, start, wideDown))
	sum = sum.Add(walkPath(field, layout, start, tall))
	sum = sum.Add(walkPath(field, layout, start, tallDown))
	return sum
}

// Rectangle is the rectangle-improved gauge action: the Wilson plaquette
// staple scaled by c0, plus the four 2x1/1x2 rectangle staples scaled by
// c1, summed over every direction perpendicular to the link. Tree-level
// Symanzik improvement takes c0+8*c1=1 (original_source/lib's
// Lattice::computeRectangleStaples uses an explicit coefficient pair
// rather than hard-coding that relation); this type follows suit and
// leaves the relation to the caller.
type Rectangle struct {
	beta   float64
	c0, c1 float64
}

// NewRectangle constructs a Rectangle action at inverse coupling beta
// with plaquette/rectangle coefficients c0, c1. beta must be positive.
func NewRectangle(beta, c0, c1 float64) (*Rectangle, error) {
	if err := requirePositiveBeta(beta); err != nil {
		return nil, err
	}
	return &Rectangle{beta: beta, c0: c0, c1: c1}, nil
}

// Beta returns the inverse coupling.
func (r *Rectangle) Beta() float64 { return r.beta }

// ComputeStaples sums, over every direction perpendicular to the link's
// own direction, c0 times the plaquette staple plus c1 times the
// rectangle staples.
func (r *Rectangle) ComputeStaples(field *LinkField, linkIndex int) *group.ColorMatrix {
	nd := field.SiteSize()
	site := SiteOf(linkIndex, nd)
	mu := DirOf(linkIndex, nd)
	layout := field.Layout()

	nc := link(field, site, mu).Nc()
	sum := group.NewColorMatrix(nc)
	for nu := 0; nu < nd; nu++ {
		if nu == mu {
			continue
		}
		plaq := plaquetteStaples(field, layout, site, mu, nu)
		rect := rectangleStaples(field, layout, site, mu, nu)
		sum = sum.Add(plaq.Scale(complex(r.c0, 0)))
		sum = sum.Add(rect.Scale(complex(r.c1, 0)))
	}
	return sum
}
