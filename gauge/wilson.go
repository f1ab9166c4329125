package gauge

import "pyqcd/group"

// Wilson is the standard Wilson plaquette gauge action: the staple at a
// link is the sum, over directions perpendicular to it, of the two
// plaquette staples (up and down).
type Wilson struct {
	beta float64
}

// NewWilson constructs a Wilson action at inverse coupling beta. beta
// must be positive.
func NewWilson(beta float64) (*Wilson, error) {
	if err := requirePositiveBeta(beta); err != nil {
		return nil, err
	}
	return &Wilson{beta: beta}, nil
}

// Beta returns the inverse coupling.
func (w *Wilson) Beta() float64 { return w.beta }

// ComputeStaples sums the two plaquette staples over every direction
// perpendicular to the link's own direction.
func (w *Wilson) ComputeStaples(field *LinkField, linkIndex int) *group.ColorMatrix {
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
		sum = sum.Add(plaquetteStaples(field, layout, site, mu, nu))
	}
	return sum
}
