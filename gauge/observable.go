package gauge

import "pyqcd/group"

// plaquetteMatrix returns U_μ(x) U_ν(x+μ̂) U_μ(x+ν̂)† U_ν(x)†, the
// smallest closed loop in the μ-ν plane anchored at site.
func plaquetteMatrix(field *LinkField, layout LinkFieldLayout, site, mu, nu int) *group.ColorMatrix {
	xPlusMu := layout.Shift(site, mu, 1)
	xPlusNu := layout.Shift(site, nu, 1)

	return link(field, site, mu).
		Mul(link(field, xPlusMu, nu)).
		Mul(link(field, xPlusNu, mu).Adjoint()).
		Mul(link(field, site, nu).Adjoint())
}

// AveragePlaquette returns the Wilson average plaquette, Re Tr[P]/Nc
// averaged over every site and every unordered direction pair: 1 for
// the identity field, trending toward 1 as β→∞.
func AveragePlaquette(field *LinkField) float64 {
	layout := field.Layout()
	nd := field.SiteSize()
	volume := layout.Volume()
	nc := float64(link(field, 0, 0).Nc())

	var sum float64
	var count int
	for site := 0; site < volume; site++ {
		for mu := 0; mu < nd; mu++ {
			for nu := mu + 1; nu < nd; nu++ {
				p := plaquetteMatrix(field, layout, site, mu, nu)
				sum += real(p.Trace())
				count++
			}
		}
	}
	return sum / (float64(count) * nc)
}
