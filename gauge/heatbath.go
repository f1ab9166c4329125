package gauge

import (
	"math"
	"math/cmplx"

	"pyqcd/group"
	"pyqcd/rng"
)

// epsilonGuard is the "6*machine epsilon" threshold below which a
// subgroup's staple norm is treated as degenerate and the corresponding
// SU(2) factor is drawn uniformly rather than from the heatbath
// distribution, avoiding division by (near-)zero.
var machineEpsilon = math.Nextafter(1, 2) - 1
var epsilonGuard = 6 * machineEpsilon

// HeatbathLinkUpdate performs a single link's pseudo-heatbath update in
// place: for each SU(2) subgroup of the link's colour group, draw a new
// SU(2) factor from the heatbath distribution weighted by the local
// staple norm and fold it into the link.
func HeatbathLinkUpdate(stream *rng.Stream, field *LinkField, action Action, linkIndex int) {
	nd := field.SiteSize()
	site := SiteOf(linkIndex, nd)
	mu := DirOf(linkIndex, nd)

	staples := action.ComputeStaples(field, linkIndex)
	l := field.At(site, mu)
	betaOverNc := action.Beta() / float64(l.Nc())

	for k := 0; k < group.SU2SubgroupCount(l.Nc()); k++ {
		w := l.Mul(staples)
		r, err := group.ExtractSU2(w, k)
		if err != nil {
			panic(err) // k ranges exactly over l.Nc()'s subgroup count
		}

		sqrtDet := cmplx.Sqrt(r.Det())
		a := real(sqrtDet)

		var x *group.ColorMatrix
		if a < epsilonGuard {
			x = group.RandomSU2(stream)
		} else {
			normalised := r.Scale(1 / sqrtDet)
			x = group.HeatbathSU2(stream, a*betaOverNc)
			x = x.Mul(normalised.Adjoint())
		}

		n, err := group.InsertSU2(x, l.Nc(), k)
		if err != nil {
			panic(err)
		}
		l = n.Mul(l)
	}

	field.Set(site, mu, l)
}

// HeatbathUpdate performs nSweeps full sweeps over field, each sweep
// updating every link exactly once in site-major, direction-minor order.
// Threading an explicit *rng.Stream rather than touching global state
// keeps the updater reproducible under parallel callers.
func HeatbathUpdate(stream *rng.Stream, field *LinkField, action Action, nSweeps int) {
	nd := field.SiteSize()
	volume := field.Layout().Volume()
	for sweep := 0; sweep < nSweeps; sweep++ {
		for site := 0; site < volume; site++ {
			for dir := 0; dir < nd; dir++ {
				HeatbathLinkUpdate(stream, field, action, LinkIndex(site, dir, nd))
			}
		}
	}
}
