package group

import "pyqcd/lattice"

// LinkField is a gauge link field: Nd colour matrices per site, one per
// direction, addressed as field.At(site, direction). Declared here
// rather than in package gauge or package fermion so that both can
// depend on it without depending on each other.
type LinkField = lattice.Field[*ColorMatrix]

// NewIdentityLinkField allocates a link field over layout with nd
// directions per site and nc×nc colour matrices, every link set to the
// identity.
func NewIdentityLinkField(layout *lattice.Layout, nd, nc int) (*LinkField, error) {
	return lattice.NewField(layout, IdentityColorMatrix(nc), nd)
}
