package fermion

import "pyqcd/group"

// WilsonGammas builds the Nd Euclidean Dirac γ-matrices in the
// Gattringer-Lang convention for a 4-dimensional lattice, one concrete,
// widely used representation among several possible choices. Each
// matrix is Ns×Ns with Ns=4.
func WilsonGammas() [4]*group.ColorMatrix {
	g := [4]*group.ColorMatrix{
		group.NewColorMatrix(4),
		group.NewColorMatrix(4),
		group.NewColorMatrix(4),
		group.NewColorMatrix(4),
	}

	i := complex(0, 1)

	set := func(m *group.ColorMatrix, entries [4][4]complex128) {
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if entries[r][c] != 0 {
					m.Set(r, c, entries[r][c])
				}
			}
		}
	}

	set(g[0], [4][4]complex128{
		{0, 0, 0, i},
		{0, 0, i, 0},
		{0, -i, 0, 0},
		{-i, 0, 0, 0},
	})
	set(g[1], [4][4]complex128{
		{0, 0, 0, 1},
		{0, 0, -1, 0},
		{0, -1, 0, 0},
		{1, 0, 0, 0},
	})
	set(g[2], [4][4]complex128{
		{0, 0, i, 0},
		{0, 0, 0, -i},
		{-i, 0, 0, 0},
		{0, i, 0, 0},
	})
	set(g[3], [4][4]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})

	return g
}

// Gamma5 returns γ5 = diag(1, 1, -1, -1). With the WilsonGammas matrices
// this is -γ0γ1γ2γ3 (their product is diag(-1, -1, 1, 1)); it
// anticommutes with every γ-matrix and squares to the identity, which is
// all the γ5-hermiticity transform relies on.
func Gamma5() *group.ColorMatrix {
	m := group.NewColorMatrix(4)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, -1)
	m.Set(3, 3, -1)
	return m
}

// WilsonGammaProjectors returns, for every axis d of an Nd-dimensional
// lattice, the Γ⁺_d = I - γ_d and Γ⁻_d = I + γ_d spin projectors that
// weight the forward and backward hopping terms of the Wilson fermion
// action: D = Σ_d [Γ⁺_d U_d(x) δ_{fwd} + Γ⁻_d U_d(x-d̂)† δ_{bwd}].
// Supports Nd=4 only; the convention does not generalise to other Nd
// without a different γ-matrix basis.
func WilsonGammaProjectors(nd int) (gammaPlus, gammaMinus []*group.ColorMatrix) {
	if nd != 4 {
		panic("fermion: wilson gamma projectors are only defined for nd=4")
	}
	gammas := WilsonGammas()
	ident := group.IdentityColorMatrix(4)

	gammaPlus = make([]*group.ColorMatrix, nd)
	gammaMinus = make([]*group.ColorMatrix, nd)
	for d := 0; d < nd; d++ {
		gammaPlus[d] = ident.Add(gammas[d].Scale(-1))
		gammaMinus[d] = ident.Add(gammas[d])
	}
	return gammaPlus, gammaMinus
}
