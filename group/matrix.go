// Package group implements the SU(2) and SU(Nc) random-matrix and
// subgroup utilities, built on top of a small flat-backed complex
// colour-matrix type: a typed wrapper over a flat row-major backing
// slice, specialised to fixed-size complex128 arithmetic rather than
// generalised linear algebra (see DESIGN.md for why gonum's mat.CDense
// is not used here).
package group

import (
	"fmt"
	"math/cmplx"
)

// ColorMatrix is a dense Nc×Nc complex matrix, stored row-major in a flat
// slice. The zero value is not usable; construct with NewColorMatrix or
// IdentityColorMatrix.
type ColorMatrix struct {
	nc   int
	data []complex128
}

// NewColorMatrix allocates a zero-filled nc×nc matrix.
func NewColorMatrix(nc int) *ColorMatrix {
	if nc < 1 {
		panic(fmt.Sprintf("group: colour matrix dimension must be positive, got %d", nc))
	}
	return &ColorMatrix{nc: nc, data: make([]complex128, nc*nc)}
}

// IdentityColorMatrix allocates the nc×nc identity matrix.
func IdentityColorMatrix(nc int) *ColorMatrix {
	m := NewColorMatrix(nc)
	for i := 0; i < nc; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Nc returns the matrix dimension.
func (m *ColorMatrix) Nc() int { return m.nc }

// At returns element (i,j).
func (m *ColorMatrix) At(i, j int) complex128 { return m.data[i*m.nc+j] }

// Set overwrites element (i,j).
func (m *ColorMatrix) Set(i, j int, v complex128) { m.data[i*m.nc+j] = v }

// Increment adds v to element (i,j).
func (m *ColorMatrix) Increment(i, j int, v complex128) { m.data[i*m.nc+j] += v }

// Clone returns a deep copy.
func (m *ColorMatrix) Clone() *ColorMatrix {
	out := NewColorMatrix(m.nc)
	copy(out.data, m.data)
	return out
}

// CopyFrom overwrites this matrix's contents with src's. Panics if the
// dimensions differ.
func (m *ColorMatrix) CopyFrom(src *ColorMatrix) {
	if m.nc != src.nc {
		panic(fmt.Sprintf("group: colour matrix copy dimension mismatch: %d vs %d", m.nc, src.nc))
	}
	copy(m.data, src.data)
}

// Zero resets every element to 0.
func (m *ColorMatrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// SetIdentity resets the matrix to the identity.
func (m *ColorMatrix) SetIdentity() {
	m.Zero()
	for i := 0; i < m.nc; i++ {
		m.Set(i, i, 1)
	}
}

// Mul returns a new matrix equal to m*other.
func (m *ColorMatrix) Mul(other *ColorMatrix) *ColorMatrix {
	if m.nc != other.nc {
		panic(fmt.Sprintf("group: colour matrix multiply dimension mismatch: %d vs %d", m.nc, other.nc))
	}
	out := NewColorMatrix(m.nc)
	for i := 0; i < m.nc; i++ {
		for k := 0; k < m.nc; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < m.nc; j++ {
				out.Increment(i, j, a*other.At(k, j))
			}
		}
	}
	return out
}

// Adjoint returns a new matrix equal to m's conjugate transpose.
func (m *ColorMatrix) Adjoint() *ColorMatrix {
	out := NewColorMatrix(m.nc)
	for i := 0; i < m.nc; i++ {
		for j := 0; j < m.nc; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// Add returns a new matrix equal to m+other.
func (m *ColorMatrix) Add(other *ColorMatrix) *ColorMatrix {
	if m.nc != other.nc {
		panic(fmt.Sprintf("group: colour matrix add dimension mismatch: %d vs %d", m.nc, other.nc))
	}
	out := NewColorMatrix(m.nc)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out
}

// Scale returns a new matrix equal to c*m.
func (m *ColorMatrix) Scale(c complex128) *ColorMatrix {
	out := NewColorMatrix(m.nc)
	for i := range m.data {
		out.data[i] = c * m.data[i]
	}
	return out
}

// Trace returns the sum of the diagonal elements.
func (m *ColorMatrix) Trace() complex128 {
	var sum complex128
	for i := 0; i < m.nc; i++ {
		sum += m.At(i, i)
	}
	return sum
}

// Det returns the determinant: in closed form for 1×1 and 2×2 matrices,
// otherwise by LU decomposition with partial pivoting, generalised from
// real to complex arithmetic.
func (m *ColorMatrix) Det() complex128 {
	switch m.nc {
	case 1:
		return m.At(0, 0)
	case 2:
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	default:
		return complexLUDeterminant(m)
	}
}

// MaxAbsDiff returns the entrywise maximum of |m[i][j]-other[i][j]|,
// used by unitarity checks elsewhere in this module.
func (m *ColorMatrix) MaxAbsDiff(other *ColorMatrix) float64 {
	if m.nc != other.nc {
		panic(fmt.Sprintf("group: colour matrix diff dimension mismatch: %d vs %d", m.nc, other.nc))
	}
	var maxAbs float64
	for i := range m.data {
		if d := cmplx.Abs(m.data[i] - other.data[i]); d > maxAbs {
			maxAbs = d
		}
	}
	return maxAbs
}

// complexLUDeterminant performs Gaussian elimination with partial
// pivoting on a scratch copy of m and returns the determinant as the
// signed product of the pivots.
func complexLUDeterminant(m *ColorMatrix) complex128 {
	n := m.nc
	work := m.Clone()
	det := complex128(1)
	for col := 0; col < n; col++ {
		pivotRow := col
		pivotAbs := cmplx.Abs(work.At(col, col))
		for row := col + 1; row < n; row++ {
			if a := cmplx.Abs(work.At(row, col)); a > pivotAbs {
				pivotAbs = a
				pivotRow = row
			}
		}
		if pivotAbs == 0 {
			return 0
		}
		if pivotRow != col {
			for j := 0; j < n; j++ {
				work.data[col*n+j], work.data[pivotRow*n+j] = work.data[pivotRow*n+j], work.data[col*n+j]
			}
			det = -det
		}

		pivot := work.At(col, col)
		det *= pivot
		for row := col + 1; row < n; row++ {
			factor := work.At(row, col) / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				work.Increment(row, j, -factor*work.At(col, j))
			}
		}
	}
	return det
}
