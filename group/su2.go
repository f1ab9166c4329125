package group

import (
	"math"

	"pyqcd/rng"
)

// ConstructSU2 builds a0*σ0 + i(a1*σ1 + a2*σ2 + a3*σ3) from the Pauli
// basis. With Σaₖ²=1 the result lies in SU(2).
func ConstructSU2(a0, a1, a2, a3 float64) *ColorMatrix {
	m := NewColorMatrix(2)
	m.Set(0, 0, complex(a0, a3))
	m.Set(0, 1, complex(a2, a1))
	m.Set(1, 0, complex(-a2, a1))
	m.Set(1, 1, complex(a0, -a3))
	return m
}

// sphereVector samples a three-vector of the given radius uniformly on
// the sphere of that radius, shared by RandomSU2 and HeatbathSU2's
// residual sampling step.
func sphereVector(stream *rng.Stream, radius float64) (x, y, z float64) {
	cosTheta := stream.GenerateReal(-1, 1)
	phi := stream.GenerateReal(0, 2*math.Pi)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	x = radius * sinTheta * math.Cos(phi)
	y = radius * sinTheta * math.Sin(phi)
	z = radius * cosTheta
	return
}

// RandomSU2 samples a0 uniformly in [0,1] and the remaining three-vector
// uniformly on the sphere of radius sqrt(1-a0²). This is a half-sphere
// distribution biased toward the identity, not the Haar measure on
// SU(2); that behaviour is retained deliberately (see DESIGN.md).
func RandomSU2(stream *rng.Stream) *ColorMatrix {
	a0 := stream.GenerateReal(0, 1)
	r := math.Sqrt(math.Max(0, 1-a0*a0))
	a1, a2, a3 := sphereVector(stream, r)
	return ConstructSU2(a0, a1, a2, a3)
}

// HeatbathSU2 draws a0 from the distribution proportional to
// sqrt(1-x^2)*exp(weight*x) on [-1,1] via the Kennedy-Pendleton
// acceptance loop, then samples the residual three-vector uniformly on
// the sphere of radius sqrt(1-a0^2). weight must be positive; the
// heatbath link update guarantees this by branching to RandomSU2
// whenever the staple norm is too small to form a positive weight.
func HeatbathSU2(stream *rng.Stream, weight float64) *ColorMatrix {
	for {
		r0 := 1 - stream.GenerateReal(0, 1)
		r1 := 1 - stream.GenerateReal(0, 1)
		r2 := 1 - stream.GenerateReal(0, 1)

		cosTerm := math.Cos(2 * math.Pi * r1)
		lambda2 := -(1 / (2 * weight)) * (math.Log(r0) + cosTerm*cosTerm*math.Log(r2))

		u := stream.GenerateReal(0, 1)
		if u*u <= 1-lambda2 {
			a0 := 1 - 2*lambda2
			r := math.Sqrt(math.Max(0, 1-a0*a0))
			a1, a2, a3 := sphereVector(stream, r)
			return ConstructSU2(a0, a1, a2, a3)
		}
	}
}
