package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector manipulation routines shared by the geometry packages.

func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Component returns the component of u along the unit direction n,
// as a vector.
func Component(u, n r3.Vec) r3.Vec {
	return r3.Scale(r3.Dot(u, n), n)
}

// Triple returns the scalar triple product a · (b × c).
func Triple(a, b, c r3.Vec) float64 {
	return r3.Dot(a, r3.Cross(b, c))
}

// AngleAroundAxis returns the angle in [0, 2π) swept from v0 to v1
// counterclockwise around axis.
func AngleAroundAxis(v0, v1, axis r3.Vec) float64 {
	n := r3.Unit(axis)
	p0 := r3.Sub(v0, Component(v0, n))
	p1 := r3.Sub(v1, Component(v1, n))
	ang := math.Atan2(r3.Dot(n, r3.Cross(p0, p1)), r3.Dot(p0, p1))
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return ang
}
