package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotateQuarterTurn(t *testing.T) {
	rot := Rotate(r3.Vec{Z: 1}, math.Pi/2)
	got := rot.Transform(r3.Vec{X: 1})
	if !EqualWithin(got, r3.Vec{Y: 1}, 1e-12) {
		t.Fatalf("RotZ(π/2)·X = %v, want Y", got)
	}
}

func TestReflectPlane(t *testing.T) {
	m := Reflect(r3.Vec{X: 1})
	got := m.Transform(r3.Vec{X: 2, Y: 3, Z: -1})
	if !EqualWithin(got, r3.Vec{X: -2, Y: 3, Z: -1}, 1e-12) {
		t.Fatalf("reflection through x=0 plane gave %v", got)
	}
	// a reflection is an involution
	if !m.Mul(m).EqualWithin(Transform{}, 1e-12) {
		t.Fatal("reflection squared is not the identity")
	}
}

func TestMulComposes(t *testing.T) {
	a := Rotate(r3.Vec{Z: 1}, math.Pi/3)
	b := Rotate(r3.Vec{Z: 1}, math.Pi/6)
	c := a.Mul(b)
	if !c.EqualWithin(Rotate(r3.Vec{Z: 1}, math.Pi/2), 1e-12) {
		t.Fatal("rotation composition mismatch")
	}
}

func TestAngleAroundAxis(t *testing.T) {
	ang := AngleAroundAxis(r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
	if math.Abs(ang-math.Pi/2) > 1e-12 {
		t.Fatalf("angle = %g, want π/2", ang)
	}
	// swapping the vectors gives the reflex angle
	ang = AngleAroundAxis(r3.Vec{Y: 1}, r3.Vec{X: 1}, r3.Vec{Z: 1})
	if math.Abs(ang-3*math.Pi/2) > 1e-12 {
		t.Fatalf("angle = %g, want 3π/2", ang)
	}
}

func TestTriple(t *testing.T) {
	got := Triple(r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
	if math.Abs(got-1) > 1e-15 {
		t.Fatalf("triple product = %g, want 1", got)
	}
}
