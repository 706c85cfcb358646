package wythoff

import (
	"math"

	"github.com/soypat/polyhedra"
	"github.com/soypat/polyhedra/internal/d3"
	"github.com/soypat/polyhedra/symmetry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle returns the symbol's fundamental Schwarz triangle as a
// single face on the unit sphere.
func (s Symbol) Triangle() *polyhedra.Geometry {
	g := &polyhedra.Geometry{}
	g.AddVert(s.verts[0])
	g.AddVert(s.verts[1])
	g.AddVert(s.verts[2])
	g.AddFace([]int{0, 1, 2})
	return g
}

// TrianglePoly tiles the sphere with the images of the fundamental
// triangle under the full triangle group, 2-coloring mirror images.
func (s Symbol) TrianglePoly() (*polyhedra.Geometry, error) {
	sym, err := symmetry.New(s.TriangleSymmetry())
	if err != nil {
		return nil, err
	}
	geom := &polyhedra.Geometry{}
	if sym.Name()[0] == 'D' {
		// N/D with D even is a double wrapped surface and cannot be
		// merged; use a direct construction instead of symmetry
		// repetition
		frac := s.Fracs[0]
		for _, f := range s.Fracs {
			if f.N != 2 || f.D != 1 {
				frac = f
				break
			}
		}
		N, D := frac.N, frac.D
		geom.AddVert(r3.Vec{Z: 1})
		geom.AddVert(r3.Vec{Z: -1})
		for i := 0; i < 2*N; i++ {
			ang := float64(i) * math.Pi * float64(D) / float64(N)
			geom.AddVert(r3.Vec{X: math.Cos(ang), Y: math.Sin(ang)})
			geom.AddFaceColored([]int{2 + i, 2 + (i+1)%(2*N), 0}, polyhedra.Color(i%2))
			geom.AddFaceColored([]int{1, 2 + (i+1)%(2*N), 2 + i}, polyhedra.Color((i+1)%2))
		}
		return geom, nil
	}

	tri := s.Triangle()
	half := &polyhedra.Geometry{}
	symmetry.Repeat(half, tri, sym)
	for f := range half.Faces {
		half.SetColor(polyhedra.Faces, f, 0)
	}
	geom.Append(half)

	norm := r3.Vec{Z: 1}
	if sym.Name() == "T" {
		norm = r3.Vec{X: 1, Y: 1}
	}
	mirror := d3.Reflect(norm)
	for i, v := range half.Verts {
		half.Verts[i] = mirror.Transform(v)
	}
	for f := range half.Faces {
		half.SetColor(polyhedra.Faces, f, 1)
	}
	geom.Append(half)
	polyhedra.MergeCoincident(geom, "v", mergeTol)
	return geom, nil
}
