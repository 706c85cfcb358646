// Package render converts polyhedra to triangle soup and writes binary
// STL files.
package render

import (
	"github.com/soypat/polyhedra"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle's unit normal by the right-hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Triangulate fans each face of the geometry into triangles. Faces with
// fewer than three vertices and explicit edges are skipped.
func Triangulate(g *polyhedra.Geometry) []Triangle3 {
	var tris []Triangle3
	for _, face := range g.Faces {
		if len(face) < 3 {
			continue
		}
		for i := 1; i < len(face)-1; i++ {
			tris = append(tris, Triangle3{V: [3]r3.Vec{
				g.Verts[face[0]],
				g.Verts[face[i]],
				g.Verts[face[i+1]],
			}})
		}
	}
	return tris
}
