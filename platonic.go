package polyhedra

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Platonic seed solids. All are centered on the origin with faces wound
// counterclockwise seen from outside.

// Tetrahedron returns a regular tetrahedron with vertices on (±1,±1,±1).
func Tetrahedron() *Geometry {
	g := &Geometry{
		Verts: []r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		Faces: [][]int{
			{0, 1, 2},
			{0, 2, 3},
			{0, 3, 1},
			{1, 3, 2},
		},
	}
	return g
}

// Cube returns the cube with vertices (±1,±1,±1).
func Cube() *Geometry {
	return &Geometry{
		Verts: []r3.Vec{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		Faces: [][]int{
			{0, 3, 2, 1},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
}

// Octahedron returns the regular octahedron with vertices on the axes.
func Octahedron() *Geometry {
	return &Geometry{
		Verts: []r3.Vec{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		Faces: [][]int{
			{0, 2, 4},
			{2, 1, 4},
			{1, 3, 4},
			{3, 0, 4},
			{2, 0, 5},
			{1, 2, 5},
			{3, 1, 5},
			{0, 3, 5},
		},
	}
}

// Icosahedron returns the regular icosahedron with vertices on the
// cyclic permutations of (0, ±1, ±φ).
func Icosahedron() *Geometry {
	phi := (1 + math.Sqrt(5)) / 2
	return &Geometry{
		Verts: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		Faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}

// Dodecahedron returns the regular dodecahedron as the face-centroid
// dual of Icosahedron.
func Dodecahedron() *Geometry {
	return centroidDual(Icosahedron())
}

// centroidDual builds the dual of a convex origin-centered polyhedron:
// one vertex per face centroid and, per base vertex, the cycle of
// incident face centroids ordered counterclockwise about the outward
// vertex direction.
func centroidDual(g *Geometry) *Geometry {
	d := &Geometry{Verts: make([]r3.Vec, len(g.Faces))}
	for f := range g.Faces {
		d.Verts[f] = g.FaceCentroid(f)
	}
	incident := make([][]int, len(g.Verts))
	for f, face := range g.Faces {
		for _, v := range face {
			incident[v] = append(incident[v], f)
		}
	}
	for v, faces := range incident {
		axis := r3.Unit(g.Verts[v])
		// basis perpendicular to the vertex direction
		ref := r3.Vec{X: 1}
		if math.Abs(axis.X) > 0.9 {
			ref = r3.Vec{Y: 1}
		}
		u := r3.Unit(r3.Cross(axis, ref))
		w := r3.Cross(axis, u)
		ang := make([]float64, len(faces))
		for i, f := range faces {
			p := d.Verts[f]
			ang[i] = math.Atan2(r3.Dot(p, w), r3.Dot(p, u))
		}
		order := make([]int, len(faces))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return ang[order[i]] < ang[order[j]] })
		face := make([]int, len(faces))
		for i, o := range order {
			face[i] = faces[o]
		}
		d.AddFace(face)
	}
	return d
}
