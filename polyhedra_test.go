package polyhedra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPlatonicCounts(t *testing.T) {
	for _, tc := range []struct {
		name                string
		geom                *Geometry
		verts, faces, edges int
	}{
		{"tetrahedron", Tetrahedron(), 4, 4, 6},
		{"cube", Cube(), 8, 6, 12},
		{"octahedron", Octahedron(), 6, 8, 12},
		{"dodecahedron", Dodecahedron(), 20, 12, 30},
		{"icosahedron", Icosahedron(), 12, 20, 30},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.geom.Verts, tc.verts)
			require.Len(t, tc.geom.Faces, tc.faces)
			require.Len(t, tc.geom.ImplicitEdges(), tc.edges)
		})
	}
}

func TestPlatonicOutwardFaces(t *testing.T) {
	for _, tc := range []struct {
		name string
		geom *Geometry
	}{
		{"tetrahedron", Tetrahedron()},
		{"cube", Cube()},
		{"octahedron", Octahedron()},
		{"dodecahedron", Dodecahedron()},
		{"icosahedron", Icosahedron()},
	} {
		for f := range tc.geom.Faces {
			n := tc.geom.FaceNormal(f)
			c := tc.geom.FaceCentroid(f)
			if r3.Dot(n, c) <= 0 {
				t.Errorf("%s: face %d wound inward", tc.name, f)
			}
		}
	}
}

func TestImplicitEdgesShared(t *testing.T) {
	g := Cube()
	pairs := g.EdgeFacePairs()
	for e, fs := range pairs {
		if len(fs) != 2 {
			t.Errorf("edge %v has %d incident faces, want 2", e, len(fs))
		}
	}
}

func TestMergeCoincidentVerts(t *testing.T) {
	g := &Geometry{}
	g.AddVert(r3.Vec{X: 1})
	g.AddVert(r3.Vec{Y: 1})
	g.AddVert(r3.Vec{X: 1, Z: 1e-12}) // coincides with vertex 0
	g.AddFace([]int{0, 1, 2})
	MergeCoincident(g, "v", 1e-8)
	require.Len(t, g.Verts, 2)
	require.Equal(t, []int{0, 1, 0}, g.Faces[0])
}

func TestMergeCoincidentFaces(t *testing.T) {
	g := &Geometry{}
	for _, v := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		g.AddVert(v)
	}
	g.AddFace([]int{0, 1, 2})
	g.AddFace([]int{1, 2, 0}) // rotation of face 0
	g.AddFace([]int{2, 1, 0}) // reversal of face 0
	MergeCoincident(g, "f", 0)
	require.Len(t, g.Faces, 1)
}

func TestDeleteVertsRemapsFaces(t *testing.T) {
	g := &Geometry{}
	for i := 0; i < 5; i++ {
		g.AddVert(r3.Vec{X: float64(i)})
	}
	g.AddFace([]int{2, 3, 4})
	g.DeleteVerts([]int{0, 1})
	require.Len(t, g.Verts, 3)
	require.Equal(t, []int{0, 1, 2}, g.Faces[0])
}

func TestFreeVerts(t *testing.T) {
	g := &Geometry{}
	for i := 0; i < 4; i++ {
		g.AddVert(r3.Vec{X: float64(i)})
	}
	g.AddFace([]int{0, 1, 2})
	require.Equal(t, []int{3}, g.FreeVerts())
	g.DeleteVerts(g.FreeVerts())
	require.Len(t, g.Verts, 3)
	require.Empty(t, g.FreeVerts())
}

func TestAppendOffsetsIndices(t *testing.T) {
	a := Tetrahedron()
	b := Tetrahedron()
	nv, nf := len(a.Verts), len(a.Faces)
	a.Append(b)
	require.Len(t, a.Verts, 2*nv)
	require.Len(t, a.Faces, 2*nf)
	require.Equal(t, a.Faces[nf][0], b.Faces[0][0]+nv)
}

func TestFaceNormalUnit(t *testing.T) {
	g := Cube()
	for f := range g.Faces {
		if math.Abs(r3.Norm(g.FaceNormal(f))-1) > 1e-12 {
			t.Errorf("face %d normal is not unit length", f)
		}
	}
}
