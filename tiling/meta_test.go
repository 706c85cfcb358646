package tiling

import (
	"testing"

	"github.com/soypat/polyhedra"
	"github.com/stretchr/testify/require"
)

func metaOf(t *testing.T, base *polyhedra.Geometry) *Tiling {
	t.Helper()
	var tl Tiling
	require.NoError(t, tl.SetBase(base, false, 0))
	return &tl
}

func TestMetaCounts(t *testing.T) {
	tl := metaOf(t, polyhedra.Cube())
	meta := tl.Meta()
	// 8 V + 6 F + 12 E vertices, two triangles per face-edge incidence
	require.Len(t, meta.Verts, 26)
	require.Len(t, meta.Faces, 48)
}

func TestMetaInvariants(t *testing.T) {
	for _, base := range []*polyhedra.Geometry{
		polyhedra.Tetrahedron(),
		polyhedra.Cube(),
		polyhedra.Dodecahedron(),
	} {
		tl := metaOf(t, base)
		meta := tl.Meta()
		if len(meta.Faces)%2 != 0 {
			t.Fatal("meta face count is odd")
		}
		for f, face := range meta.Faces {
			require.Len(t, face, 3)
			// one corner of each role, in V, E, F order
			for i, v := range face {
				c, ok := meta.ColorOf(polyhedra.Verts, v)
				require.True(t, ok)
				require.Equal(t, polyhedra.Color(i), c, "face %d corner %d", f, i)
			}
			// neighbors exist and have opposite parity
			for i := 0; i < 3; i++ {
				n := tl.nbrs[f][i]
				require.GreaterOrEqual(t, n, 0)
				require.NotEqual(t, f%2, n%2, "face %d and neighbor %d share parity", f, n)
			}
		}
	}
}

func TestMetaFaceHeight(t *testing.T) {
	base := polyhedra.Cube()
	var flat, raised Tiling
	require.NoError(t, flat.SetBase(base, false, 0))
	require.NoError(t, raised.SetBase(base, false, 0.5))
	// F vertices (color 2) move along the face normal; V vertices stay
	for i := range flat.Meta().Verts {
		c, _ := flat.Meta().ColorOf(polyhedra.Verts, i)
		same := flat.Meta().Verts[i] == raised.Meta().Verts[i]
		if c == 2 && same {
			t.Errorf("F vertex %d did not move", i)
		}
		if c != 2 && !same {
			t.Errorf("vertex %d with role %d moved", i, c)
		}
	}
}

func TestNormalizeMetaRoundTrip(t *testing.T) {
	tl := metaOf(t, polyhedra.Cube())
	meta := tl.Meta().Copy()

	// scramble: reverse every third face and rotate every fifth
	for f, face := range meta.Faces {
		if f%3 == 0 {
			reverseFace(face)
		}
		if f%5 == 0 {
			meta.Faces[f] = append(face[1:], face[0])
		}
	}

	var tl2 Tiling
	require.NoError(t, tl2.SetBase(meta, true, 0))
	meta2 := tl2.Meta()
	require.Len(t, meta2.Faces, 48)
	for f, face := range meta2.Faces {
		for i, v := range face {
			c, ok := meta2.ColorOf(polyhedra.Verts, v)
			require.True(t, ok)
			require.Equal(t, polyhedra.Color(i), c, "face %d corner %d", f, i)
		}
		for i := 0; i < 3; i++ {
			n := tl2.nbrs[f][i]
			require.NotEqual(t, f%2, n%2)
		}
	}
}

func TestNormalizeMetaRejectsNonTriangles(t *testing.T) {
	var tl Tiling
	err := tl.SetBase(polyhedra.Cube(), true, 0)
	require.ErrorIs(t, err, ErrNotMeta)
}

func TestNormalizeMetaRejectsOddCount(t *testing.T) {
	g := polyhedra.Tetrahedron()
	g.Faces = g.Faces[:3] // odd number of triangles
	var tl Tiling
	err := tl.SetBase(g, true, 0)
	require.ErrorIs(t, err, ErrNotMeta)
}

func TestOriginalColorsFlattening(t *testing.T) {
	g := polyhedra.Cube()
	g.SetColor(polyhedra.Verts, 3, 7)
	g.SetColor(polyhedra.Faces, 2, 9)
	g.AddEdgeColored(0, 1, 11)
	cols := originalColors(g, false)
	require.Equal(t, polyhedra.Color(7), cols[3])
	require.Equal(t, polyhedra.Color(9), cols[len(g.Verts)+2])
	// edge (0,1) is the closing edge of the first face's boundary
	found := false
	for i, e := range g.ImplicitEdges() {
		if e == [2]int{0, 1} {
			require.Equal(t, polyhedra.Color(11), cols[len(g.Verts)+len(g.Faces)+i])
			found = true
		}
	}
	require.True(t, found)
}
