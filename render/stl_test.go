package render_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
	"github.com/soypat/polyhedra"
	"github.com/soypat/polyhedra/render"
	"github.com/stretchr/testify/require"
)

func TestTriangulateCounts(t *testing.T) {
	// a quad fans into two triangles
	cube := polyhedra.Cube()
	tris := render.Triangulate(cube)
	require.Len(t, tris, 12)

	tetra := polyhedra.Tetrahedron()
	require.Len(t, render.Triangulate(tetra), 4)
}

func TestWriteReadSTL(t *testing.T) {
	tris := render.Triangulate(polyhedra.Octahedron())
	var b bytes.Buffer
	require.NoError(t, render.WriteSTL(&b, tris))
	require.Equal(t, 84+50*len(tris), b.Len())

	back, err := render.ReadSTL(&b)
	require.NoError(t, err)
	require.Len(t, back, len(tris))
	for i := range tris {
		for j := 0; j < 3; j++ {
			require.InDelta(t, tris[i].V[j].X, back[i].V[j].X, 1e-6)
			require.InDelta(t, tris[i].V[j].Y, back[i].V[j].Y, 1e-6)
			require.InDelta(t, tris[i].V[j].Z, back[i].V[j].Z, 1e-6)
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	require.Error(t, render.WriteSTL(&b, nil))
}

// The written file parses with an independent STL reader.
func TestCreateSTLExternalReadback(t *testing.T) {
	tris := render.Triangulate(polyhedra.Dodecahedron())
	path := filepath.Join(t.TempDir(), "dodecahedron.stl")
	require.NoError(t, render.CreateSTL(path, tris))

	solid, err := stl.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, solid.Triangles, len(tris))
}
