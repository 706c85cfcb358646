package tiling

import (
	"fmt"

	"github.com/soypat/polyhedra"
	"gonum.org/v1/gonum/spatial/r3"
)

// SetBase sets the geometry the tiling is applied to. When isMeta is
// false the oriented barycentric meta triangulation is built from the
// base: one V vertex per base vertex, one E vertex per base edge
// midpoint and one F vertex per base face centroid, with each face cut
// into corner-edge-centroid triangle pairs. faceHeight displaces the F
// vertices along the face normals.
//
// When isMeta is true the geometry is taken to be a meta triangulation
// already and is normalized: faces are 2-colored by parity, vertices
// are assigned consistent V/E/F roles, each face is rotated to start at
// its V corner and faces are reordered so parities alternate with face
// index.
func (t *Tiling) SetBase(g *polyhedra.Geometry, isMeta bool, faceHeight float64) error {
	t.origColors = originalColors(g, isMeta)
	if isMeta {
		t.meta = g.Copy()
		if err := normalizeMeta(t.meta); err != nil {
			return err
		}
	} else {
		t.meta = makeMeta(g, faceHeight)
	}
	if err := t.findNbrs(); err != nil {
		return err
	}
	if isMeta {
		// neighboring faces must have index numbers of opposite parity
		for i, nb := range t.nbrs {
			for _, n := range nb {
				if n >= 0 && i%2 == n%2 {
					return ErrNotTwoColorable
				}
			}
		}
	}
	return nil
}

// Meta returns the tiling's meta triangulation, built or normalized by
// SetBase.
func (t *Tiling) Meta() *polyhedra.Geometry { return t.meta }

// originalColors flattens the base element colors into the meta vertex
// index space: base vertices first, then face centroids, then implicit
// edge midpoints. For a meta base the vertex colors are already in that
// space.
func originalColors(g *polyhedra.Geometry, isMeta bool) map[int]polyhedra.Color {
	cols := make(map[int]polyhedra.Color)
	for i := range g.Verts {
		if c, ok := g.ColorOf(polyhedra.Verts, i); ok {
			cols[i] = c
		}
	}
	if isMeta {
		return cols
	}
	fStart := len(g.Verts)
	for i := range g.Faces {
		if c, ok := g.ColorOf(polyhedra.Faces, i); ok {
			cols[i+fStart] = c
		}
	}
	e2col := make(map[[2]int]polyhedra.Color)
	for i, e := range g.Edges {
		if c, ok := g.ColorOf(polyhedra.Edges, i); ok {
			e2col[e] = c
		}
	}
	eStart := fStart + len(g.Faces)
	for i, e := range g.ImplicitEdges() {
		if c, ok := e2col[e]; ok {
			cols[i+eStart] = c
		}
	}
	return cols
}

// makeMeta builds the barycentric subdivision of the base. Meta vertex
// colors record the corner roles: 0 for V, 1 for E, 2 for F.
func makeMeta(g *polyhedra.Geometry, faceHeight float64) *polyhedra.Geometry {
	meta := &polyhedra.Geometry{}
	for _, v := range g.Verts {
		meta.AddVertColored(v, 0)
	}
	fStart := len(meta.Verts)
	for f := range g.Faces {
		pt := g.FaceCentroid(f)
		if faceHeight != 0 {
			pt = r3.Add(pt, r3.Scale(faceHeight, g.FaceNormal(f)))
		}
		meta.AddVertColored(pt, 2)
	}
	e2v := make(map[[2]int]int)
	for _, e := range g.ImplicitEdges() {
		e2v[e] = meta.AddVertColored(g.EdgeCentroid(e[0], e[1]), 1)
	}
	for f, face := range g.Faces {
		fCent := fStart + f
		for i, v0 := range face {
			v1 := face[(i+1)%len(face)]
			a, b := v0, v1
			if a > b {
				a, b = b, a
			}
			eCent := e2v[[2]int{a, b}]
			meta.AddFace([]int{v0, eCent, fCent})
			meta.AddFace([]int{v1, eCent, fCent})
		}
	}
	return meta
}

// normalizeMeta is idempotent. Within each connected part the first
// face acts as seed: it keeps its orientation and its vertices are
// taken in V, E, F order.
func normalizeMeta(g *polyhedra.Geometry) error {
	g.ClearColors()
	if len(g.Faces) == 0 || len(g.Faces)%2 != 0 {
		return fmt.Errorf("%w: face count is not a positive even number", ErrNotMeta)
	}
	for f, face := range g.Faces {
		if len(face) != 3 {
			return fmt.Errorf("%w: face %d is not a triangle", ErrNotMeta, f)
		}
	}

	pairs := g.EdgeFacePairs()
	parity := make([]int, len(g.Faces))
	role := make([]int, len(g.Verts))
	for i := range parity {
		parity[i] = -1
	}
	for i := range role {
		role[i] = -1
	}

	for seed := range g.Faces {
		if parity[seed] != -1 {
			continue
		}
		parity[seed] = 0
		for i, v := range g.Faces[seed] {
			role[v] = i
		}
		queue := []int{seed}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			face := g.Faces[f]
			for i := 0; i < 3; i++ {
				v0, v1 := face[i], face[(i+1)%3]
				other := otherFace(pairs, v0, v1, f)
				if other < 0 {
					continue
				}
				if parity[other] != -1 {
					if parity[other] == parity[f] {
						return ErrNotTwoColorable
					}
					continue
				}
				parity[other] = 1 - parity[f]
				// the neighbor must traverse the shared edge in the
				// same direction; reverse it if not
				if !hasDirectedEdge(g.Faces[other], v0, v1) {
					reverseFace(g.Faces[other])
				}
				// the two non-shared corners carry the same role
				thirdRole := role[face[(i+2)%3]]
				third := thirdVert(g.Faces[other], v0, v1)
				if role[third] != -1 && role[third] != thirdRole {
					return ErrNotThreeColorable
				}
				role[third] = thirdRole
				queue = append(queue, other)
			}
		}
	}

	// record vertex roles as colors and rotate each face to V first
	for v, r := range role {
		if r != -1 {
			g.SetColor(polyhedra.Verts, v, polyhedra.Color(r))
		}
	}
	for f, face := range g.Faces {
		for i, v := range face {
			if role[v] == 0 {
				rot := make([]int, 0, 3)
				rot = append(rot, face[i:]...)
				rot = append(rot, face[:i]...)
				g.Faces[f] = rot
				break
			}
		}
	}

	// reorder faces so indices alternate parity, even indices first
	var bad [2][]int
	for i := range g.Faces {
		if parity[i] != i%2 {
			bad[i%2] = append(bad[i%2], i)
		}
	}
	if len(bad[0]) != len(bad[1]) {
		return fmt.Errorf("%w: parity classes are unbalanced", ErrNotMeta)
	}
	for i := range bad[0] {
		g.Faces[bad[0][i]], g.Faces[bad[1][i]] = g.Faces[bad[1][i]], g.Faces[bad[0][i]]
	}
	return nil
}

func otherFace(pairs map[[2]int][]int, v0, v1, f int) int {
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	fs := pairs[[2]int{v0, v1}]
	if len(fs) != 2 {
		return -1
	}
	if fs[0] != f {
		return fs[0]
	}
	return fs[1]
}

func hasDirectedEdge(face []int, v0, v1 int) bool {
	for i, v := range face {
		if v == v0 && face[(i+1)%len(face)] == v1 {
			return true
		}
	}
	return false
}

func reverseFace(face []int) {
	for i, j := 0, len(face)-1; i < j; i, j = i+1, j-1 {
		face[i], face[j] = face[j], face[i]
	}
}

func thirdVert(face []int, v0, v1 int) int {
	for _, v := range face {
		if v != v0 && v != v1 {
			return v
		}
	}
	return -1
}

// findNbrs locates, for each meta triangle, the face across the edge
// opposite each of its V, E, F corners; -1 marks an open edge.
func (t *Tiling) findNbrs() error {
	pairs := t.meta.EdgeFacePairs()
	t.nbrs = make([][3]int, len(t.meta.Faces))
	for f, face := range t.meta.Faces {
		for i := 0; i < 3; i++ {
			a, b := face[(i+1)%3], face[(i+2)%3]
			if a > b {
				a, b = b, a
			}
			fs, ok := pairs[[2]int{a, b}]
			if !ok {
				return ErrOpenEdge
			}
			if len(fs) != 2 {
				// only allow connection for two faces at an edge
				t.nbrs[f][i] = -1
			} else if fs[0] != f {
				t.nbrs[f][i] = fs[0]
			} else {
				t.nbrs[f][i] = fs[1]
			}
		}
	}
	return nil
}
