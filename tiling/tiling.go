package tiling

import (
	"fmt"
	"strings"

	"github.com/soypat/polyhedra"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coloring selects how Build colors the emitted geometry.
type Coloring int

const (
	// ColorNone emits no colors.
	ColorNone Coloring = iota
	// ColorPathIndex colors each face with the index of its source
	// path, and each vertex with its pattern point's inclusion.
	ColorPathIndex
	// ColorAssociatedElement inherits colors from the base element each
	// tile is associated with.
	ColorAssociatedElement
)

// Tiling applies a tile pattern to the meta triangulation of a base
// geometry. The zero value is ready for use; call SetBase and one of
// AddTile, ReadPattern or ReadConway before Build.
type Tiling struct {
	meta       *polyhedra.Geometry
	nbrs       [][3]int
	points     []Point
	paths      []Tile
	origColors map[int]polyhedra.Color

	// OneOfEachTile emits a single circuit per path, a diagnostic mode
	// for inspecting patterns.
	OneOfEachTile bool
}

// Points returns the parsed pattern points.
func (t *Tiling) Points() []Point { return t.points }

// AddTile parses one path and appends it to the pattern.
func (t *Tiling) AddTile(path string) error {
	var tile Tile
	if err := tile.read(path); err != nil {
		return err
	}
	t.paths = append(t.paths, tile)
	return nil
}

// ReadPattern parses a full pattern "[Point0,Point1,...]Path0,Path1,..."
// replacing any current points and paths.
func (t *Tiling) ReadPattern(pattern string) error {
	if !strings.HasPrefix(pattern, "[") {
		return fmt.Errorf("%w: %q", ErrPatternFormat, pattern)
	}
	end := strings.LastIndexByte(pattern, ']')
	if end < 0 {
		return fmt.Errorf("%w: %q", ErrPatternFormat, pattern)
	}
	t.points = nil
	t.paths = nil
	for i, part := range splitNonEmpty(pattern[1:end], ",") {
		pt, err := parsePoint(part)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		t.points = append(t.points, pt)
	}
	for i, part := range splitNonEmpty(pattern[end+1:], ",") {
		var tile Tile
		if err := tile.read(part); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
		t.paths = append(t.paths, tile)
	}
	return nil
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Relabel permutes the V, E, F roles in all points and paths. perm is a
// permutation of "VEF": "EFV" and "FVE" are the cyclic relabelings, the
// transpositions are reflective.
func (t *Tiling) Relabel(perm string) error {
	if len(perm) != 3 || !strings.ContainsRune(perm, 'V') ||
		!strings.ContainsRune(perm, 'E') || !strings.ContainsRune(perm, 'F') {
		return ErrRelabel
	}
	var relab [3]int
	for i := 0; i < 3; i++ {
		relab[i] = strings.IndexByte("VEF", perm[i])
	}
	for i := range t.points {
		old := t.points[i].Coords
		var next r3.Vec
		for j := 0; j < 3; j++ {
			setComp(&next, relab[j], comp(old, j))
		}
		t.points[i].Coords = next
		t.points[i].Incl = inclusionOf(next)
	}
	for i := range t.paths {
		t.paths[i].relabel(relab)
	}
	return nil
}

// ReverseOrientation flips the seed parity of every path, exchanging
// '+' and '-'. Applying it twice is the identity.
func (t *Tiling) ReverseOrientation() {
	for i := range t.paths {
		t.paths[i].flipStart()
	}
}

// StartEverywhere sets every path to seed both parities, for tilings of
// non-orientable or unoriented bases.
func (t *Tiling) StartEverywhere() {
	for i := range t.paths {
		t.paths[i].start = '*'
	}
}

// String returns the pattern in canonical [points]paths form.
// ReadPattern of the result reproduces the same points and paths.
func (t *Tiling) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range t.points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(coordString(t.points[i].Coords))
	}
	b.WriteByte(']')
	for i := range t.paths {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.paths[i].String())
	}
	return b.String()
}

// classInfo records the output order of an inclusion class and the
// first meta triangle hosting it.
type classInfo struct {
	pos int
	tri int
}

// classKey identifies the host feature of a pattern point: a single
// meta vertex for V/E/F, a meta edge for VE/EF/FV, a triangle for VEF.
type classKey [2]int

// Build runs every path over the meta triangulation and returns the
// emitted geometry along with one report per path. Circuits of length
// two become explicit edges; circuits that cross an open meta edge are
// discarded. Vertices referenced by no face are deleted.
func (t *Tiling) Build(mode Coloring) (*polyhedra.Geometry, []TileReport, error) {
	if t.meta == nil {
		return nil, nil, ErrNoBase
	}
	out := &polyhedra.Geometry{}

	// enumerate the inclusion classes in first-occurrence order
	var classes [7]map[classKey]classInfo
	var counts [7]int
	for i := range classes {
		classes[i] = make(map[classKey]classInfo)
	}
	add := func(incl Inclusion, key classKey, tri int) {
		if _, ok := classes[incl][key]; !ok {
			classes[incl][key] = classInfo{pos: counts[incl], tri: tri}
			counts[incl]++
		}
	}
	for i, face := range t.meta.Faces {
		add(InclVEF, classKey{i, -1}, i)
		add(InclV, classKey{face[cornerV], -1}, i)
		add(InclE, classKey{face[cornerE], -1}, i)
		add(InclF, classKey{face[cornerF], -1}, i)
		add(InclVE, edgeKey(face[cornerV], face[cornerE]), i)
		add(InclEF, edgeKey(face[cornerE], face[cornerF]), i)
		add(InclFV, edgeKey(face[cornerF], face[cornerV]), i)
	}

	// one output vertex per class per pattern point, in class order
	offsets := make([]int, len(t.points))
	for i, pt := range t.points {
		offsets[i] = len(out.Verts)
		sum := pt.Coords.X + pt.Coords.Y + pt.Coords.Z
		crds := r3.Scale(1/sum, pt.Coords)
		verts := make([]r3.Vec, counts[pt.Incl])
		hosts := make([]int, counts[pt.Incl])
		hostCorner := cornerF
		switch pt.Incl {
		case InclV:
			hostCorner = cornerV
		case InclE:
			hostCorner = cornerE
		}
		for _, info := range classes[pt.Incl] {
			face := t.meta.Faces[info.tri]
			verts[info.pos] = r3.Add(
				r3.Add(
					r3.Scale(crds.X, t.meta.Verts[face[cornerV]]),
					r3.Scale(crds.Y, t.meta.Verts[face[cornerE]])),
				r3.Scale(crds.Z, t.meta.Verts[face[cornerF]]))
			hosts[info.pos] = face[hostCorner]
		}
		for j, v := range verts {
			vi := out.AddVert(v)
			switch mode {
			case ColorPathIndex:
				out.SetColor(polyhedra.Verts, vi, polyhedra.Color(pt.Incl))
			case ColorAssociatedElement:
				if c, ok := t.origColors[hosts[j]]; ok {
					out.SetColor(polyhedra.Verts, vi, c)
				}
			}
		}
	}

	reports := make([]TileReport, len(t.paths))
	for pIdx := range t.paths {
		pat := &t.paths[pIdx]
		if bad := pat.checkIndexRange(len(t.points)); len(bad) > 0 {
			return nil, nil, fmt.Errorf("path %d: %w: %v", pIdx, ErrIndexOutOfRange, bad)
		}
		assoc := pat.association()
		seen := make([]bool, len(t.meta.Faces))
		startFaces := len(out.Faces)
		for i := range t.meta.Faces {
			if seen[i] || !validStartFace(i, pat.start) {
				continue
			}
			col, hasCol := polyhedra.Color(0), false
			switch mode {
			case ColorPathIndex:
				col, hasCol = polyhedra.Color(pIdx), true
			case ColorAssociatedElement:
				if elem := t.associatedElement(i, assoc.Step, assoc.AssocType); elem >= 0 {
					if c, ok := t.origColors[elem]; ok {
						col, hasCol = c, true
					}
				}
			}
			t.addCircuit(out, i, pat, seen, col, hasCol, &classes, offsets)
			if t.OneOfEachTile {
				break
			}
		}
		assoc.Count = len(out.Faces) - startFaces
		reports[pIdx] = assoc
	}

	out.DeleteVerts(out.FreeVerts())
	return out, reports, nil
}

func edgeKey(a, b int) classKey {
	if a > b {
		a, b = b, a
	}
	return classKey{a, b}
}

// validStartFace reports whether face f may seed a path: '+' seeds
// even-parity triangles, '-' odd-parity, '*' both.
func validStartFace(f int, start byte) bool {
	odd := f%2 == 1
	return !(start == '+' && odd || start == '-' && !odd)
}

// addCircuit repeats the path's operation word from the start triangle
// until the walk returns to it, then emits the collected face. Walks
// that reach an open edge are abandoned and their partial face
// discarded.
func (t *Tiling) addCircuit(out *polyhedra.Geometry, start int, pat *Tile, seen []bool, col polyhedra.Color, hasCol bool, classes *[7]map[classKey]classInfo, offsets []int) {
	var face []int
	idx := start
	for {
		seen[idx] = true
		pi := 0
		for _, op := range pat.ops {
			if op == opPoint {
				pointIdx := pat.idxs[pi]
				pi++
				face = append(face, t.vertexIndex(idx, pointIdx, classes, offsets))
			} else {
				idx = t.nbrs[idx][op]
				if idx < 0 {
					return // circuit tried to cross an open edge
				}
			}
		}
		if idx == start {
			break
		}
	}
	switch {
	case len(face) > 2:
		if hasCol {
			out.AddFaceColored(face, col)
		} else {
			out.AddFace(face)
		}
	case len(face) == 2:
		if hasCol {
			out.AddEdgeColored(face[0], face[1], col)
		} else {
			out.AddEdge(face[0], face[1])
		}
	}
}

// vertexIndex locates the output vertex that pattern point pointIdx
// takes on meta triangle tri.
func (t *Tiling) vertexIndex(tri, pointIdx int, classes *[7]map[classKey]classInfo, offsets []int) int {
	face := t.meta.Faces[tri]
	incl := t.points[pointIdx].Incl
	var key classKey
	switch incl {
	case InclV, InclE, InclF:
		key = classKey{face[incl], -1}
	case InclVE:
		key = edgeKey(face[cornerV], face[cornerE])
	case InclEF:
		key = edgeKey(face[cornerE], face[cornerF])
	case InclFV:
		key = edgeKey(face[cornerF], face[cornerV])
	default: // InclVEF
		key = classKey{tri, -1}
	}
	return offsets[pointIdx] + classes[incl][key].pos
}

// associatedElement walks the association step word from the seed
// triangle and returns the meta vertex index of the associated base
// element, or -1 when the association is interior.
func (t *Tiling) associatedElement(start int, step string, assocType Inclusion) int {
	if assocType == InclVEF {
		return -1
	}
	idx := start
	for i := 0; i < len(step); i++ {
		elem := strings.IndexByte("vef", step[i])
		if elem < 0 || idx < 0 {
			return -1
		}
		idx = t.nbrs[idx][elem]
	}
	if idx < 0 {
		return -1
	}
	return t.meta.Faces[idx][assocType]
}
