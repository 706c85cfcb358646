// Package tiling implements a symbolic-pattern-driven rewriter over the
// barycentric "meta" triangulation of a base polyhedron. A tile pattern
// places points in V/E/F barycentric coordinates and walks the triangle
// adjacency graph with words over the reflections v, e, f, emitting a
// face every time a walk circuit closes.
package tiling

import (
	"fmt"
	"strconv"
	"strings"
)

// Corner/mirror indices within a meta triangle.
const (
	cornerV = 0
	cornerE = 1
	cornerF = 2
	opPoint = 3
)

// Inclusion classifies which part of a meta triangle a pattern point
// lies on, deduced from its nonzero barycentric components.
type Inclusion int

const (
	InclV Inclusion = iota
	InclE
	InclF
	InclVE
	InclEF
	InclFV
	InclVEF
)

func (i Inclusion) String() string {
	return [...]string{"V", "E", "F", "VE", "EF", "FV", "VEF"}[i]
}

// Tile is one path of a pattern: a seed-parity flag and a sequence of
// operations. Reflections are stored as the corner indices 0, 1, 2;
// point emissions as opPoint with the point index queued in idxs.
// The rotations V, E, F are lowered to their two reflections on parse.
type Tile struct {
	start byte // '+', '-' or '*'
	ops   []int
	idxs  []int
}

// StartFaces reports the tile's seed parity flag.
func (t *Tile) StartFaces() byte { return t.start }

func (t *Tile) read(pat string) error {
	t.ops = t.ops[:0]
	t.idxs = t.idxs[:0]
	if pat == "" {
		return ErrTilePath
	}
	t.start = '+'
	pos := 0
	if pat[0] == '+' || pat[0] == '-' || pat[0] == '*' {
		t.start = pat[0]
		pos = 1
	}
	if pos >= len(pat) {
		return ErrTilePath
	}
	if !isDigit(pat[pos]) && !isDigit(pat[len(pat)-1]) {
		return ErrTilePath
	}

	for pos < len(pat) {
		c := pat[pos]
		switch {
		case isDigit(c):
			end := pos
			for end < len(pat) && isDigit(pat[end]) {
				end++
			}
			idx, err := strconv.Atoi(pat[pos:end])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrTilePath, pat[pos:end])
			}
			t.ops = append(t.ops, opPoint)
			t.idxs = append(t.idxs, idx)
			pos = end
			continue
		case c == 'v':
			t.ops = append(t.ops, cornerV)
		case c == 'e':
			t.ops = append(t.ops, cornerE)
		case c == 'f':
			t.ops = append(t.ops, cornerF)
		case c == 'V':
			t.ops = append(t.ops, cornerE, cornerF)
		case c == 'E':
			t.ops = append(t.ops, cornerF, cornerV)
		case c == 'F':
			t.ops = append(t.ops, cornerV, cornerE)
		case c == '_':
			// explicit no-op separating consecutive indices
		default:
			return fmt.Errorf("%w: %q in position %d", ErrBadChar, c, pos+1)
		}
		pos++
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// relabel remaps the reflection operations under a V/E/F permutation.
func (t *Tile) relabel(perm [3]int) {
	for i, op := range t.ops {
		if op >= 0 && op < 3 {
			t.ops[i] = perm[op]
		}
	}
}

// flipStart exchanges '+' and '-' seeds; '*' is left unchanged.
func (t *Tile) flipStart() {
	if t.start == '+' {
		t.start = '-'
	} else if t.start == '-' {
		t.start = '+'
	}
}

// checkIndexRange returns the point indices referenced by the tile that
// fall outside a points table of the given size.
func (t *Tile) checkIndexRange(numPoints int) []int {
	var out []int
	for _, idx := range t.idxs {
		if idx < 0 || idx >= numPoints {
			out = append(out, idx)
		}
	}
	return out
}

// TileReport describes the element association of a tile: the reduced
// operator word factored as step·assoc·step⁻¹, the association type
// derived from the letters of assoc, and the number of faces the tile
// emitted in the last build.
type TileReport struct {
	Step      string
	Assoc     string
	StepBack  string
	AssocType Inclusion
	Count     int
}

// association reduces the tile's operator word (reflections cancel in
// adjacent pairs) and factors it around its palindromic frame.
func (t *Tile) association() TileReport {
	const elems = "vef"
	var word []byte
	for _, op := range t.ops {
		if op != opPoint {
			word = append(word, elems[op])
		}
	}
	reduced := string(removeAdjacentDuplicates(word))

	sz := len(reduced)
	mi := 0
	for ; mi < sz; mi++ {
		if reduced[mi] != reduced[sz-1-mi] {
			break
		}
	}
	rep := TileReport{
		Step:     reduced[:mi],
		StepBack: reduced[sz-mi:],
	}
	if sz-2*mi > 0 {
		rep.Assoc = reduced[mi : sz-mi]
	}

	var has [3]bool
	for i := 0; i < 3; i++ {
		has[i] = strings.IndexByte(rep.Assoc, elems[i]) >= 0
	}
	switch {
	case has[0] && has[1] && has[2]:
		rep.AssocType = InclVEF
	case has[0] && has[1]: // v and e
		rep.AssocType = InclF
	case has[1] && has[2]: // e and f
		rep.AssocType = InclV
	case has[2] && has[0]: // f and v
		rep.AssocType = InclE
	default:
		// a single reflection, or the empty word: face-like
		rep.AssocType = InclF
	}
	return rep
}

// removeAdjacentDuplicates cancels equal adjacent letters repeatedly
// until none remain.
func removeAdjacentDuplicates(word []byte) []byte {
	out := word[:0]
	for _, c := range word {
		if n := len(out); n > 0 && out[n-1] == c {
			out = out[:n-1]
		} else {
			out = append(out, c)
		}
	}
	return out
}

// String reconstructs the path in canonical form: '_' between
// consecutive indices, and adjacent reflection pairs forming a rotation
// in cyclic order printed as the uppercase rotation letter.
func (t *Tile) String() string {
	const vef = "vef"
	const VEF = "VEF"
	var b strings.Builder
	if t.start != '+' {
		b.WriteByte(t.start)
	}
	lastOp := -1
	pIdx := 0
	for _, op := range t.ops {
		if op == opPoint {
			if lastOp == opPoint {
				b.WriteByte('_')
			}
			b.WriteString(strconv.Itoa(t.idxs[pIdx]))
			pIdx++
		} else {
			b.WriteByte(vef[op])
		}
		lastOp = op
	}
	tile := b.String()

	// convert pairs of consecutive letters from vef to VEF
	var out strings.Builder
	for i := 0; i < len(tile); i++ {
		if i+1 < len(tile) {
			x := strings.IndexByte(vef, tile[i])
			y := strings.IndexByte(vef, tile[i+1])
			if x >= 0 && y >= 0 && (x+1)%3 == y {
				out.WriteByte(VEF[(x+2)%3])
				i++
				continue
			}
		}
		out.WriteByte(tile[i])
	}
	return out.String()
}
