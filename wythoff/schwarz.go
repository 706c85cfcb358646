package wythoff

import (
	"math"

	"github.com/soypat/polyhedra/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// schwarzEntry pairs the sorted fraction triple of a spherical Schwarz
// triangle with the unit vectors of its three vertices.
type schwarzEntry struct {
	fracs [3]Fraction
	verts [3]r3.Vec
}

// The 44 spherical Schwarz triangles in normalized fraction order.
// Vertex coordinates are closed forms over the golden ratio φ and the
// square roots of 2, 3 and φ+2.
var schwarzTable = buildSchwarzTable()

func buildSchwarzTable() [44]schwarzEntry {
	phi := (1 + math.Sqrt(5)) / 2
	t := 1 / math.Sqrt(3)        // 1/√3
	s := 1 / math.Sqrt(2)        // 1/√2
	p := 1 / math.Sqrt(phi+2)    // 1/√(φ+2)
	q := phi / math.Sqrt(phi+2)  // φ/√(φ+2)
	g := phi / math.Sqrt(3)      // φ/√3
	h := (phi - 1) / math.Sqrt(3)
	a := 0.5 / phi
	b := phi / 2

	fr := func(n0, d0, n1, d1, n2, d2 int) [3]Fraction {
		return [3]Fraction{{n0, d0}, {n1, d1}, {n2, d2}}
	}
	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

	return [44]schwarzEntry{
		{fr(2, 1, 3, 1, 3, 1), [3]r3.Vec{v(0, 1, 0), v(t, t, -t), v(t, t, t)}},
		{fr(2, 1, 3, 1, 3, 2), [3]r3.Vec{v(0, 1, 0), v(t, -t, t), v(t, t, -t)}},
		{fr(2, 1, 3, 1, 4, 1), [3]r3.Vec{v(s, s, 0), v(t, t, t), v(1, 0, 0)}},
		{fr(2, 1, 3, 1, 4, 3), [3]r3.Vec{v(s, s, 0), v(-t, -t, -t), v(1, 0, 0)}},
		{fr(2, 1, 3, 1, 5, 1), [3]r3.Vec{v(a, b, 0.5), v(t, t, t), v(0, p, q)}},
		{fr(2, 1, 3, 1, 5, 2), [3]r3.Vec{v(0.5, -a, b), v(g, h, 0), v(0, p, q)}},
		{fr(2, 1, 3, 1, 5, 3), [3]r3.Vec{v(0, 1, 0), v(g, -h, 0), v(0, p, q)}},
		{fr(2, 1, 3, 1, 5, 4), [3]r3.Vec{v(a, b, 0.5), v(0, -g, -h), v(0, p, q)}},
		{fr(2, 1, 3, 2, 3, 2), [3]r3.Vec{v(0, -1, 0), v(t, t, -t), v(t, t, t)}},
		{fr(2, 1, 3, 2, 4, 1), [3]r3.Vec{v(-s, s, 0), v(-t, t, -t), v(1, 0, 0)}},
		{fr(2, 1, 3, 2, 4, 3), [3]r3.Vec{v(-s, 0, -s), v(t, t, t), v(1, 0, 0)}},
		{fr(2, 1, 3, 2, 5, 1), [3]r3.Vec{v(a, -b, -0.5), v(t, -t, -t), v(0, p, q)}},
		{fr(2, 1, 3, 2, 5, 2), [3]r3.Vec{v(0.5, a, -b), v(g, -h, 0), v(0, p, q)}},
		{fr(2, 1, 3, 2, 5, 3), [3]r3.Vec{v(0, -1, 0), v(g, h, 0), v(0, p, q)}},
		{fr(2, 1, 3, 2, 5, 4), [3]r3.Vec{v(-0.5, -a, -b), v(t, t, t), v(0, p, q)}},
		{fr(2, 1, 5, 1, 5, 2), [3]r3.Vec{v(a, b, 0.5), v(-p, q, 0), v(0, p, q)}},
		{fr(2, 1, 5, 1, 5, 3), [3]r3.Vec{v(a, b, 0.5), v(p, -q, 0), v(0, p, q)}},
		{fr(2, 1, 5, 2, 5, 4), [3]r3.Vec{v(a, -b, -0.5), v(0, p, q), v(-p, -q, 0)}},
		{fr(2, 1, 5, 3, 5, 4), [3]r3.Vec{v(a, -b, -0.5), v(0, p, q), v(p, q, 0)}},
		{fr(3, 1, 3, 1, 3, 2), [3]r3.Vec{v(t, t, -t), v(t, -t, t), v(t, t, t)}},
		{fr(3, 1, 3, 1, 5, 2), [3]r3.Vec{v(t, t, t), v(h, 0, g), v(0, p, q)}},
		{fr(3, 1, 3, 1, 5, 4), [3]r3.Vec{v(g, h, 0), v(-t, -t, t), v(0, p, q)}},
		{fr(3, 1, 3, 2, 5, 1), [3]r3.Vec{v(g, -h, 0), v(g, h, 0), v(0, p, q)}},
		{fr(3, 1, 3, 2, 5, 3), [3]r3.Vec{v(0, -g, -h), v(t, t, t), v(0, p, q)}},
		{fr(3, 1, 4, 1, 4, 3), [3]r3.Vec{v(t, t, -t), v(0, 0, 1), v(0, 1, 0)}},
		{fr(3, 1, 5, 1, 5, 3), [3]r3.Vec{v(t, t, t), v(0, -p, q), v(0, p, q)}},
		{fr(3, 1, 5, 1, 5, 4), [3]r3.Vec{v(t, t, t), v(-p, -q, 0), v(0, p, q)}},
		{fr(3, 1, 5, 2, 5, 3), [3]r3.Vec{v(g, -h, 0), v(0, p, q), v(p, q, 0)}},
		{fr(3, 1, 5, 2, 5, 4), [3]r3.Vec{v(t, -t, -t), v(0, p, q), v(p, q, 0)}},
		{fr(3, 2, 3, 2, 3, 2), [3]r3.Vec{v(t, t, -t), v(t, -t, t), v(-t, t, t)}},
		{fr(3, 2, 3, 2, 5, 2), [3]r3.Vec{v(t, -t, -t), v(h, 0, -g), v(0, p, q)}},
		{fr(3, 2, 3, 2, 5, 4), [3]r3.Vec{v(g, -h, 0), v(-t, t, -t), v(0, p, q)}},
		{fr(3, 2, 4, 1, 4, 1), [3]r3.Vec{v(t, t, -t), v(0, 1, 0), v(1, 0, 0)}},
		{fr(3, 2, 4, 3, 4, 3), [3]r3.Vec{v(t, t, -t), v(0, -1, 0), v(0, 0, 1)}},
		{fr(3, 2, 5, 1, 5, 1), [3]r3.Vec{v(t, t, t), v(0, p, q), v(p, q, 0)}},
		{fr(3, 2, 5, 1, 5, 2), [3]r3.Vec{v(t, t, t), v(p, -q, 0), v(0, p, q)}},
		{fr(3, 2, 5, 2, 5, 2), [3]r3.Vec{v(g, h, 0), v(0, p, q), v(p, -q, 0)}},
		{fr(3, 2, 5, 3, 5, 3), [3]r3.Vec{v(t, t, -t), v(0, p, q), v(p, -q, 0)}},
		{fr(3, 2, 5, 3, 5, 4), [3]r3.Vec{v(t, -t, -t), v(0, p, q), v(0, p, -q)}},
		{fr(3, 2, 5, 4, 5, 4), [3]r3.Vec{v(t, -t, -t), v(0, p, q), v(-p, q, 0)}},
		{fr(5, 1, 5, 1, 5, 4), [3]r3.Vec{v(0, p, q), v(p, -q, 0), v(0, -p, q)}},
		{fr(5, 2, 5, 2, 5, 2), [3]r3.Vec{v(0, p, q), v(p, q, 0), v(-p, q, 0)}},
		{fr(5, 2, 5, 3, 5, 3), [3]r3.Vec{v(p, -q, 0), v(0, p, q), v(p, q, 0)}},
		{fr(5, 4, 5, 4, 5, 4), [3]r3.Vec{v(0, p, q), v(p, -q, 0), v(0, p, -q)}},
	}
}

// schwarzVerts returns the vertex vectors for a normalized (sorted)
// fraction triple. Dihedral triangles (two numerators equal 2) are not
// tabulated; they are computed analytically on the equator and pole.
func schwarzVerts(norm [3]Fraction) ([3]r3.Vec, bool) {
	if norm[1].N == 2 { // dihedral
		ang := math.Pi * float64(norm[2].D) / float64(norm[2].N)
		return [3]r3.Vec{
			{X: 1},
			d3.Rotate(r3.Vec{Z: 1}, ang).Transform(r3.Vec{X: 1}),
			{Z: 1},
		}, true
	}
	for _, e := range schwarzTable {
		if e.fracs == norm {
			return e.verts, true
		}
	}
	return [3]r3.Vec{}, false
}

// assignVerts resolves the vertex vectors of the fundamental triangle
// in the symbol's original fraction order.
func assignVerts(fracs [3]Fraction) ([3]r3.Vec, bool) {
	fr := fracs
	companion := [3]int{0, 1, 2}
	normalizeFracs(&fr, &companion)
	norm, ok := schwarzVerts(fr)
	if !ok {
		return [3]r3.Vec{}, false
	}
	var verts [3]r3.Vec
	for i := 0; i < 3; i++ {
		verts[companion[i]] = norm[i]
	}
	return verts, true
}
