package wythoff

import (
	"math"

	"github.com/soypat/polyhedra"
	"github.com/soypat/polyhedra/internal/d3"
	"github.com/soypat/polyhedra/symmetry"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// mergeTol is the coincidence tolerance when fusing replicated
	// faces and vertices.
	mergeTol = 1e-8
	// fermatTol is the accepted deviation of the Fermat point apex
	// angles from 2π/3.
	fermatTol = 1e-10
)

// Polyhedron builds the uniform polyhedron described by the symbol.
// The returned geometry is valid even when the error is an
// *InaccuracyError, which only reports imprecise Fermat-point
// convergence on snub symbols.
func (s Symbol) Polyhedron() (*polyhedra.Geometry, error) {
	sym, err := symmetry.New(s.TriangleSymmetry())
	if err != nil {
		return nil, err
	}
	geom := &polyhedra.Geometry{}
	var warn error
	v := s.verts

	switch s.Bar {
	case 0:
		pt, w, err := s.snubPoint()
		if err != nil {
			return nil, err
		}
		warn = w
		addFaces(geom, pt, s.Fracs[0].N, s.Fracs[0].D, v[0], 0, sym)
		addFaces(geom, pt, s.Fracs[1].N, s.Fracs[1].D, v[1], 1, sym)
		addFaces(geom, pt, s.Fracs[2].N, s.Fracs[2].D, v[2], 2, sym)

		// snub triangle faces
		dir := 1.0
		if d3.Triple(v[0], v[1], v[2]) > 0 {
			dir = -1
		}
		triCent := pt
		triCent = r3.Add(triCent, d3.Rotate(v[0], dir*2*math.Pi*float64(s.Fracs[0].D)/float64(s.Fracs[0].N)).Transform(pt))
		triCent = r3.Add(triCent, d3.Rotate(v[1], -dir*2*math.Pi*float64(s.Fracs[1].D)/float64(s.Fracs[1].N)).Transform(pt))
		addFaces(geom, pt, 3, 2, triCent, 3, sym)
	case 1:
		pt := v[0]
		if s.Fracs[1].N == 2 && s.Fracs[2].N == 2 {
			// p|2 2 is a degenerate pair of antipodal points; keep
			// them joined by an edge so the result has a size
			geom.AddVert(pt)
			geom.AddVert(r3.Scale(-1, pt))
			geom.AddEdge(0, 1)
		} else {
			addFaces(geom, pt, s.Fracs[1].N, s.Fracs[1].D, v[1], 1, sym)
			addFaces(geom, pt, s.Fracs[2].N, s.Fracs[2].D, v[2], 2, sym)
		}
	case 2:
		n0 := angleBisectorNorm(v[2], v[0], v[1])
		n1 := r3.Cross(v[0], v[1])
		pt := r3.Unit(r3.Cross(n0, n1))

		addFaces(geom, pt, s.Fracs[0].N, s.Fracs[0].D, v[0], 0, sym)
		addFaces(geom, pt, s.Fracs[1].N, s.Fracs[1].D, v[1], 1, sym)
		// all hemis apart from 3/2 3|3 have duplicated faces
		polyhedra.MergeCoincident(geom, "vf", mergeTol)
		addFaces(geom, pt, 2*s.Fracs[2].N, s.Fracs[2].D, v[2], 2, sym)
	case 3:
		n0 := angleBisectorNorm(v[1], v[2], v[0])
		n1 := angleBisectorNorm(v[2], v[0], v[1])
		pt := r3.Unit(r3.Cross(n0, n1))

		addFaces(geom, pt, 2*s.Fracs[0].N, s.Fracs[0].D, v[0], 0, sym)
		addFaces(geom, pt, 2*s.Fracs[1].N, s.Fracs[1].D, v[1], 1, sym)
		addFaces(geom, pt, 2*s.Fracs[2].N, s.Fracs[2].D, v[2], 2, sym)
	}

	polyhedra.MergeCoincident(geom, "v", mergeTol)
	return geom, warn
}

// snubPoint finds the construction point for a `|p q r` symbol: the
// circumcenter of the reflections of the triangle's Fermat point in
// its three sides.
func (s Symbol) snubPoint() (pt r3.Vec, warn, err error) {
	v := s.verts
	// find the smallest fraction (largest angle)
	maxFract := 0
	for i := 0; i < 3; i++ {
		if float64(s.Fracs[i].N)/float64(s.Fracs[i].D) <=
			float64(s.Fracs[maxFract].N)/float64(s.Fracs[maxFract].D) {
			maxFract = i
		}
	}
	if 2*s.Fracs[maxFract].N < 3*s.Fracs[maxFract].D &&
		s.Fracs[(maxFract+1)%3].N == 2 && s.Fracs[(maxFract+2)%3].N == 2 {
		return r3.Vec{}, nil, ErrNotConstructible
	}

	// triangles with a single 3/2 vertex are degenerate; the solution
	// generally lies at that vertex and needs special processing
	cnt32, pos32 := 0, 0
	for i := 0; i < 3; i++ {
		if s.Fracs[i] == (Fraction{N: 3, D: 2}) {
			cnt32++
			pos32 = i
		}
	}
	degenerate := cnt32 == 1

	f1, f2 := s.Fracs[(pos32+1)%3], s.Fracs[(pos32+2)%3]
	if cnt32 == 1 && f1 == f2 && f1.N != 2 {
		// non-dihedral isosceles triangle with 3/2 apex
		if f1.N == 5 && (f1.D == 3 || f1.D == 4) {
			// |3/2 5/3 5/3 and |3/2 5/4 5/4 have a different
			// construction point
			mirror := r3.Cross(v[(pos32+2)%3], v[pos32])
			pt = d3.Reflect(mirror).Transform(v[(pos32+1)%3])
		} else {
			// take the apex as Fermat point and use the smallest
			// circumcentre
			pt = r3.Add(v[(pos32+1)%3], v[(pos32+2)%3])
		}
	} else {
		fpt, delta := fermatPoint(v[0], v[1], v[2], degenerate)
		if delta > fermatTol {
			warn = &InaccuracyError{Delta: delta}
		}
		// reflect in the sides of the triangle; the construction
		// point is the circumcentre of the three images
		u0 := d3.Reflect(r3.Cross(v[1], v[2])).Transform(fpt)
		u1 := d3.Reflect(r3.Cross(v[2], v[0])).Transform(fpt)
		u2 := d3.Reflect(r3.Cross(v[0], v[1])).Transform(fpt)
		pt = r3.Cross(r3.Sub(u0, u1), r3.Sub(u1, u2))
	}
	return r3.Unit(pt), warn, nil
}

// fermatPoint iterates towards the spherical Fermat point of the
// triangle v0 v1 v2. A fixed large iteration count with a small step is
// used; degenerate triangles are sensitive and get a longer, finer
// schedule. The returned delta is the largest deviation of an apex
// angle from 2π/3.
func fermatPoint(v0, v1, v2 r3.Vec, degenerate bool) (r3.Vec, float64) {
	v := [3]r3.Vec{v0, v1, v2}
	pt := r3.Unit(r3.Add(r3.Add(v0, v1), v2)) // approximate centroid
	iters, step := 1000, 0.1
	if degenerate {
		iters, step = 50000, 0.01
	}
	for n := 0; n < iters; n++ {
		var offset r3.Vec
		for _, vi := range v {
			offset = r3.Add(offset, r3.Unit(r3.Sub(d3.Component(vi, pt), vi)))
		}
		pt = r3.Unit(r3.Add(pt, r3.Scale(step, offset)))
	}

	maxDelta := 0.0
	for i := 0; i < 3; i++ {
		ang := d3.AngleAroundAxis(v[i], v[(i+1)%3], pt)
		if ang > math.Pi {
			ang = 2*math.Pi - ang
		}
		if delta := math.Abs(2*math.Pi/3 - ang); delta > maxDelta {
			maxDelta = delta
		}
	}
	return pt, maxDelta
}

// angleBisectorNorm returns the normal of the plane bisecting the
// triangle's angle at v0.
func angleBisectorNorm(v0, v1, v2 r3.Vec) r3.Vec {
	ang := d3.AngleAroundAxis(v1, v2, v0)
	return d3.Rotate(v0, ang/2).Transform(r3.Cross(v0, v1))
}

// addFaces emits the {num/denom} polygon traced by pt around axis and
// replicates it under the symmetry group, fusing coincident elements
// of the replication. Polygons reduced to two sides become edges.
func addFaces(geom *polyhedra.Geometry, pt r3.Vec, num, denom int, axis r3.Vec, col polyhedra.Color, sym symmetry.Group) {
	// avoid extra windings
	f := gcd(num, denom)
	num /= f
	denom /= f

	ang := 2 * math.Pi * float64(denom) / float64(num)
	face := &polyhedra.Geometry{}
	idxs := make([]int, num)
	for i := 0; i < num; i++ {
		idxs[i] = face.AddVert(d3.Rotate(axis, ang*float64(i)).Transform(pt))
	}
	if num > 2 {
		face.AddFaceColored(idxs, col)
	} else {
		face.AddEdgeColored(idxs[0], idxs[1], col)
	}

	repl := &polyhedra.Geometry{}
	symmetry.Repeat(repl, face, sym)
	polyhedra.MergeCoincident(repl, "vfe", mergeTol)
	geom.Append(repl)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
