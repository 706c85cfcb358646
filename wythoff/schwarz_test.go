package wythoff

import (
	"fmt"
	"math"
	"testing"

	"github.com/soypat/polyhedra/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSchwarzTableSize(t *testing.T) {
	if len(schwarzTable) != 44 {
		t.Fatalf("table has %d entries, want 44", len(schwarzTable))
	}
	seen := make(map[[3]Fraction]bool)
	for _, e := range schwarzTable {
		if seen[e.fracs] {
			t.Errorf("duplicate entry %v", e.fracs)
		}
		seen[e.fracs] = true
	}
}

func TestSchwarzTableNormalized(t *testing.T) {
	for _, e := range schwarzTable {
		fr := e.fracs
		var aux [3]int
		normalizeFracs(&fr, &aux)
		if fr != e.fracs {
			t.Errorf("entry %v is not in normalized order", e.fracs)
		}
	}
}

func TestSchwarzTableVertsUnit(t *testing.T) {
	for _, e := range schwarzTable {
		for i, v := range e.verts {
			if math.Abs(r3.Norm(v)-1) > 1e-12 {
				t.Errorf("entry %v vertex %d has length %g", e.fracs, i, r3.Norm(v))
			}
		}
	}
}

// Every tabulated triangle must have the angle dπ/n at the corner of
// fraction n/d.
func TestSchwarzTableAngles(t *testing.T) {
	for _, e := range schwarzTable {
		for i := 0; i < 3; i++ {
			want := math.Pi * float64(e.fracs[i].D) / float64(e.fracs[i].N)
			ang := d3.AngleAroundAxis(e.verts[(i+1)%3], e.verts[(i+2)%3], e.verts[i])
			if ang > math.Pi {
				ang = 2*math.Pi - ang
			}
			if math.Abs(ang-want) > 1e-9 {
				t.Errorf("entry %v corner %d angle = %g, want %g", e.fracs, i, ang, want)
			}
		}
	}
}

// Sorting any parsed symbol's fractions yields either a Schwarz table
// key or a dihedral triple.
func TestSchwarzLookupCoverage(t *testing.T) {
	for _, e := range schwarzTable {
		sym := fmt.Sprintf("%s %s %s|", e.fracs[0], e.fracs[1], e.fracs[2])
		s, err := Parse(sym)
		if err != nil {
			t.Fatalf("Parse(%q): %v", sym, err)
		}
		verts, ok := assignVerts(s.Fracs)
		if !ok {
			t.Fatalf("assignVerts failed for %q", sym)
		}
		if verts != e.verts {
			t.Errorf("%q: verts differ from table", sym)
		}
	}
	// dihedral triangles are computed, not tabulated
	if _, ok := schwarzVerts([3]Fraction{{2, 1}, {2, 1}, {7, 1}}); !ok {
		t.Error("dihedral lookup failed")
	}
}

func TestAssignVertsPermutes(t *testing.T) {
	// 5/2 3 2 is entry (2,1),(3,1),(5,2) re-permuted
	verts, ok := assignVerts([3]Fraction{{5, 2}, {3, 1}, {2, 1}})
	if !ok {
		t.Fatal("assignVerts failed")
	}
	norm, _ := schwarzVerts([3]Fraction{{2, 1}, {3, 1}, {5, 2}})
	if verts[0] != norm[2] || verts[1] != norm[1] || verts[2] != norm[0] {
		t.Error("vertex permutation does not follow the fraction order")
	}
}
