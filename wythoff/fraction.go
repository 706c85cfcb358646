// Package wythoff interprets classical Wythoff symbols `p q r` with a
// bar, building uniform polyhedra from the Schwarz triangle vertex
// tables by replicating faces under the triangle's rotation group.
package wythoff

import (
	"fmt"
	"strconv"
)

// Fraction is a rational n/d describing a triangle corner angle dπ/n
// (or a star polygon {n/d} in polygon contexts). Invariants: n ≥ 2 and
// 1 ≤ d < n; the parser reduces d modulo n on input.
type Fraction struct {
	N, D int
}

func (f Fraction) String() string {
	if f.D > 1 {
		return strconv.Itoa(f.N) + "/" + strconv.Itoa(f.D)
	}
	return strconv.Itoa(f.N)
}

// less orders fractions lexicographically on (n, d).
func (f Fraction) less(o Fraction) bool {
	if f.N != o.N {
		return f.N < o.N
	}
	return f.D < o.D
}

// normalizeFracs sorts the three fractions ascending, swapping the
// companion indices in lockstep. Three comparisons suffice.
func normalizeFracs(fr *[3]Fraction, companion *[3]int) {
	swap := func(i, j int) {
		fr[i], fr[j] = fr[j], fr[i]
		companion[i], companion[j] = companion[j], companion[i]
	}
	if fr[2].less(fr[1]) {
		swap(2, 1)
	}
	if fr[1].less(fr[0]) {
		swap(1, 0)
	}
	// smallest fraction is now in first place
	if fr[2].less(fr[1]) {
		swap(2, 1)
	}
}

// triangleSymmetry returns the point group label of the Schwarz
// triangle: dihedral when the two smallest numerators are 2, otherwise
// icosahedral, octahedral or tetrahedral by the largest numerator.
func triangleSymmetry(fracs [3]Fraction) string {
	fr := fracs
	var aux [3]int
	normalizeFracs(&fr, &aux)
	switch {
	case fr[1].N == 2:
		return fmt.Sprintf("D%d", fr[2].N)
	case fr[2].N == 5:
		return "I"
	case fr[2].N == 4:
		return "O"
	case fr[2].N == 3:
		return "T"
	}
	return ""
}
