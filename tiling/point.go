package tiling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a pattern point: barycentric coordinates over a meta
// triangle (X, Y, Z weight the V, E, F corners) and the inclusion class
// deduced from which coordinates are nonzero.
type Point struct {
	Coords r3.Vec
	Incl   Inclusion
}

var pointCoordRe = regexp.MustCompile(`([-+]?([0-9]*\.[0-9]+|[0-9]+))?[VEF]`)

// parsePoint reads a coordinate string such as "V", "E2F" or "0.5VF".
// Each letter may appear once; a missing coefficient is 1.
func parsePoint(s string) (Point, error) {
	var pt Point
	locs := pointCoordRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return pt, fmt.Errorf("%w: %q", ErrPointCoords, s)
	}
	var seen [3]bool
	prev := 0
	for _, loc := range locs {
		if loc[0] != prev {
			return pt, fmt.Errorf("%w: stray characters %q", ErrPointCoords, s[prev:loc[0]])
		}
		tok := s[loc[0]:loc[1]]
		idx := strings.IndexByte("VEF", tok[len(tok)-1])
		if seen[idx] {
			return pt, fmt.Errorf("%w: coordinate %c given more than once", ErrPointCoords, tok[len(tok)-1])
		}
		seen[idx] = true
		coef := 1.0
		if len(tok) > 1 {
			var err error
			coef, err = strconv.ParseFloat(tok[:len(tok)-1], 64)
			if err != nil {
				return pt, fmt.Errorf("%w: %q", ErrPointCoords, tok)
			}
		}
		setComp(&pt.Coords, idx, coef)
		prev = loc[1]
	}
	if prev != len(s) {
		return pt, fmt.Errorf("%w: stray characters %q", ErrPointCoords, s[prev:])
	}
	if pt.Coords == (r3.Vec{}) {
		return pt, fmt.Errorf("%w: coordinates cannot all be zero", ErrPointCoords)
	}
	pt.Incl = inclusionOf(pt.Coords)
	return pt, nil
}

// inclusionOf classifies a coordinate triple by its nonzero components.
func inclusionOf(v r3.Vec) Inclusion {
	mask := 0
	if v.X != 0 {
		mask |= 1
	}
	if v.Y != 0 {
		mask |= 2
	}
	if v.Z != 0 {
		mask |= 4
	}
	// mask: V, E, VE, F, FV, EF, VEF
	return [8]Inclusion{0, InclV, InclE, InclVE, InclF, InclFV, InclEF, InclVEF}[mask]
}

func comp(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func setComp(v *r3.Vec, i int, x float64) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
}

// coordString formats coordinates in coefficient-letter form, omitting
// zero components and unit coefficients.
func coordString(v r3.Vec) string {
	const VEF = "VEF"
	var b strings.Builder
	for i := 0; i < 3; i++ {
		c := comp(v, i)
		if c != 0 {
			if c != 1 {
				b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
			}
			b.WriteByte(VEF[i])
		}
	}
	return b.String()
}
