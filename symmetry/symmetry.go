// Package symmetry provides the finite rotation point groups used to
// replicate polyhedron faces: tetrahedral T, octahedral O, icosahedral
// I and the dihedral family Dn. Groups are generated by closure from
// two rotation generators, in the same axis conventions as the Schwarz
// triangle vertex tables (2-fold axes on the coordinate axes, 5-fold
// axes through (0, 1, φ)).
package symmetry

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/soypat/polyhedra"
	"github.com/soypat/polyhedra/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownGroup is returned for a symmetry label that is not one of
// "T", "O", "I" or "D<n>" with n ≥ 1.
var ErrUnknownGroup = errors.New("symmetry: unknown point group label")

// Group is a finite set of rotations forming a point group.
type Group struct {
	name string
	xfs  []d3.Transform
}

const matchTol = 1e-9

// New builds the rotation group named by label.
func New(label string) (Group, error) {
	phi := (1 + math.Sqrt(5)) / 2
	var gens []d3.Transform
	switch {
	case label == "T":
		gens = []d3.Transform{
			d3.Rotate(r3.Vec{X: 1, Y: 1, Z: 1}, 2*math.Pi/3),
			d3.Rotate(r3.Vec{Z: 1}, math.Pi),
		}
	case label == "O":
		gens = []d3.Transform{
			d3.Rotate(r3.Vec{X: 1, Y: 1, Z: 1}, 2*math.Pi/3),
			d3.Rotate(r3.Vec{Z: 1}, math.Pi/2),
		}
	case label == "I":
		gens = []d3.Transform{
			d3.Rotate(r3.Vec{Y: 1, Z: phi}, 2*math.Pi/5),
			d3.Rotate(r3.Vec{X: 1, Y: 1, Z: 1}, 2*math.Pi/3),
		}
	case len(label) > 1 && label[0] == 'D':
		n, err := strconv.Atoi(label[1:])
		if err != nil || n < 1 {
			return Group{}, fmt.Errorf("%w: %q", ErrUnknownGroup, label)
		}
		gens = []d3.Transform{
			d3.Rotate(r3.Vec{Z: 1}, 2*math.Pi/float64(n)),
			d3.Rotate(r3.Vec{X: 1}, math.Pi),
		}
	default:
		return Group{}, fmt.Errorf("%w: %q", ErrUnknownGroup, label)
	}
	xfs, err := closure(gens)
	if err != nil {
		return Group{}, fmt.Errorf("group %q: %w", label, err)
	}
	return Group{name: label, xfs: xfs}, nil
}

// Name returns the label the group was built from.
func (g Group) Name() string { return g.name }

// Order returns the number of rotations in the group.
func (g Group) Order() int { return len(g.xfs) }

// Transforms returns the group elements. The identity is first.
func (g Group) Transforms() []d3.Transform { return g.xfs }

// closure multiplies generators into the set until no new element
// appears. The largest group handled is I with 60 elements; the bound
// guards against a generator set that does not close.
func closure(gens []d3.Transform) ([]d3.Transform, error) {
	const maxOrder = 120
	elems := []d3.Transform{{}}
	for grew := true; grew; {
		grew = false
		for i := 0; i < len(elems); i++ {
			for _, gen := range gens {
				p := elems[i].Mul(gen)
				if !contains(elems, p) {
					elems = append(elems, p)
					grew = true
					if len(elems) > maxOrder {
						return nil, errors.New("generators do not close into a finite group")
					}
				}
			}
		}
	}
	return elems, nil
}

func contains(xfs []d3.Transform, t d3.Transform) bool {
	for _, x := range xfs {
		if x.EqualWithin(t, matchTol) {
			return true
		}
	}
	return false
}

// Repeat appends to dst one transformed copy of src per group element.
// Coincident elements of the result are not merged; callers merge with
// the tolerance appropriate to their construction.
func Repeat(dst, src *polyhedra.Geometry, g Group) {
	for _, xf := range g.xfs {
		img := src.Copy()
		for i, v := range img.Verts {
			img.Verts[i] = xf.Transform(v)
		}
		dst.Append(img)
	}
}
