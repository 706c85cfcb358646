// Package polyhedra provides an indexed polyhedron model used by the
// Wythoff symbol constructor and the general tiling engine. A Geometry
// holds vertex coordinates, oriented faces and explicit edges, with
// optional palette colors per element.
package polyhedra

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Element selects a class of geometry elements.
type Element int

const (
	Verts Element = iota
	Edges
	Faces
)

// Color is a palette index attached to a geometry element.
type Color int

// Geometry is an indexed polyhedron. Faces are cyclic vertex index
// lists; Edges holds explicit edges, which are kept separate from the
// implicit edges derived from face boundaries.
type Geometry struct {
	Verts []r3.Vec
	Faces [][]int
	Edges [][2]int

	cols [3]map[int]Color
}

// AddVert appends a vertex and returns its index.
func (g *Geometry) AddVert(v r3.Vec) int {
	g.Verts = append(g.Verts, v)
	return len(g.Verts) - 1
}

// AddVertColored appends a vertex with a color and returns its index.
func (g *Geometry) AddVertColored(v r3.Vec, c Color) int {
	i := g.AddVert(v)
	g.SetColor(Verts, i, c)
	return i
}

// AddFace appends a face given as a cyclic vertex index list and
// returns its index. The slice is stored, not copied.
func (g *Geometry) AddFace(face []int) int {
	g.Faces = append(g.Faces, face)
	return len(g.Faces) - 1
}

// AddFaceColored appends a face with a color and returns its index.
func (g *Geometry) AddFaceColored(face []int, c Color) int {
	i := g.AddFace(face)
	g.SetColor(Faces, i, c)
	return i
}

// AddEdge appends an explicit edge and returns its index.
func (g *Geometry) AddEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	g.Edges = append(g.Edges, [2]int{a, b})
	return len(g.Edges) - 1
}

// AddEdgeColored appends an explicit edge with a color.
func (g *Geometry) AddEdgeColored(a, b int, c Color) int {
	i := g.AddEdge(a, b)
	g.SetColor(Edges, i, c)
	return i
}

// SetColor colors element i of class k.
func (g *Geometry) SetColor(k Element, i int, c Color) {
	if g.cols[k] == nil {
		g.cols[k] = make(map[int]Color)
	}
	g.cols[k][i] = c
}

// ColorOf reports the color of element i of class k.
func (g *Geometry) ColorOf(k Element, i int) (Color, bool) {
	c, ok := g.cols[k][i]
	return c, ok
}

// ClearColors removes all element colors.
func (g *Geometry) ClearColors() {
	g.cols = [3]map[int]Color{}
}

// Clear empties the geometry.
func (g *Geometry) Clear() {
	*g = Geometry{}
}

// Copy returns a deep copy of the geometry.
func (g *Geometry) Copy() *Geometry {
	out := &Geometry{
		Verts: append([]r3.Vec(nil), g.Verts...),
		Edges: append([][2]int(nil), g.Edges...),
		Faces: make([][]int, len(g.Faces)),
	}
	for i, f := range g.Faces {
		out.Faces[i] = append([]int(nil), f...)
	}
	for k := range g.cols {
		if g.cols[k] == nil {
			continue
		}
		out.cols[k] = make(map[int]Color, len(g.cols[k]))
		for i, c := range g.cols[k] {
			out.cols[k][i] = c
		}
	}
	return out
}

// Append adds a copy of o's elements to g, offsetting o's vertex
// indices past g's existing vertices. Element colors are carried over.
func (g *Geometry) Append(o *Geometry) {
	vOff, eOff, fOff := len(g.Verts), len(g.Edges), len(g.Faces)
	g.Verts = append(g.Verts, o.Verts...)
	for _, e := range o.Edges {
		g.Edges = append(g.Edges, [2]int{e[0] + vOff, e[1] + vOff})
	}
	for _, f := range o.Faces {
		nf := make([]int, len(f))
		for i, v := range f {
			nf[i] = v + vOff
		}
		g.Faces = append(g.Faces, nf)
	}
	off := [3]int{vOff, eOff, fOff}
	for k := range o.cols {
		for i, c := range o.cols[k] {
			g.SetColor(Element(k), i+off[k], c)
		}
	}
}
