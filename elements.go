package polyhedra

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// FaceCentroid returns the centroid of face f.
func (g *Geometry) FaceCentroid(f int) r3.Vec {
	var c r3.Vec
	face := g.Faces[f]
	for _, v := range face {
		c = r3.Add(c, g.Verts[v])
	}
	return r3.Scale(1/float64(len(face)), c)
}

// FaceNormal returns the unit normal of face f computed with Newell's
// method, which tolerates slightly non-planar polygons.
func (g *Geometry) FaceNormal(f int) r3.Vec {
	var n r3.Vec
	face := g.Faces[f]
	for i, vi := range face {
		vj := face[(i+1)%len(face)]
		a, b := g.Verts[vi], g.Verts[vj]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return r3.Unit(n)
}

// EdgeCentroid returns the midpoint of the edge joining vertices a and b.
func (g *Geometry) EdgeCentroid(a, b int) r3.Vec {
	return r3.Scale(0.5, r3.Add(g.Verts[a], g.Verts[b]))
}

// ImplicitEdges returns the undirected edges appearing in face
// boundaries, each edge once with smaller index first, ordered by first
// appearance.
func (g *Geometry) ImplicitEdges() [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, face := range g.Faces {
		for i, a := range face {
			b := face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// EdgeFacePairs maps each implicit edge to the faces incident to it.
func (g *Geometry) EdgeFacePairs() map[[2]int][]int {
	pairs := make(map[[2]int][]int)
	for f, face := range g.Faces {
		for i, a := range face {
			b := face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			pairs[e] = append(pairs[e], f)
		}
	}
	return pairs
}

// FreeVerts returns the indices of vertices referenced by no face and
// no explicit edge.
func (g *Geometry) FreeVerts() []int {
	used := make([]bool, len(g.Verts))
	for _, face := range g.Faces {
		for _, v := range face {
			used[v] = true
		}
	}
	for _, e := range g.Edges {
		used[e[0]] = true
		used[e[1]] = true
	}
	var free []int
	for i, u := range used {
		if !u {
			free = append(free, i)
		}
	}
	return free
}

// DeleteVerts removes the listed vertices, remapping face and edge
// indices. Faces left with fewer than two vertices are removed.
func (g *Geometry) DeleteVerts(dels []int) {
	if len(dels) == 0 {
		return
	}
	dels = append([]int(nil), dels...)
	sort.Ints(dels)
	vmap := make([]int, len(g.Verts))
	delCnt := 0
	for i := range g.Verts {
		if delCnt < len(dels) && i == dels[delCnt] {
			delCnt++
			vmap[i] = -1
		} else {
			vmap[i] = i - delCnt
			g.Verts[vmap[i]] = g.Verts[i]
		}
	}
	g.Verts = g.Verts[:len(g.Verts)-delCnt]
	g.remapColors(Verts, vmap)

	var delFaces []int
	for i, face := range g.Faces {
		cur := 0
		for _, v := range face {
			if vmap[v] >= 0 {
				face[cur] = vmap[v]
				cur++
			}
		}
		g.Faces[i] = face[:cur]
		if cur < 2 {
			delFaces = append(delFaces, i)
		}
	}
	g.deleteFaces(delFaces)

	var delEdges []int
	for i, e := range g.Edges {
		a, b := vmap[e[0]], vmap[e[1]]
		if a < 0 || b < 0 {
			delEdges = append(delEdges, i)
			continue
		}
		g.Edges[i] = [2]int{a, b}
	}
	g.deleteEdges(delEdges)
}

func (g *Geometry) deleteFaces(dels []int) {
	if len(dels) == 0 {
		return
	}
	fmap := keepMap(len(g.Faces), dels)
	cur := 0
	for i, f := range g.Faces {
		if fmap[i] >= 0 {
			g.Faces[cur] = f
			cur++
		}
	}
	g.Faces = g.Faces[:cur]
	g.remapColors(Faces, fmap)
}

func (g *Geometry) deleteEdges(dels []int) {
	if len(dels) == 0 {
		return
	}
	emap := keepMap(len(g.Edges), dels)
	cur := 0
	for i, e := range g.Edges {
		if emap[i] >= 0 {
			g.Edges[cur] = e
			cur++
		}
	}
	g.Edges = g.Edges[:cur]
	g.remapColors(Edges, emap)
}

// keepMap builds an old-to-new index map deleting the sorted dels list.
func keepMap(n int, dels []int) []int {
	m := make([]int, n)
	delCnt := 0
	for i := 0; i < n; i++ {
		if delCnt < len(dels) && i == dels[delCnt] {
			delCnt++
			m[i] = -1
		} else {
			m[i] = i - delCnt
		}
	}
	return m
}

func (g *Geometry) remapColors(k Element, m []int) {
	if g.cols[k] == nil {
		return
	}
	next := make(map[int]Color)
	for i, c := range g.cols[k] {
		if i < len(m) && m[i] >= 0 {
			next[m[i]] = c
		}
	}
	g.cols[k] = next
}
