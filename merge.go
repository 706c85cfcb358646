package polyhedra

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// MergeCoincident merges duplicate elements of the classes named in
// kinds ("v", "e", "f" in any combination) that coincide within tol.
// Vertices are clustered on an integer lattice of pitch tol; faces and
// edges are deduplicated up to cyclic rotation and reversal after the
// vertex remap. The first occurrence of each element survives and keeps
// its color.
func MergeCoincident(g *Geometry, kinds string, tol float64) {
	if strings.Contains(kinds, "v") {
		mergeVerts(g, tol)
	}
	if strings.Contains(kinds, "f") {
		mergeFaces(g)
	}
	if strings.Contains(kinds, "e") {
		mergeEdges(g)
	}
}

func mergeVerts(g *Geometry, tol float64) {
	if tol <= 0 {
		tol = 1e-12
	}
	ri := 1 / tol
	cache := make(map[[3]int64]int, len(g.Verts))
	vmap := make([]int, len(g.Verts))
	var kept []r3.Vec
	for i, v := range g.Verts {
		ci := [3]int64{
			int64(math.Round(v.X * ri)),
			int64(math.Round(v.Y * ri)),
			int64(math.Round(v.Z * ri)),
		}
		found := -1
		// probe the neighboring cells too so near-boundary points
		// within tol of each other still cluster
	probe:
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					j, ok := cache[[3]int64{ci[0] + dx, ci[1] + dy, ci[2] + dz}]
					if ok && r3.Norm(r3.Sub(kept[j], v)) <= tol {
						found = j
						break probe
					}
				}
			}
		}
		if found < 0 {
			found = len(kept)
			kept = append(kept, v)
			cache[ci] = found
		}
		vmap[i] = found
	}
	if len(kept) == len(g.Verts) {
		return
	}
	// keep the first color assigned to each surviving vertex
	if g.cols[Verts] != nil {
		next := make(map[int]Color)
		for i := range g.Verts {
			if c, ok := g.cols[Verts][i]; ok {
				if _, taken := next[vmap[i]]; !taken {
					next[vmap[i]] = c
				}
			}
		}
		g.cols[Verts] = next
	}
	g.Verts = kept
	for _, face := range g.Faces {
		for i, v := range face {
			face[i] = vmap[v]
		}
	}
	for i, e := range g.Edges {
		a, b := vmap[e[0]], vmap[e[1]]
		if a > b {
			a, b = b, a
		}
		g.Edges[i] = [2]int{a, b}
	}
}

// faceKey returns the lexicographically smallest rotation of the face
// cycle, read in either direction, as a comparable string key.
func faceKey(face []int) string {
	n := len(face)
	best := ""
	var b strings.Builder
	for dir := 0; dir < 2; dir++ {
		for s := 0; s < n; s++ {
			b.Reset()
			for k := 0; k < n; k++ {
				i := s + k
				if dir == 1 {
					i = s - k
				}
				b.WriteString(itoaKey(face[((i%n)+n)%n]))
			}
			if best == "" || b.String() < best {
				best = b.String()
			}
		}
	}
	return best
}

func itoaKey(v int) string {
	const digits = "0123456789"
	if v == 0 {
		return "0,"
	}
	var buf [24]byte
	i := len(buf)
	buf[i-1] = ','
	i--
	for v > 0 {
		i--
		buf[i] = digits[v%10]
		v /= 10
	}
	return string(buf[i:])
}

func mergeFaces(g *Geometry) {
	seen := make(map[string]bool, len(g.Faces))
	var dels []int
	for i, face := range g.Faces {
		k := faceKey(face)
		if seen[k] {
			dels = append(dels, i)
			continue
		}
		seen[k] = true
	}
	g.deleteFaces(dels)
}

func mergeEdges(g *Geometry) {
	seen := make(map[[2]int]bool, len(g.Edges))
	var dels []int
	for i, e := range g.Edges {
		if seen[e] {
			dels = append(dels, i)
			continue
		}
		seen[e] = true
	}
	g.deleteEdges(dels)
}
