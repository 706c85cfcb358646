package tiling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ConwayOperator names a polyhedron-to-polyhedron transformation and
// the tile pattern implementing it.
type ConwayOperator struct {
	Short   string
	Name    string
	Pattern string
}

var conwayOperators = []ConwayOperator{
	// Equivalent: d, a, S
	{"d", "dual", "[F]0V,0E"},
	{"a", "ambo", "[E]0F,0V"},
	{"S", "seed", "[V]0E,0F"},

	{"j", "join", "[F,V]0_1E"},

	// Equivalent: k, n, u
	{"k", "kis", "[F,V]0_1v1v,1E"},
	{"n", "needle", "[V,F]1f0_1f,1E"},
	{"u", "subdivide", "[V,E]0_1e1e,1F"},

	// Equivalent: t, z, e (tile order to match b0=z and e1=e)
	{"t", "truncate", "[VE]0V0E,0V,0E"},
	{"z", "zip", "[EF]0E0F,0F,0E"},
	{"e", "expand", "[FV]0V,0F,0F0V"},

	// Symmetric: s, m, b
	{"s", "snub", "[VEF]0V,0E,0F,0V0E0F"},
	{"m", "meta", "[V,E,F]*0_1_2"},
	{"b", "bevel", "[VEF]0e0f,0v0e,0f0v"},

	{"o", "ortho", "[V,E,F]1_0e1_2e"},
	{"g", "gyro", "[F,VE,V]1_0F1_2V1E,1E"},
	{"c", "chamfer", "[V,VF]1F,0_1v1f"},
	{"l", "loft", "[V,VF]1F,0_1v1_0v,0E"},
	{"p", "propellor", "[V,VEF]1F,1_0V1E1F,1E"},
	{"q", "quinto", "[V,E,EF]2F,0_1_2e2_1e"},
	{"L0", "joined-lace", "[V,E2F]1F,1e1_0e,1_0E"},
	{"L", "lace", "[V,E2F]1F,1e1_0e,1_0v0v,0E"},
	{"K", "stake", "[V,E2F,F]0_1_2e1e,1_0v0v,0E"},
	{"M", "edge-medial", "[F,3V,V2E]0_2_1e2e,2_0v2v,2E"},
	{"J", "joined-medial", "[F,V,EF]*0_1_2,1_2E"},
	{"X", "cross", "[V,E,F,VF]3_1v3_2v,*0_1_3"},
	{"w", "whirl", "[VF,VE,V]0F,0_1V2_1E1_0F,1E"},
}

// ConwayOperators returns the named operator table. Operators m, o, e,
// b, M, g, s are each part of a parametric sequence accepted by
// ReadConway as <letter><integer>. L0 is standalone, not the 0 entry of
// the L sequence.
func ConwayOperators() []ConwayOperator {
	return append([]ConwayOperator(nil), conwayOperators...)
}

var conwayParamRe = regexp.MustCompile(`^([a-zA-Z])(-?[0-9]+)$`)

// ReadConway resolves a named or parametric Conway operator and reads
// its pattern.
func (t *Tiling) ReadConway(op string) error {
	for _, c := range conwayOperators {
		if c.Short == op {
			return t.ReadPattern(c.Pattern)
		}
	}
	m := conwayParamRe.FindStringSubmatch(op)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %q: parameter cannot be negative", ErrUnknownOperator, op)
	}
	var pat string
	switch m[1] {
	case "M":
		pat = edgeMedialPattern(n)
	case "m":
		pat = metaPattern(n)
	case "o":
		pat = orthoPattern(n)
	case "e":
		pat = expandPattern(n)
	case "b":
		pat = bevelPattern(n)
	case "g":
		pat = gyroPattern(n)
	case "s":
		pat = snubPattern(n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	if pat == "" {
		return fmt.Errorf("%w: %q: invalid number %d", ErrUnknownOperator, op, n)
	}
	return t.ReadPattern(pat)
}

// The parametric pattern builders reproduce the reference pattern
// strings exactly, including their internal parameter adjustments.

func edgeMedialPattern(n int) string {
	n += 2

	var b strings.Builder
	b.WriteString("[F")
	for i := 0; i < n+1; i += 2 {
		e := float64(i)
		v := float64(n) - e
		b.WriteString("," + coordString(r3.Vec{X: v, Y: e}))
	}
	lastIdx := n/2 + 1

	b.WriteString("]0_2_1e2e")

	for i := 2; i < lastIdx; i++ {
		fmt.Fprintf(&b, ",*0_%d_%d", i, i+1)
	}

	if n%2 != 0 {
		fmt.Fprintf(&b, ",%d_0v%dv", lastIdx, lastIdx)
		fmt.Fprintf(&b, ",%dE", lastIdx)
	}
	return b.String()
}

func metaPattern(n int) string {
	n += 1

	var b strings.Builder
	b.WriteString("[F")
	for i := 0; i < n+1; i += 2 {
		e := float64(i)
		v := float64(n) - e
		b.WriteString("," + coordString(r3.Vec{X: v, Y: e}))
	}
	lastIdx := n/2 + 1

	b.WriteString("]")

	for i := 1; i < lastIdx; i++ {
		fmt.Fprintf(&b, ",*0_%d_%d", i, i+1)
	}

	if n%2 != 0 {
		fmt.Fprintf(&b, ",%d_0v%dv", lastIdx, lastIdx)
		fmt.Fprintf(&b, ",%dE", lastIdx)
	}
	return b.String()
}

func orthoPattern(n int) string {
	n += 1

	pat := "["
	for a := 0; a <= n; a += 2 {
		for b := 0; b <= a; b += 2 {
			pat += coordString(r3.Vec{
				X: float64((a + n%2) - b),
				Y: float64(b),
				Z: float64(n - (a + n%2)),
			}) + ","
		}
	}
	pat = pat[:len(pat)-1] + "]"

	crds2idx := func(a, b int) int { return (a/2+1)*a/4 + b/2 }
	for a := 0; a < n-n%2; a += 2 {
		for b := 0; b < a; b += 2 {
			pat += fmt.Sprintf("*%d_%d_%d_%d,", crds2idx(a, b), crds2idx(a, b+2),
				crds2idx(a+2, b+4), crds2idx(a+2, b+2))
		}
	}

	for a := 0; a < n-n%2; a += 2 {
		pat += fmt.Sprintf("%d_%de%d_%de,", crds2idx(a, 0), crds2idx(a+2, 2),
			crds2idx(a+2, 0), crds2idx(a+2, 2))
	}

	if n%2 != 0 {
		for a := 0; a < n-n%2; a += 2 {
			pat += fmt.Sprintf("%d_%dv%d_%dv,", crds2idx(a, a), crds2idx(a+2, a+2),
				crds2idx(a+2, a+2), crds2idx(a, a))
		}
		pat += fmt.Sprintf("0F,%dE,", crds2idx(n-1, n-1))
	}
	return pat[:len(pat)-1]
}

func expandPattern(n int) string {
	pat := "["
	for a := 0; a <= n; a += 2 {
		for b := 0; b <= a; b += 2 {
			pat += coordString(r3.Vec{
				X: float64((a + n%2) - b),
				Y: float64(b),
				Z: float64(n - (a + n%2) + 1),
			}) + ","
		}
	}
	pat = pat[:len(pat)-1] + "]"

	crds2idx := func(a, b int) int { return (a/2+1)*a/4 + b/2 }
	for a := 0; a < n-n%2; a += 2 {
		for b := 0; b < a; b += 2 {
			pat += fmt.Sprintf("*%d_%d_%d_%d,", crds2idx(a, b), crds2idx(a, b+2),
				crds2idx(a+2, b+4), crds2idx(a+2, b+2))
		}
	}

	for a := 0; a < n-n%2; a += 2 {
		pat += fmt.Sprintf("%d_%de%d_%de,", crds2idx(a, 0), crds2idx(a+2, 2),
			crds2idx(a+2, 0), crds2idx(a+2, 2))
	}

	topA := n - n%2
	for b := 0; b < topA; b += 2 {
		pat += fmt.Sprintf("%d_%df%d_%df,", crds2idx(topA, b), crds2idx(topA, b+2),
			crds2idx(topA, b+2), crds2idx(topA, b))
	}

	pat += fmt.Sprintf("%dV,", crds2idx(n-n%2, 0))

	if n%2 != 0 {
		for a := 0; a < n-1; a += 2 {
			pat += fmt.Sprintf("%d_%dv%d_%dv,", crds2idx(a, a), crds2idx(a+2, a+2),
				crds2idx(a+2, a+2), crds2idx(a, a))
		}
		pat += fmt.Sprintf("0F,%dv%df", crds2idx(n-1, n-1), crds2idx(n-1, n-1))
	} else {
		pat += fmt.Sprintf("%dE", crds2idx(n, n))
	}
	return pat
}

func bevelPattern(n int) string {
	n += 1

	pat := "["
	for b := 1; b <= n+n%2; b += 2 {
		pat += coordString(r3.Vec{X: float64(n - b), Y: float64(b), Z: 1}) + ","
	}
	pat = pat[:len(pat)-1] + "]"

	pat += "0e0f,"

	for b := 0; b < n+n%2; b += 2 {
		pat += fmt.Sprintf("%d_", b/2)
	}
	pat = pat[:len(pat)-1] + "v"
	for b := 0; b < n-1; b += 2 {
		pat += fmt.Sprintf("%d_", n/2-b/2-1)
	}
	pat = strings.TrimSuffix(pat, "_")
	pat += "e"

	for b := 0; b < n-2+n%2; b += 2 {
		pat += fmt.Sprintf(",%d_%df%d_%df", b/2, b/2+1, b/2+1, b/2)
	}
	if n%2 != 0 {
		pat += fmt.Sprintf(",%dE", n/2)
	} else {
		pat += fmt.Sprintf(",%dv%df", n/2-1, n/2-1)
	}
	return pat
}

func gyroPattern(n int) string {
	if n < 1 {
		return "" // number out of range
	}
	pat := "[V"
	divs := 2*n + 1
	for b := 0; b < n; b++ {
		eCoord := 2 * (b + 1)
		pat += "," + coordString(r3.Vec{X: float64(divs - eCoord), Y: float64(eCoord)})
	}
	pat += ",F]"

	fIdx := n + 1

	if n == 1 {
		pat += "1_2F1_0V1E"
	} else {
		pat += fmt.Sprintf("%d_1_0e1_2e", fIdx)
	}

	for b := 0; b < n-1; b++ {
		pat += fmt.Sprintf(",%d", fIdx)
		divStart := 2*b + 1
		pastCenter := false
		for i := 0; i < 3; i++ {
			div := divStart + i
			op := byte('_')
			if div > n && !pastCenter {
				op = 'v'
				pastCenter = true
			}
			shown := div
			if div > n {
				shown = 2*n + 1 - div
			}
			pat += fmt.Sprintf("%c%d", op, shown)
		}
		if pastCenter {
			pat += "v"
		}
	}

	pat += fmt.Sprintf(",%dE", n)
	return pat
}

func snubPattern(n int) string {
	if n < 1 {
		return "" // number out of range
	}
	pat := "["
	divs := n
	for b := 0; b < n/2+1; b++ {
		eCoord := 2 * b
		pat += coordString(r3.Vec{X: float64(divs - eCoord), Y: float64(eCoord), Z: 1}) + ","
	}
	pat = pat[:len(pat)-1] + "]"

	div2idx := func(idx int) int {
		if idx <= n/2 {
			return idx
		}
		return n - idx
	}

	pat += fmt.Sprintf("0V,%dE,", n/2)

	pastCenter := false
	for b := 0; b < n; b++ {
		op := ""
		if b > 0 {
			op = "_"
		}
		if 2*b > n && !pastCenter {
			op = "v"
			pastCenter = true
		}
		pat += fmt.Sprintf("%s%d", op, div2idx(b))
	}
	if pastCenter {
		pat += "v"
	}
	pat += "F"

	for b := 0; b < n/2; b++ {
		pat += fmt.Sprintf(",%d_%df%df", div2idx(b), div2idx(b+1), div2idx(n-(b+1)))
		pat += fmt.Sprintf(",%d_f%d_%df", div2idx(b), div2idx(n-(b+1)), div2idx(n-b))
	}
	if n%2 != 0 {
		pat += fmt.Sprintf(",%df%dv%dvf", div2idx(n/2), div2idx(n-n/2), div2idx(n-(n/2+1)))
	}
	return pat
}
