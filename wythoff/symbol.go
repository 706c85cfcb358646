package wythoff

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Symbol is a parsed Wythoff symbol: three fractions and a bar
// position. Bar 0 is `|p q r` (snub), 1 is `p|q r`, 2 is `p q|r` and
// 3 is `p q r|`.
type Symbol struct {
	Fracs [3]Fraction
	Bar   int

	verts [3]r3.Vec
}

// Parse reads a Wythoff symbol such as "2 3|5" or "| 2 3 5/2".
// Spacing around the bar is free; fractions are n or n/d.
func Parse(sym string) (Symbol, error) {
	for i := 0; i < len(sym); i++ {
		c := sym[i]
		if !(c == ' ' || c == '/' || c == '|' || (c >= '0' && c <= '9')) {
			return Symbol{}, fmt.Errorf("%w: %q at position %d", ErrBadChar, c, i)
		}
	}

	// collapse runs of spaces and trim the ends
	compact := strings.Join(strings.Fields(sym), " ")

	isPunct := func(c byte) bool { return c == '|' || c == '/' }
	var b strings.Builder
	barCnt, barOff := 0, -1
	spacesBefore, spacesAfter := 0, 0
	lastWasBar := false
	for i := 0; i < len(compact); i++ {
		c := compact[i]
		// drop spaces next to punctuation
		if c == ' ' && ((i > 0 && isPunct(compact[i-1])) ||
			(i+1 < len(compact) && isPunct(compact[i+1]))) {
			continue
		}
		if c == ' ' {
			if barCnt > 0 {
				spacesAfter++
			} else {
				spacesBefore++
			}
		}
		if c == '|' {
			lastWasBar = true
			barCnt++
			barOff = b.Len()
			if barOff > 0 {
				b.WriteByte(' ')
			}
		} else {
			lastWasBar = false
			b.WriteByte(c)
		}
	}
	tokens := b.String()
	if lastWasBar {
		tokens = tokens[:len(tokens)-1]
	}

	if barCnt == 0 {
		return Symbol{}, ErrMissingBar
	}
	if barCnt > 1 {
		return Symbol{}, ErrMultipleBars
	}

	var bar int
	switch {
	case barOff == 0:
		bar = 0
	case barOff == len(tokens):
		bar = 3
	case spacesAfter > 0:
		bar = 1
	default:
		bar = 2
	}

	totalSpaces := spacesBefore + spacesAfter
	if bar == 1 || bar == 2 {
		// the bar itself separates two fractions
		totalSpaces++
	}
	if totalSpaces != 2 {
		return Symbol{}, fmt.Errorf("%w: got %d", ErrWrongArity, totalSpaces+1)
	}

	parts := strings.Fields(tokens)
	if len(parts) != 3 {
		return Symbol{}, fmt.Errorf("%w: got %d", ErrWrongArity, len(parts))
	}

	s := Symbol{Bar: bar}
	for i, tok := range parts {
		numStr, denStr, hasDen := strings.Cut(tok, "/")
		num, err := strconv.Atoi(numStr)
		if err != nil {
			return Symbol{}, fmt.Errorf("fraction %d: %w", i+1, ErrBadNumerator)
		}
		den := 1
		if hasDen {
			den, err = strconv.Atoi(denStr)
			if err != nil {
				return Symbol{}, fmt.Errorf("fraction %d: %w", i+1, ErrBadDenominator)
			}
		}
		if num < 2 {
			return Symbol{}, fmt.Errorf("fraction %d: %w", i+1, ErrBadNumerator)
		}
		if den%num == 0 {
			return Symbol{}, fmt.Errorf("fraction %d: %w", i+1, ErrBadDenominator)
		}
		s.Fracs[i] = Fraction{N: num, D: den % num}
	}

	verts, ok := assignVerts(s.Fracs)
	if !ok {
		return Symbol{}, ErrNonFinite
	}
	s.verts = verts
	return s, nil
}

// String formats the symbol in canonical form, e.g. "2 3|5" or
// "|2 3 5/2".
func (s Symbol) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if s.Bar == i {
			b.WriteByte('|')
		} else if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Fracs[i].String())
	}
	if s.Bar == 3 {
		b.WriteByte('|')
	}
	return b.String()
}

// TriangleSymmetry returns the point group label of the symbol's
// Schwarz triangle: "T", "O", "I" or "D<n>".
func (s Symbol) TriangleSymmetry() string {
	return triangleSymmetry(s.Fracs)
}

// Verts returns the unit vectors of the fundamental triangle's
// vertices in the symbol's fraction order.
func (s Symbol) Verts() [3]r3.Vec { return s.verts }
