package wythoff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBarPositions(t *testing.T) {
	for _, tc := range []struct {
		in  string
		bar int
	}{
		{"|2 3 5", 0},
		{"| 2 3 5", 0},
		{"2|3 5", 1},
		{"2 | 3 5", 1},
		{"2 3|5", 2},
		{"2 3 | 5", 2},
		{"2 3 5|", 3},
		{"2 3 5 |", 3},
		{"  2   3   5  |  ", 3},
	} {
		s, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.bar, s.Bar, tc.in)
		require.Equal(t, [3]Fraction{{2, 1}, {3, 1}, {5, 1}}, s.Fracs, tc.in)
	}
}

func TestParseFractions(t *testing.T) {
	s, err := Parse("2 3 5/2|")
	require.NoError(t, err)
	require.Equal(t, Fraction{5, 2}, s.Fracs[2])

	// denominator reduced modulo numerator
	s, err = Parse("2 3 5/7|")
	require.NoError(t, err)
	require.Equal(t, Fraction{5, 2}, s.Fracs[2])
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"2 3 x|", ErrBadChar},
		{"2 3 5", ErrMissingBar},
		{"2|3|5", ErrMultipleBars},
		{"2 3|", ErrWrongArity},
		{"2 3 4 5|", ErrWrongArity},
		{"1 3 5|", ErrBadNumerator},
		{"2 3 5/10|", ErrBadDenominator},
		{"2 3 5/|", ErrBadDenominator},
		{"7 3 2|", ErrNonFinite},
	} {
		_, err := Parse(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestSymbolStringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"|2 3 5", "2|3 5", "2 3|5", "2 3 5|",
		"|2 3 5/2", "3/2 5/3 5/3|", "2 2 7/3|",
	} {
		s, err := Parse(in)
		require.NoError(t, err, in)
		s2, err := Parse(s.String())
		require.NoError(t, err, s.String())
		require.Equal(t, s.Fracs, s2.Fracs, in)
		require.Equal(t, s.Bar, s2.Bar, in)
	}
}

func TestTriangleSymmetryLabels(t *testing.T) {
	for _, tc := range []struct {
		in, label string
	}{
		{"2 3 3|", "T"},
		{"2 3 4|", "O"},
		{"2 3 5|", "I"},
		{"|2 3 5/2", "I"},
		{"3/2 5/3 5/3|", "I"},
		{"2 2 7|", "D7"},
		{"2 2 5/2|", "D5"},
	} {
		s, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.label, s.TriangleSymmetry(), tc.in)
	}
}

func TestNormalizeFracsSorts(t *testing.T) {
	fr := [3]Fraction{{5, 2}, {2, 1}, {3, 1}}
	companion := [3]int{0, 1, 2}
	normalizeFracs(&fr, &companion)
	require.Equal(t, [3]Fraction{{2, 1}, {3, 1}, {5, 2}}, fr)
	require.Equal(t, [3]int{1, 2, 0}, companion)
}
