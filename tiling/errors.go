package tiling

import "errors"

var (
	// ErrPatternFormat is returned when a pattern string is not of the
	// form [Point0,Point1,...]Path0,Path1,...
	ErrPatternFormat = errors.New("tiling: pattern not in form [Point0,Point1,...]Path0,Path1,...")
	// ErrBadChar is returned for an invalid character in a tile path or
	// point.
	ErrBadChar = errors.New("tiling: invalid character")
	// ErrTilePath is returned when a tile path does not begin (after an
	// optional +-*) or end with a point index.
	ErrTilePath = errors.New("tiling: tile path must start or end with a point index")
	// ErrPointCoords is returned for malformed point coordinates: bad
	// syntax, a repeated letter, or all coefficients zero.
	ErrPointCoords = errors.New("tiling: invalid point coordinates")
	// ErrIndexOutOfRange is returned when a path references a pattern
	// point index past the points table.
	ErrIndexOutOfRange = errors.New("tiling: point index out of range")
	// ErrUnknownOperator is returned by ReadConway for a name that is
	// neither in the operator table nor a valid parametric operator.
	ErrUnknownOperator = errors.New("tiling: unknown Conway operator")
	// ErrRelabel is returned when a relabel string does not contain
	// exactly the three letters V, E and F.
	ErrRelabel = errors.New("tiling: relabel string must contain exactly the letters V, E and F")
	// ErrNotMeta is returned when a geometry offered as a meta
	// triangulation has an odd face count or a non-triangle face.
	ErrNotMeta = errors.New("tiling: geometry is not a meta triangulation")
	// ErrOpenEdge is returned when a meta edge has a single incident
	// face where two were required.
	ErrOpenEdge = errors.New("tiling: open meta edge")
	// ErrNotTwoColorable is returned when meta faces cannot be
	// 2-colored with opposite parities across every edge.
	ErrNotTwoColorable = errors.New("tiling: faces cannot be 2-colored")
	// ErrNotThreeColorable is returned when meta vertices cannot be
	// assigned consistent V, E, F roles.
	ErrNotThreeColorable = errors.New("tiling: vertices cannot be 3-colored")
	// ErrNoBase is returned by Build when SetBase has not been called.
	ErrNoBase = errors.New("tiling: no base geometry set")
)
