package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for height map parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input must have at least one row and one column")
	// ErrUnknownElevation indicates a character outside 'a'..'z', 'S', 'E'.
	ErrUnknownElevation = errors.New("heightmap: unknown elevation character")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrMissingOrigin indicates the origin marker never appeared.
	ErrMissingOrigin = errors.New("heightmap: origin marker not found")
	// ErrMissingDestination indicates the destination marker never appeared.
	ErrMissingDestination = errors.New("heightmap: destination marker not found")
	// ErrDuplicateMarker indicates a marker appeared more than once.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
	// ErrMarkerElevation indicates a marker placed on a cell other than its
	// fixed level: the origin must sit at Lowest and the destination at Highest.
	ErrMarkerElevation = errors.New("heightmap: marker on the wrong elevation")
)

// Elevation is a discrete height level in [Lowest, Highest].
type Elevation uint8

const (
	// Lowest is the minimum elevation ('a', and the origin marker).
	Lowest Elevation = 0
	// Highest is the maximum elevation ('z', and the destination marker).
	Highest Elevation = 25
)

// Marker characters recognised by the parser.
const (
	OriginMarker      = 'S'
	DestinationMarker = 'E'
)

// Char returns the lowercase letter for e.
func (e Elevation) Char() rune { return 'a' + rune(e) }

// ElevationOf maps a single input character to its elevation level.
// The boolean is false for characters outside the alphabet.
func ElevationOf(ch rune) (Elevation, bool) {
	switch {
	case ch == OriginMarker:
		return Lowest, true
	case ch == DestinationMarker:
		return Highest, true
	case ch >= 'a' && ch <= 'z':
		return Elevation(ch - 'a'), true
	default:
		return 0, false
	}
}

// Coord is a zero-based (row, column) position in a Grid.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// ParseError describes why an input could not be turned into a Grid.
// Line and Column are 1-based; Column is 0 when the failure concerns a
// whole row or the whole input, and Line is 0 for whole-input failures.
type ParseError struct {
	Line, Column int
	Char         rune
	Err          error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return e.Err.Error()
	case e.Column == 0:
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	default:
		return fmt.Sprintf("%v: %q at line %d, column %d", e.Err, e.Char, e.Line, e.Column)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Grid is an immutable rectangular matrix of elevations together with the
// origin and destination coordinates. levels[row][col] holds each cell.
type Grid struct {
	levels      [][]Elevation
	origin      Coord
	destination Coord
}
