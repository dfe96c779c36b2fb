package heightmap

import "strings"

// New builds a Grid from an already decoded elevation matrix.
// It deep-copies levels so later mutation by the caller has no effect.
// Returns *ParseError wrapping ErrEmptyGrid, ErrNonRectangular or
// ErrUnknownElevation (level above Highest), ErrMissingOrigin or
// ErrMissingDestination when a marker lies outside the matrix,
// ErrDuplicateMarker when both markers share a cell, and ErrMarkerElevation
// when the origin is not at Lowest or the destination not at Highest.
func New(levels [][]Elevation, origin, destination Coord) (*Grid, error) {
	if len(levels) == 0 || len(levels[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	w := len(levels[0])
	cells := make([][]Elevation, len(levels))
	for r, row := range levels {
		if len(row) != w {
			return nil, &ParseError{Line: r + 1, Err: ErrNonRectangular}
		}
		for c, level := range row {
			if level > Highest {
				return nil, &ParseError{Line: r + 1, Column: c + 1, Char: level.Char(), Err: ErrUnknownElevation}
			}
		}
		cells[r] = make([]Elevation, w)
		copy(cells[r], row)
	}

	g := &Grid{levels: cells, origin: origin, destination: destination}
	if !g.InBounds(origin) {
		return nil, &ParseError{Err: ErrMissingOrigin}
	}
	if !g.InBounds(destination) {
		return nil, &ParseError{Err: ErrMissingDestination}
	}
	if origin == destination {
		return nil, markerError(destination, DestinationMarker, ErrDuplicateMarker)
	}
	if g.At(origin) != Lowest {
		return nil, markerError(origin, OriginMarker, ErrMarkerElevation)
	}
	if g.At(destination) != Highest {
		return nil, markerError(destination, DestinationMarker, ErrMarkerElevation)
	}

	return g, nil
}

// markerError positions a marker failure with 1-based line and column.
func markerError(at Coord, marker rune, err error) *ParseError {
	return &ParseError{Line: at.Row + 1, Column: at.Col + 1, Char: marker, Err: err}
}

// Rows returns the number of rows (grid height).
func (g *Grid) Rows() int { return len(g.levels) }

// Cols returns the number of columns (grid width), 0 for a zero Grid.
func (g *Grid) Cols() int {
	if len(g.levels) == 0 {
		return 0
	}
	return len(g.levels[0])
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(g.levels) && c.Col >= 0 && c.Col < g.Cols()
}

// At returns the elevation at c. It panics if c is out of bounds.
func (g *Grid) At(c Coord) Elevation { return g.levels[c.Row][c.Col] }

// Origin returns the coordinate of the origin marker.
func (g *Grid) Origin() Coord { return g.origin }

// Destination returns the coordinate of the destination marker.
func (g *Grid) Destination() Coord { return g.destination }

// Lowest returns every coordinate at elevation Lowest in row-major order.
// The origin is always among them.
// Complexity: O(W×H).
func (g *Grid) Lowest() []Coord {
	var out []Coord
	for r, row := range g.levels {
		for c, level := range row {
			if level == Lowest {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the grid back to its textual form, markers included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r, row := range g.levels {
		for c, level := range row {
			switch (Coord{Row: r, Col: c}) {
			case g.origin:
				sb.WriteRune(OriginMarker)
			case g.destination:
				sb.WriteRune(DestinationMarker)
			default:
				sb.WriteRune(level.Char())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
