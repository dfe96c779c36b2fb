package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single input row for the line scanner. A longer row
// fails Read with a wrapped bufio.ErrTooLong, not a *ParseError.
const maxLineBytes = 1 << 20

// Parse builds a Grid from text. It is a convenience wrapper over Read.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read consumes r line by line and builds a Grid.
// Format failures are reported as *ParseError; I/O failures are wrapped as-is.
// Complexity: O(W×H) time and memory.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	p := parser{}
	for sc.Scan() {
		p.line++
		if err := p.consume(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}

	return p.finish()
}

// parser carries the mutable state of a single Read call.
type parser struct {
	line      int
	width     int
	blankLine int // first blank line seen since the last row, 0 if none
	levels    [][]Elevation
	origin    *Coord
	dest      *Coord
}

// consume parses one line. Blank lines are deferred: they are harmless
// at the end of input but break the rectangle anywhere else.
func (p *parser) consume(line string) error {
	if line == "" {
		if p.blankLine == 0 {
			p.blankLine = p.line
		}
		return nil
	}
	if p.blankLine != 0 {
		if len(p.levels) == 0 {
			return &ParseError{Line: p.blankLine, Err: ErrEmptyGrid}
		}
		return &ParseError{Line: p.blankLine, Err: ErrNonRectangular}
	}

	row := len(p.levels)
	cells := make([]Elevation, 0, utf8.RuneCountInString(line))
	col := 0
	for _, ch := range line {
		col++
		level, ok := ElevationOf(ch)
		if !ok {
			return &ParseError{Line: p.line, Column: col, Char: ch, Err: ErrUnknownElevation}
		}
		switch ch {
		case OriginMarker:
			if p.origin != nil {
				return &ParseError{Line: p.line, Column: col, Char: ch, Err: ErrDuplicateMarker}
			}
			p.origin = &Coord{Row: row, Col: col - 1}
		case DestinationMarker:
			if p.dest != nil {
				return &ParseError{Line: p.line, Column: col, Char: ch, Err: ErrDuplicateMarker}
			}
			p.dest = &Coord{Row: row, Col: col - 1}
		}
		cells = append(cells, level)
	}

	if row == 0 {
		p.width = len(cells)
	} else if len(cells) != p.width {
		return &ParseError{Line: p.line, Err: ErrNonRectangular}
	}
	p.levels = append(p.levels, cells)

	return nil
}

// finish validates whole-input invariants and freezes the Grid.
func (p *parser) finish() (*Grid, error) {
	if len(p.levels) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	if p.origin == nil {
		return nil, &ParseError{Err: ErrMissingOrigin}
	}
	if p.dest == nil {
		return nil, &ParseError{Err: ErrMissingDestination}
	}

	return &Grid{levels: p.levels, origin: *p.origin, destination: *p.dest}, nil
}
