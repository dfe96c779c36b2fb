// Package heightmap parses a textual height map into an immutable Grid of
// elevation levels.
//
// What:
//
//   - Each character is one cell. 'a'..'z' map to elevation 0..25.
//   - 'S' marks the origin and stands for elevation 0 ('a').
//   - 'E' marks the destination and stands for elevation 25 ('z').
//   - Markers are recorded as coordinates next to the elevation matrix, so
//     the matrix itself only holds plain levels.
//
// Input rules:
//
//   - One line per row; every row must have the same length.
//   - A trailing '\r' on a line is dropped, as are trailing blank lines.
//   - Exactly one origin marker and exactly one destination marker.
//
// Errors:
//
// Format failures are returned as *ParseError, which carries the 1-based
// line and column and unwraps to one of:
//
//   - ErrEmptyGrid:          no rows, or a first row with no cells.
//   - ErrUnknownElevation:   a character outside the elevation alphabet.
//   - ErrNonRectangular:     a row whose length differs from the first row.
//   - ErrMissingOrigin:      no 'S' in the input.
//   - ErrMissingDestination: no 'E' in the input.
//   - ErrDuplicateMarker:    a second 'S' or a second 'E', or (New only)
//     both markers on one cell.
//   - ErrMarkerElevation:    (New only) an origin above Lowest or a
//     destination below Highest.
//
// Complexity: O(W×H) time and memory.
package heightmap
