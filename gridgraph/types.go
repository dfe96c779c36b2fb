package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrGridNil indicates a nil *heightmap.Grid was passed in.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrBadClimb indicates a negative MaxClimb option.
	ErrBadClimb = errors.New("gridgraph: MaxClimb must be non-negative")
	// ErrIndexOutOfRange indicates a coordinate or NodeID outside the grid.
	ErrIndexOutOfRange = errors.New("gridgraph: index out of range")
	// ErrIndexOverflow indicates Width×Height cannot be linearized into an int.
	ErrIndexOverflow = errors.New("gridgraph: grid too large to linearize")
)

// NodeID identifies a grid cell as a graph vertex: row*Width + col.
type NodeID = int

// BuildError reports an invariant violation while laying out the graph.
// Row and Col locate the offending coordinate.
type BuildError struct {
	Row, Col int
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v at (%d,%d)", e.Err, e.Row, e.Col)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *BuildError) Unwrap() error { return e.Err }

// GridOptions contains tunable parameters for graph construction.
type GridOptions struct {
	// MaxClimb is the largest elevation gain allowed on a single step.
	// Descents are always allowed.
	MaxClimb int
}

// DefaultGridOptions returns GridOptions with MaxClimb=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{MaxClimb: 1}
}

// GridGraph is a height map laid out as a directed graph. It is immutable
// once built and safe for concurrent reads.
// Origin and Destination are the NodeIDs of the two map markers.
type GridGraph struct {
	Width, Height int
	MaxClimb      int
	Origin        NodeID
	Destination   NodeID

	elevations []heightmap.Elevation // indexed by NodeID
	candidates []NodeID              // NodeIDs at heightmap.Lowest, ascending
	graph      *Graph
}

// neighborOffsets are (dRow, dCol) pairs: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
