package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// NewGridGraph lays out grid as a directed graph under the elevation-gain rule.
// Edges and the lowest-elevation candidate set are collected in one pass over
// the cells; the grid itself is not retained.
// Returns ErrGridNil (also wrapping heightmap.ErrEmptyGrid for a grid with no
// cells), ErrBadClimb, or *BuildError when the grid cannot be linearized.
// Algorithmic complexity: O(W×H) time, O(W×H + E) memory.
func NewGridGraph(grid *heightmap.Grid, opts GridOptions) (*GridGraph, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	if opts.MaxClimb < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadClimb, opts.MaxClimb)
	}
	h, w := grid.Rows(), grid.Cols()
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGridNil, heightmap.ErrEmptyGrid)
	}
	n, err := area(h, w)
	if err != nil {
		return nil, err
	}

	gg := &GridGraph{
		Width:      w,
		Height:     h,
		MaxClimb:   opts.MaxClimb,
		elevations: make([]heightmap.Elevation, n),
	}
	adj := make([][]NodeID, n)
	edges := 0

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			id := gg.index(r, c)
			here := grid.At(heightmap.Coord{Row: r, Col: c})
			gg.elevations[id] = here
			if here == heightmap.Lowest {
				gg.candidates = append(gg.candidates, id)
			}
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !gg.InBounds(nr, nc) {
					continue
				}
				// each ordered pair is judged on its own: the rule is not symmetric
				there := grid.At(heightmap.Coord{Row: nr, Col: nc})
				if int(there) <= int(here)+opts.MaxClimb {
					adj[id] = append(adj[id], gg.index(nr, nc))
					edges++
				}
			}
		}
	}
	gg.graph = &Graph{adj: adj, edges: edges}

	if gg.Origin, err = gg.Index(grid.Origin().Row, grid.Origin().Col); err != nil {
		return nil, err
	}
	if gg.Destination, err = gg.Index(grid.Destination().Row, grid.Destination().Col); err != nil {
		return nil, err
	}

	return gg, nil
}

// area returns h×w, or *BuildError wrapping ErrIndexOverflow when the last
// cell's NodeID would not fit in an int. Both dimensions must be positive.
// A Grid that fits in memory never overflows; the check guards the arithmetic.
func area(h, w int) (int, error) {
	if h > math.MaxInt/w {
		return 0, &BuildError{Row: h - 1, Col: w - 1, Err: ErrIndexOverflow}
	}
	return h * w, nil
}

// Graph returns the directed adjacency structure.
func (gg *GridGraph) Graph() *Graph { return gg.graph }

// Candidates returns a copy of the NodeIDs at the lowest elevation,
// in ascending order.
func (gg *GridGraph) Candidates() []NodeID {
	out := make([]NodeID, len(gg.candidates))
	copy(out, gg.candidates)
	return out
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Index linearizes (row,col) into a NodeID.
// Returns *BuildError wrapping ErrIndexOutOfRange for off-grid coordinates.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) (NodeID, error) {
	if !gg.InBounds(row, col) {
		return 0, &BuildError{Row: row, Col: col, Err: ErrIndexOutOfRange}
	}
	return gg.index(row, col), nil
}

// index maps (row,col) to a row-major index without bounds checks.
func (gg *GridGraph) index(row, col int) NodeID {
	return row*gg.Width + col
}

// Coordinate converts a NodeID back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id NodeID) (row, col int) {
	return id / gg.Width, id % gg.Width
}

// Elevation returns the level of the cell behind id.
// The boolean is false when id is not a vertex.
func (gg *GridGraph) Elevation(id NodeID) (heightmap.Elevation, bool) {
	if id < 0 || id >= len(gg.elevations) {
		return 0, false
	}
	return gg.elevations[id], true
}

// Manhattan returns a heuristic estimating the edge count from any node to
// goal. Every edge moves exactly one cell, so the estimate never exceeds the
// true unit-cost distance.
func (gg *GridGraph) Manhattan(goal NodeID) func(NodeID) int {
	gr, gc := gg.Coordinate(goal)
	return func(id NodeID) int {
		r, c := gg.Coordinate(id)
		return abs(r-gr) + abs(c-gc)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
