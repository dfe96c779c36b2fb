// Package gridgraph turns a heightmap.Grid into a directed graph whose edges
// obey an elevation-gain limit, so shortest-path searches can run over it.
//
// What:
//
//   - GridGraph wraps a parsed height map and owns one directed Graph.
//   - Every cell becomes a vertex with a dense NodeID = row*Width + col.
//   - An edge C→N exists for each orthogonal neighbor N of C (up, down,
//     left, right) iff elevation(N) ≤ elevation(C) + MaxClimb.
//     Off-grid neighbors are skipped, not reported.
//   - The rule is one-way: climbing is limited, descending is not, so
//     C→N never implies N→C.
//   - Candidates lists every NodeID at the lowest elevation; it is collected
//     in the same pass that builds the edges.
//
// Why:
//
//   - Route planning over terrain where steep climbs are impossible.
//   - Feeding pathfind with a compact adjacency list instead of a general
//     purpose graph with string IDs.
//
// Complexity:
//
//   - NewGridGraph: O(W×H×4) time, Memory: O(W×H + E).
//   - Index, Coordinate, InBounds: O(1).
//   - Transpose: O(V + E).
//
// Options:
//
//   - GridOptions.MaxClimb: largest allowed elevation gain per step (default 1).
//
// Errors:
//
//   - ErrGridNil:         nil *heightmap.Grid.
//   - ErrBadClimb:        negative MaxClimb.
//   - ErrIndexOutOfRange: coordinate or NodeID outside the grid (inside *BuildError).
//   - ErrIndexOverflow:   Width×Height does not fit in an int (inside *BuildError).
package gridgraph
