// Package pathfind answers shortest-path queries over a gridgraph.Graph:
// single-source best-first search and multi-source sweeps.
//
// What
//
//   - ShortestPath: best-first search from one source to the first node
//     satisfying a Goal predicate. Returns the path cost (edge count by default).
//   - Sweep: runs ShortestPath once per candidate source and keeps the
//     minimum. Sources that cannot reach the goal are skipped.
//   - Nearest: answers the same question as Sweep with one search over the
//     transposed graph, starting at the target.
//
// Search discipline
//
//	The frontier is a min-heap keyed by dist+heuristic. The heuristic
//	defaults to zero, which makes the search a plain uniform-cost (and, with
//	unit edges, breadth-first) search. A node is expanded at most once and
//	each edge is relaxed at most once; stale heap entries are skipped.
//	The search stops as soon as a goal node is dequeued, which is optimal
//	for non-negative costs and a consistent heuristic.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - ShortestPath: O((V + E) log V) time, O(V) memory.
//   - Sweep:        O(S × (V + E) log V) for S sources.
//   - Nearest:      O((V + E) log V) plus one O(V + E) transpose.
//
// Usage
//
//	dist, err := pathfind.ShortestPath(g, src, pathfind.Target(dst))
//	if errors.Is(err, pathfind.ErrUnreachable) {
//	    // no route under the elevation rule
//	}
//
//	best, err := pathfind.Sweep(g, candidates, pathfind.Target(dst),
//	    pathfind.WithContext(ctx),
//	    pathfind.WithOnVisit(func(id gridgraph.NodeID, dist int) error { return nil }),
//	)
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per expansion.
//   - WithHeuristic(h):       consistent lower bound on the remaining cost.
//   - WithEdgeCost(fn):       non-negative cost per edge (default 1).
//   - WithMaxDistance(d):     do not settle nodes farther than d (>0); 0 means no limit.
//   - WithOnEnqueue(fn):      hook when a node gets a better tentative distance.
//   - WithOnVisit(fn):        hook when a node is settled; an error aborts the search.
//
// Errors
//
//   - ErrGraphNil, ErrNodeOutOfRange, ErrGoalNil for invalid input.
//   - ErrOptionViolation for invalid options.
//   - ErrNegativeCost if the edge-cost function yields a negative value.
//   - ErrUnreachable when no goal node can be reached. This is an expected
//     outcome, not a fault.
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package pathfind
