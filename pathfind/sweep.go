package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sweep runs ShortestPath from every source in turn and returns the smallest
// distance to goal. Sources that cannot reach goal are skipped; any other
// failure (bad source, hook error, cancellation) aborts the sweep at once.
// If no source succeeds, including when sources is empty, the result is
// ErrUnreachable.
// Complexity: O(S × (V + E) log V).
func Sweep(g *gridgraph.Graph, sources []NodeID, goal Goal, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if goal == nil {
		return 0, ErrGoalNil
	}

	best, found := 0, false
	for _, src := range sources {
		d, err := ShortestPath(g, src, goal, opts...)
		switch {
		case errors.Is(err, ErrUnreachable):
			continue
		case err != nil:
			return 0, fmt.Errorf("pathfind: sweep from %d: %w", src, err)
		}
		if !found || d < best {
			best, found = d, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: none of %d sources reach the goal", ErrUnreachable, len(sources))
	}

	return best, nil
}

// Nearest returns the distance from the closest of sources to target.
// It answers the same question as Sweep(g, sources, Target(target)) with a
// single search over g.Transpose() that starts at target and stops at the
// first source it settles. Edge costs are still charged in the original
// direction. Any heuristic option is ignored, since it would estimate the
// distance to target rather than to the sources.
// Returns ErrNodeOutOfRange if target or a source is not a vertex and
// ErrUnreachable when no source can reach target.
// Complexity: O((V + E) log V) plus one O(V + E) transpose.
func Nearest(g *gridgraph.Graph, target NodeID, sources []NodeID, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if !g.Contains(target) {
		return 0, fmt.Errorf("%w: target %d", ErrNodeOutOfRange, target)
	}
	for _, src := range sources {
		if !g.Contains(src) {
			return 0, fmt.Errorf("%w: source %d", ErrNodeOutOfRange, src)
		}
	}
	if len(sources) == 0 {
		return 0, fmt.Errorf("%w: no sources", ErrUnreachable)
	}

	cost := o.EdgeCost
	o.EdgeCost = func(from, to NodeID) int { return cost(to, from) }
	o.Heuristic = DefaultOptions().Heuristic

	return newSearcher(g.Transpose(), AnyOf(sources...), o).run(target)
}
