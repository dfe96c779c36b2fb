// Package pathfind provides tunable options and error definitions
// for best-first search over a gridgraph.Graph.
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors for path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrNodeOutOfRange is returned when a source or target is not a vertex.
	ErrNodeOutOfRange = errors.New("pathfind: node not in graph")

	// ErrGoalNil is returned when no goal predicate is supplied.
	ErrGoalNil = errors.New("pathfind: goal is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrNegativeCost is returned when the edge-cost function yields a negative value.
	ErrNegativeCost = errors.New("pathfind: negative edge cost")

	// ErrUnreachable is returned when no goal node can be reached from the source(s).
	ErrUnreachable = errors.New("pathfind: goal unreachable")
)

// NodeID is the vertex key of a gridgraph.Graph.
type NodeID = gridgraph.NodeID

// Goal reports whether a node ends the search.
type Goal func(id NodeID) bool

// Heuristic estimates the remaining cost from a node to the goal.
// It must be consistent: h(u) ≤ cost(u,v) + h(v) for every edge, and zero
// at goal nodes. Negative estimates are treated as zero.
type Heuristic func(id NodeID) int

// EdgeCost returns the cost of the directed edge from→to. It must be non-negative.
type EdgeCost func(from, to NodeID) int

// Target returns a Goal satisfied only by id.
func Target(id NodeID) Goal {
	return func(v NodeID) bool { return v == id }
}

// AnyOf returns a Goal satisfied by any of ids.
func AnyOf(ids ...NodeID) Goal {
	set := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(v NodeID) bool {
		_, ok := set[v]
		return ok
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative distance), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Heuristic orders the frontier by dist+Heuristic(id).
	Heuristic Heuristic

	// EdgeCost prices each edge. Default is the constant 1.
	EdgeCost EdgeCost

	// MaxDistance, if > 0, keeps nodes farther than this out of the frontier.
	// A value of 0 disables the limit.
	MaxDistance int

	// OnEnqueue is called whenever a node is pushed with a better distance.
	OnEnqueue func(id NodeID, dist int)

	// OnVisit is called once per settled node. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(id NodeID, dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - zero heuristic, unit edge cost
//   - no distance limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Heuristic:   func(NodeID) int { return 0 },
		EdgeCost:    func(_, _ NodeID) int { return 1 },
		MaxDistance: 0,
		OnEnqueue:   func(NodeID, int) {},
		OnVisit:     func(NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the frontier heuristic. A nil h keeps the zero heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithEdgeCost sets the per-edge cost. A nil fn keeps the unit cost.
func WithEdgeCost(fn EdgeCost) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeCost = fn
		}
	}
}

// WithMaxDistance bounds the search radius.
//
//	d > 0: nodes beyond d are never settled
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id NodeID, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a node is settled; returning
// an error from this callback stops the search.
func WithOnVisit(fn func(id NodeID, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
