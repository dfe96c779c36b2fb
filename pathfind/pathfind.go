package pathfind

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// ShortestPath runs best-first search on g from source until a node
// satisfying goal is settled, and returns its distance.
// Returns ErrGraphNil, ErrNodeOutOfRange or ErrGoalNil for invalid input,
// ErrOptionViolation for bad options, ErrNegativeCost for a negative edge
// price, ErrUnreachable when the frontier empties first, ctx.Err() on
// cancellation, or a wrapped OnVisit error.
func ShortestPath(g *gridgraph.Graph, source NodeID, goal Goal, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if !g.Contains(source) {
		return 0, fmt.Errorf("%w: source %d", ErrNodeOutOfRange, source)
	}
	if goal == nil {
		return 0, ErrGoalNil
	}

	return newSearcher(g, goal, o).run(source)
}

// frontierItem is a heap entry; prio = dist + heuristic.
type frontierItem struct {
	id   NodeID
	dist int
	prio int
}

// frontier is a min-heap of frontierItem by prio. Among equal priorities
// the deeper entry wins, which settles goals sooner under a heuristic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].prio != f[j].prio {
		return f[i].prio < f[j].prio
	}
	return f[i].dist > f[j].dist
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// searcher holds the mutable state for a single search.
type searcher struct {
	g       *gridgraph.Graph
	goal    Goal
	opts    Options
	ctx     context.Context
	dist    []int  // best known distance, math.MaxInt if none
	settled []bool // distance is final
	pq      frontier
}

func newSearcher(g *gridgraph.Graph, goal Goal, o Options) *searcher {
	n := g.Order()
	s := &searcher{
		g:       g,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		dist:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(frontier, 0, n),
	}
	for i := range s.dist {
		s.dist[i] = math.MaxInt
	}
	return s
}

// run seeds the frontier with source and expands until a goal is settled.
func (s *searcher) run(source NodeID) (int, error) {
	s.push(source, 0)

	for s.pq.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-s.ctx.Done():
			return 0, s.ctx.Err()
		default:
		}

		item := heap.Pop(&s.pq).(frontierItem)
		if s.settled[item.id] || item.dist > s.dist[item.id] {
			continue // stale entry
		}
		s.settled[item.id] = true

		if err := s.opts.OnVisit(item.id, item.dist); err != nil {
			return 0, fmt.Errorf("pathfind: OnVisit error at %d: %w", item.id, err)
		}
		if s.goal(item.id) {
			return item.dist, nil
		}
		if err := s.relax(item); err != nil {
			return 0, err
		}
	}

	return 0, ErrUnreachable
}

// relax offers every unsettled neighbor of item a shorter distance.
func (s *searcher) relax(item frontierItem) error {
	for _, v := range s.g.Neighbors(item.id) {
		if s.settled[v] {
			continue
		}
		w := s.opts.EdgeCost(item.id, v)
		if w < 0 {
			return fmt.Errorf("%w: %d→%d costs %d", ErrNegativeCost, item.id, v, w)
		}
		nd := item.dist + w
		if s.opts.MaxDistance > 0 && nd > s.opts.MaxDistance {
			continue
		}
		if nd < s.dist[v] {
			s.push(v, nd)
		}
	}
	return nil
}

// push records d as the best distance to id and adds it to the frontier.
func (s *searcher) push(id NodeID, d int) {
	s.dist[id] = d
	s.opts.OnEnqueue(id, d)
	heap.Push(&s.pq, frontierItem{id: id, dist: d, prio: d + max(s.opts.Heuristic(id), 0)})
}
