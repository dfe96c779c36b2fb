package pathfind_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// walled encloses E in a ring of 'x' (23): the path climbs to x but cannot
// gain the two levels onto E.
const walled = `Sbcdefghijklmnopqrstuvwxxx
aaaaaaaaaaaaaaaaaaaaaaaxEx
aaaaaaaaaaaaaaaaaaaaaaaxxx
`

// blockedOrigin traps S behind a 'z' while the 'a' next to it can climb to E.
const blockedOrigin = "SzabcdefghijklmnopqrstuvwxyE"

func build(t testing.TB, text string) *gridgraph.GridGraph {
	t.Helper()
	grid, err := heightmap.Parse(text)
	require.NoError(t, err)
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

// chain returns the directed path 0→1→…→n-1.
func chain(t testing.TB, n int) *gridgraph.Graph {
	t.Helper()
	edges := make([][2]gridgraph.NodeID, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]gridgraph.NodeID{i, i + 1})
	}
	g, err := gridgraph.FromEdges(n, edges)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// ShortestPath
//----------------------------------------------------------------------------//

// TestShortestPath_Errors verifies that invalid inputs and options are rejected.
func TestShortestPath_Errors(t *testing.T) {
	g := chain(t, 3)
	goal := pathfind.Target(2)

	_, err := pathfind.ShortestPath(nil, 0, goal)
	assert.ErrorIs(t, err, pathfind.ErrGraphNil)

	_, err = pathfind.ShortestPath(g, 3, goal)
	assert.ErrorIs(t, err, pathfind.ErrNodeOutOfRange)
	_, err = pathfind.ShortestPath(g, -1, goal)
	assert.ErrorIs(t, err, pathfind.ErrNodeOutOfRange)

	_, err = pathfind.ShortestPath(g, 0, nil)
	assert.ErrorIs(t, err, pathfind.ErrGoalNil)

	_, err = pathfind.ShortestPath(g, 0, goal, pathfind.WithMaxDistance(-1))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.ShortestPath(g, 0, goal, pathfind.WithEdgeCost(func(_, _ pathfind.NodeID) int { return -1 }))
	assert.ErrorIs(t, err, pathfind.ErrNegativeCost)
}

// TestShortestPath_Sample is the reference scenario: 31 steps from S to E.
func TestShortestPath_Sample(t *testing.T) {
	gg := build(t, sample)
	d, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination))
	require.NoError(t, err)
	assert.Equal(t, 31, d)
}

// TestShortestPath_Walled expects ErrUnreachable, not a sentinel number.
func TestShortestPath_Walled(t *testing.T) {
	gg := build(t, walled)
	d, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
	assert.Zero(t, d)
}

// TestShortestPath_Directed checks a one-way chain is only walkable forwards.
func TestShortestPath_Directed(t *testing.T) {
	g := chain(t, 4)
	d, err := pathfind.ShortestPath(g, 0, pathfind.Target(3))
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = pathfind.ShortestPath(g, 3, pathfind.Target(0))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
}

// TestShortestPath_SourceIsGoal returns zero without expanding anything.
func TestShortestPath_SourceIsGoal(t *testing.T) {
	gg := build(t, sample)
	visits := 0
	d, err := pathfind.ShortestPath(gg.Graph(), gg.Destination, pathfind.Target(gg.Destination),
		pathfind.WithOnVisit(func(pathfind.NodeID, int) error { visits++; return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
	assert.Equal(t, 1, visits)
}

// TestShortestPath_Idempotent reruns the same query on the same Graph.
func TestShortestPath_Idempotent(t *testing.T) {
	gg := build(t, sample)
	g := gg.Graph()
	size := g.Size()
	for i := 0; i < 5; i++ {
		d, err := pathfind.ShortestPath(g, gg.Origin, pathfind.Target(gg.Destination))
		require.NoError(t, err)
		assert.Equal(t, 31, d, "run %d", i)
	}
	assert.Equal(t, size, g.Size())
}

// TestShortestPath_VisitOnce asserts each node is settled at most once and
// distances are reported in non-decreasing order.
func TestShortestPath_VisitOnce(t *testing.T) {
	gg := build(t, walled)
	seen := make(map[pathfind.NodeID]int)
	last := 0
	_, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination),
		pathfind.WithOnVisit(func(id pathfind.NodeID, dist int) error {
			seen[id]++
			assert.GreaterOrEqual(t, dist, last)
			last = dist
			return nil
		}),
	)
	require.ErrorIs(t, err, pathfind.ErrUnreachable)
	for id, n := range seen {
		assert.Equal(t, 1, n, "node %d settled %d times", id, n)
	}
	assert.LessOrEqual(t, len(seen), gg.Graph().Order())
}

// TestShortestPath_Heuristic keeps the answer while settling no more nodes.
func TestShortestPath_Heuristic(t *testing.T) {
	gg := build(t, sample)
	count := func(opts ...pathfind.Option) (int, int) {
		visits := 0
		opts = append(opts, pathfind.WithOnVisit(func(pathfind.NodeID, int) error { visits++; return nil }))
		d, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination), opts...)
		require.NoError(t, err)
		return d, visits
	}

	plain, plainVisits := count()
	guided, guidedVisits := count(pathfind.WithHeuristic(gg.Manhattan(gg.Destination)))
	assert.Equal(t, 31, plain)
	assert.Equal(t, 31, guided)
	assert.LessOrEqual(t, guidedVisits, plainVisits)
}

// TestShortestPath_EdgeCost scales a constant cost.
func TestShortestPath_EdgeCost(t *testing.T) {
	gg := build(t, sample)
	d, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination),
		pathfind.WithEdgeCost(func(_, _ pathfind.NodeID) int { return 2 }),
	)
	require.NoError(t, err)
	assert.Equal(t, 62, d)
}

// TestShortestPath_MaxDistance cuts the search just short of and exactly at the goal.
func TestShortestPath_MaxDistance(t *testing.T) {
	gg := build(t, sample)
	g, goal := gg.Graph(), pathfind.Target(gg.Destination)

	_, err := pathfind.ShortestPath(g, gg.Origin, goal, pathfind.WithMaxDistance(30))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)

	d, err := pathfind.ShortestPath(g, gg.Origin, goal, pathfind.WithMaxDistance(31))
	require.NoError(t, err)
	assert.Equal(t, 31, d)

	// zero is "no limit"
	d, err = pathfind.ShortestPath(g, gg.Origin, goal, pathfind.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 31, d)
}

// TestShortestPath_Cancel stops on an already-cancelled context.
func TestShortestPath_Cancel(t *testing.T) {
	gg := build(t, sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pathfind.ShortestPath(gg.Graph(), gg.Origin, pathfind.Target(gg.Destination), pathfind.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestShortestPath_OnVisitError wraps and propagates hook failures.
func TestShortestPath_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	g := chain(t, 3)
	_, err := pathfind.ShortestPath(g, 0, pathfind.Target(2),
		pathfind.WithOnVisit(func(id pathfind.NodeID, _ int) error {
			if id == 1 {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, pathfind.ErrUnreachable)
}

// TestShortestPath_OnEnqueue sees the source first and every enqueue with a finite distance.
func TestShortestPath_OnEnqueue(t *testing.T) {
	g := chain(t, 3)
	var got []pathfind.NodeID
	_, err := pathfind.ShortestPath(g, 0, pathfind.Target(2),
		pathfind.WithOnEnqueue(func(id pathfind.NodeID, _ int) { got = append(got, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []pathfind.NodeID{0, 1, 2}, got)
}

// TestAnyOf matches members only.
func TestAnyOf(t *testing.T) {
	goal := pathfind.AnyOf(1, 4)
	assert.True(t, goal(1))
	assert.True(t, goal(4))
	assert.False(t, goal(2))
	assert.False(t, pathfind.AnyOf()(0))
}
