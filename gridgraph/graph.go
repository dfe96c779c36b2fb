package gridgraph

import (
	"fmt"
	"slices"
)

// Graph is a directed, unweighted adjacency list keyed by NodeID.
// Vertices are the dense range [0, Order()); edges have implicit cost 1.
// A Graph is never mutated after construction.
type Graph struct {
	adj   [][]NodeID
	edges int
}

// FromEdges builds a Graph with n vertices and the given directed edges.
// Each pair is (from, to). Duplicate pairs are kept as parallel edges.
// Returns ErrIndexOutOfRange if n is negative or an endpoint is not in [0,n).
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges [][2]NodeID) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d", ErrIndexOutOfRange, n)
	}
	g := &Graph{adj: make([][]NodeID, n)}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: edge %d→%d with %d vertices", ErrIndexOutOfRange, e[0], e[1], n)
		}
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.edges++
	}
	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of directed edges.
func (g *Graph) Size() int { return g.edges }

// Contains reports whether id is a vertex of g.
func (g *Graph) Contains(id NodeID) bool { return id >= 0 && id < len(g.adj) }

// Neighbors returns the heads of all edges leaving id, in insertion order
// (up, down, left, right for grid-built graphs). It returns nil for an
// unknown id. The slice is shared with g and must not be modified.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	return slices.Clip(g.adj[id])
}

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id NodeID) int {
	if !g.Contains(id) {
		return 0
	}
	return len(g.adj[id])
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(out-degree of from).
func (g *Graph) HasEdge(from, to NodeID) bool {
	if !g.Contains(from) {
		return false
	}
	return slices.Contains(g.adj[from], to)
}

// Transpose returns a new Graph with every edge reversed.
// Neighbor order in the result follows ascending tail NodeID.
// Complexity: O(V + E).
func (g *Graph) Transpose() *Graph {
	in := make([]int, len(g.adj))
	for _, heads := range g.adj {
		for _, v := range heads {
			in[v]++
		}
	}
	t := &Graph{adj: make([][]NodeID, len(g.adj)), edges: g.edges}
	for v, d := range in {
		if d > 0 {
			t.adj[v] = make([]NodeID, 0, d)
		}
	}
	for u, heads := range g.adj {
		for _, v := range heads {
			t.adj[v] = append(t.adj[v], u)
		}
	}
	return t
}
