// Package hillclimb finds the fewest steps up a height map, from a marked
// start or from the best of all lowest squares, to the summit.
//
// 🚀 What is hillclimb?
//
//	A small engine with no runtime dependencies that brings together:
//		• Parsing: text height maps ('a'..'z', 'S' start, 'E' summit)
//		• Layout: a directed graph where a step may climb at most one level
//		• Search: best-first shortest paths, multi-source sweeps, reverse sweeps
//
// Under the hood, everything is organized under a few subpackages:
//
//	heightmap/     — text → immutable Grid of elevations + markers
//	gridgraph/     — Grid → directed adjacency list keyed by dense NodeIDs
//	pathfind/      — ShortestPath, Sweep and Nearest over a gridgraph.Graph
//	climb/         — parse → lay out → query facade with structured logging
//	cmd/hillclimb/ — command-line driver
//
// Quick ASCII example:
//
//	S b c
//	f e E
//
//	S→b→c is walkable, but nothing may climb onto E: the summit is unreachable.
//
//	go run github.com/katalvlaran/hillclimb/cmd/hillclimb map.txt
package hillclimb
