// Package gridpath is a toolkit for finding and tracing routes across a 2-D
// occupancy grid, from classic uninformed search to a learned Q-table policy.
//
// 🚀 What is gridpath?
//
//	A small, deterministic engine that brings together:
//		• Grid model: open/blocked cells, 4-connected neighbors (up, down, left, right)
//		• Uninformed search: BFS, DFS, Depth-Limited DFS, IDDFS, Bidirectional BFS
//		• Informed search: Dijkstra, A*, Greedy Best-First, Beam
//		• Sampling: Random Walk
//		• Learning: tabular Q-learning with shaped rewards
//
// Every strategy returns a Trace: the ordered cells it visited (the
// "nodes visited" statistic) and, when it has one, a start→goal path.
//
// ✨ Why gridpath?
//
//   - One shape for every strategy, so they can be swapped and compared by name
//   - Reproducible: random strategies draw from a seedable source
//   - No shared state: a *grid.Map is immutable and safe to share
//
// Subpackages:
//
//	grid/       Cell, Map, Manhattan distance
//	search/     Trace, Options and every non-learned strategy
//	qlearn/     Q-learning Trainer, QTable, Search
//	registry/   fixed name → strategy table in menu order
//	layout/     saved {grid, start, end} records (JSON, YAML)
//
// Quick ASCII example (S start, G goal, # wall):
//
//	S . . .
//	# # . #
//	G . . .
//
// A* returns S→(0,1)→(0,2)→(1,2)→(2,2)→(2,1)→G, seven cells.
//
// The gridsearch command runs any strategy against a saved layout:
//
//	go run ./cmd/gridsearch -layout maze.json -algo all
package gridpath
