// Package search implements the uninformed and informed route-finding
// strategies over a grid.Map.
//
// What
//
//   - BFS, DFS:            FIFO / LIFO frontier, visited-on-enqueue.
//   - Dijkstra, AStar:     priority frontier on g (resp. g + Manhattan).
//   - Greedy:              frontier stable-sorted by Manhattan distance.
//   - Beam:                layered best-first keeping BeamWidth cells.
//   - DepthLimited, IDDFS: recursive DFS with backtracking visited set.
//   - Bidirectional:       two alternating BFS frontiers that meet.
//   - RandomWalk:          uniform random moves, the incompleteness baseline.
//
// Every strategy has the shape
//
//	func(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace
//
// and never returns an error: a blocked or out-of-bounds start yields an
// empty Trace, and an unreachable goal yields a Trace whose Path is nil.
//
// Paths
//
//	AStar and Bidirectional always reconstruct Path. The remaining
//	strategies return only their exploration Steps unless WithPath is
//	supplied, in which case they rebuild Path from their parent links.
//	Any non-nil Path satisfies Trace.Validate.
//
// Determinism
//
//	Neighbors are enumerated up, down, left, right (see grid.Map.Neighbors)
//	and priority ties are broken by (row, col), so Steps is reproducible.
//	RandomWalk is reproducible for a given seed; the default seed is fixed.
//
// Options
//
//   - DefaultOptions():   BeamWidth=3, DepthLimit=20, MaxSteps=1000.
//   - WithBeamWidth(w):   Beam layer width (w ≥ 1).
//   - WithDepthLimit(n):  DepthLimited bound (n ≥ 0).
//   - WithMaxSteps(n):    RandomWalk move budget (n ≥ 0).
//   - WithRand(rng):      RandomWalk random source.
//   - WithSeed(seed):     RandomWalk seed (0 ⇒ fixed default).
//   - WithPath():         reconstruct Path for trace-only strategies.
//
// Invalid option arguments panic with an error wrapping ErrOptionViolation.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS, Greedy*, Beam, Bidirectional: O(N) cells, O(N) memory.
//   - AStar, Dijkstra: O(N log N) time, O(N) memory.
//   - DepthLimited, IDDFS: exponential in the depth bound in the worst case.
//   - RandomWalk: O(MaxSteps).
//
// (*) Greedy re-sorts its frontier each iteration: O(N² log N) worst case.
package search
