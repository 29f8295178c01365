// Package grid treats a rectangular 2D occupancy matrix as a read-only
// search space for the strategies in gridpath.
//
// What:
//
//   - Map wraps a rectangular [][]int where 0 is an open cell and any
//     nonzero value is blocked.
//   - Cell is a (Row, Col) coordinate pair, usable as a map key.
//   - Neighbors enumerates the orthogonal in-bounds cells of a cell.
//   - Manhattan is the admissible heuristic for 4-directional unit moves.
//
// Determinism:
//
//	Neighbors always yields up, down, left, right (in that order). Every
//	strategy inherits its tie-breaking from this order, so exploration
//	traces are reproducible across runs.
//
// Complexity:
//
//   - New:        O(R×C) time and memory (deep copy).
//   - InBounds:   O(1).
//   - IsOpen:     O(1).
//   - Neighbors:  O(1) per yielded cell, no allocation.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
