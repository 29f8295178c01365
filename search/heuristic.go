package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Greedy is greedy best-first search: each iteration stable-sorts the
// frontier by Manhattan distance to goal and expands the head. It keeps no
// g-score and is neither complete on infinite spaces nor optimal.
// Steps records cells in expansion order.
func Greedy(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	w := newWalker(g, start, goal)
	byDistance := distanceTo(goal)

	open := []grid.Cell{start}
	found := false
	for len(open) > 0 {
		slices.SortStableFunc(open, byDistance)
		cur := open[0]
		open = open[1:]
		w.steps = append(w.steps, cur)
		if cur == goal {
			found = true
			break
		}
		for n := range g.OpenNeighbors(cur) {
			if w.discover(n, cur) {
				open = append(open, n)
			}
		}
	}

	return w.trace(found, o.ReconstructPath)
}

// Beam is a layered best-first search that keeps only the BeamWidth
// (default 3) cells closest to goal in each layer. Pruning happens before
// a layer is expanded; discarded cells stay visited, so Beam may miss a
// reachable goal. Steps records cells as they are discovered.
func Beam(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	w := newWalker(g, start, goal)
	w.steps = append(w.steps, start)
	byDistance := distanceTo(goal)

	layer := []grid.Cell{start}
	found := false
	for len(layer) > 0 && !found {
		slices.SortStableFunc(layer, byDistance)
		if len(layer) > o.BeamWidth {
			layer = layer[:o.BeamWidth]
		}
		var next []grid.Cell
		for _, cur := range layer {
			if cur == goal {
				found = true
				break
			}
			for n := range g.OpenNeighbors(cur) {
				if w.discover(n, cur) {
					next = append(next, n)
					w.steps = append(w.steps, n)
				}
			}
		}
		layer = next
	}

	return w.trace(found, o.ReconstructPath)
}

func distanceTo(goal grid.Cell) func(a, b grid.Cell) int {
	return func(a, b grid.Cell) int {
		return cmp.Compare(grid.Manhattan(a, goal), grid.Manhattan(b, goal))
	}
}
