package search

import (
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Bidirectional runs two FIFO frontiers, one from start and one from goal,
// expanding one cell on each side per iteration (start side first). It
// stops the moment a newly discovered cell is already visited by the other
// side and joins the two parent chains at that cell into Path.
//
// Steps begins with start and goal, then lists discoveries from both sides
// in order. If goal is not open the search is not attempted and Steps is
// just [start].
func Bidirectional(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	_ = buildOptions(opts) // no tunables; still rejects invalid options
	if !g.IsOpen(start) {
		return Trace{}
	}
	if !g.IsOpen(goal) {
		return Trace{Steps: []grid.Cell{start}}
	}
	steps := []grid.Cell{start, goal}
	if start == goal {
		return Trace{Steps: steps, Path: []grid.Cell{start}}
	}

	fwd := newFrontier(start)
	bwd := newFrontier(goal)
	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if meet, ok := fwd.expand(g, bwd, &steps); ok {
			return Trace{Steps: steps, Path: join(fwd, bwd, meet)}
		}
		if meet, ok := bwd.expand(g, fwd, &steps); ok {
			return Trace{Steps: steps, Path: join(fwd, bwd, meet)}
		}
	}

	return Trace{Steps: steps}
}

// frontier is one side of a bidirectional search.
type frontier struct {
	root    grid.Cell
	queue   []grid.Cell
	visited map[grid.Cell]bool
	parent  map[grid.Cell]grid.Cell
}

func newFrontier(root grid.Cell) *frontier {
	return &frontier{
		root:    root,
		queue:   []grid.Cell{root},
		visited: map[grid.Cell]bool{root: true},
		parent:  make(map[grid.Cell]grid.Cell),
	}
}

// expand dequeues one cell and discovers its open neighbors. It returns the
// first discovered cell that other has already visited.
func (f *frontier) expand(g *grid.Map, other *frontier, steps *[]grid.Cell) (grid.Cell, bool) {
	cur := f.queue[0]
	f.queue = f.queue[1:]
	for n := range g.OpenNeighbors(cur) {
		if f.visited[n] {
			continue
		}
		f.visited[n] = true
		f.parent[n] = cur
		f.queue = append(f.queue, n)
		*steps = append(*steps, n)
		if other.visited[n] {
			return n, true
		}
	}
	return grid.Cell{}, false
}

// join builds start→meet from fwd and meet→goal from bwd.
func join(fwd, bwd *frontier, meet grid.Cell) []grid.Cell {
	head := backtrack(fwd.parent, fwd.root, meet)
	tail := backtrack(bwd.parent, bwd.root, meet)
	slices.Reverse(tail)
	return append(head, tail[1:]...)
}
