package search

import (
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// walker holds the visited set and parent links of a frontier search.
// Steps are recorded by the strategy, since each one logs at a different
// moment (discovery or expansion).
type walker struct {
	g       *grid.Map
	start   grid.Cell
	goal    grid.Cell
	visited map[grid.Cell]bool
	parent  map[grid.Cell]grid.Cell
	steps   []grid.Cell
}

func newWalker(g *grid.Map, start, goal grid.Cell) *walker {
	n := g.Size()
	return &walker{
		g:       g,
		start:   start,
		goal:    goal,
		visited: map[grid.Cell]bool{start: true},
		parent:  make(map[grid.Cell]grid.Cell, n),
		steps:   make([]grid.Cell, 0, n),
	}
}

// discover marks n visited with predecessor from. It reports false if n
// was already seen.
func (w *walker) discover(n, from grid.Cell) bool {
	if w.visited[n] {
		return false
	}
	w.visited[n] = true
	w.parent[n] = from
	return true
}

// trace packs the recorded steps, adding a path when the goal was reached
// and a path is wanted.
func (w *walker) trace(found, wantPath bool) Trace {
	t := Trace{Steps: w.steps}
	if found && wantPath {
		t.Path = backtrack(w.parent, w.start, w.goal)
	}
	return t
}

// backtrack walks parent links from to back to root and returns the
// root→to sequence. Every cell between must have a parent entry.
func backtrack(parent map[grid.Cell]grid.Cell, root, to grid.Cell) []grid.Cell {
	path := []grid.Cell{to}
	for cur := to; cur != root; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
