package search

import "github.com/katalvlaran/gridpath/grid"

// BFS explores g breadth-first from start with a FIFO frontier. A cell is
// marked visited (and recorded in Steps) when it is enqueued; the search
// stops the first time goal is dequeued.
//
// The trace carries only the exploration order unless WithPath is given,
// in which case Path is the shortest start→goal path.
//
// Complexity: O(R×C) time and memory.
func BFS(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	w := newWalker(g, start, goal)
	w.steps = append(w.steps, start)

	queue := []grid.Cell{start}
	found := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			found = true
			break
		}
		for n := range g.OpenNeighbors(cur) {
			if w.discover(n, cur) {
				queue = append(queue, n)
				w.steps = append(w.steps, n)
			}
		}
	}

	return w.trace(found, o.ReconstructPath)
}

// DFS is BFS with a LIFO frontier. Cells are marked visited when pushed,
// so each cell is recorded once. No optimality guarantee.
func DFS(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	w := newWalker(g, start, goal)
	w.steps = append(w.steps, start)

	stack := []grid.Cell{start}
	found := false
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == goal {
			found = true
			break
		}
		for n := range g.OpenNeighbors(cur) {
			if w.discover(n, cur) {
				stack = append(stack, n)
				w.steps = append(w.steps, n)
			}
		}
	}

	return w.trace(found, o.ReconstructPath)
}
