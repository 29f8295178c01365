package search

import "github.com/katalvlaran/gridpath/grid"

// DepthLimited runs a single recursive DFS that never descends more than
// DepthLimit (default 20) edges below start. The visited set holds only the
// cells on the current recursion path: a cell is added on entry and removed
// on exit, so other branches may pass through it again. Steps records every
// entered cell, including re-entries from different branches.
func DepthLimited(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	d := &deepener{g: g, goal: goal}
	found := d.run(start, o.DepthLimit)

	return d.trace(found, o.ReconstructPath)
}

// IDDFS repeats DepthLimited with limits 0, 1, 2, … up to R×C-1, starting
// each attempt with a fresh visited set, until goal is found. Steps
// accumulates the cells of every attempt, not just the successful one.
// The first successful limit equals the BFS distance to goal, so the path
// produced with WithPath is a shortest path.
func IDDFS(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	d := &deepener{g: g, goal: goal}
	found := false
	for limit := 0; limit < g.Size() && !found; limit++ {
		found = d.run(start, limit)
	}

	return d.trace(found, o.ReconstructPath)
}

// deepener is the recursive depth-limited walker. stack mirrors the
// recursion path; after a successful run it is the start→goal path.
type deepener struct {
	g       *grid.Map
	goal    grid.Cell
	visited map[grid.Cell]bool
	stack   []grid.Cell
	steps   []grid.Cell
}

// run starts one depth-limited attempt from start with a fresh visited set.
func (d *deepener) run(start grid.Cell, limit int) bool {
	d.visited = map[grid.Cell]bool{start: true}
	d.stack = d.stack[:0]
	return d.descend(start, limit)
}

func (d *deepener) descend(cur grid.Cell, depth int) bool {
	d.steps = append(d.steps, cur)
	d.stack = append(d.stack, cur)
	if cur == d.goal {
		return true
	}
	if depth > 0 {
		for n := range d.g.OpenNeighbors(cur) {
			if d.visited[n] {
				continue
			}
			d.visited[n] = true
			found := d.descend(n, depth-1)
			delete(d.visited, n)
			if found {
				return true
			}
		}
	}
	d.stack = d.stack[:len(d.stack)-1]
	return false
}

func (d *deepener) trace(found, wantPath bool) Trace {
	t := Trace{Steps: d.steps}
	if found && wantPath {
		t.Path = append([]grid.Cell(nil), d.stack...)
	}
	return t
}
