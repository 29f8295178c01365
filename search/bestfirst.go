package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// AStar expands cells in order of f = g + h, where g is the step count from
// start and h is the Manhattan distance to goal. Because h never
// overestimates on a 4-connected unit-cost grid, the returned Path is a
// shortest path. AStar always reconstructs the path.
//
// Equal f values are broken by (row, col). Stale heap entries are skipped,
// so Steps lists each expanded cell exactly once.
//
// Complexity: O(N log N) time, O(N) memory, N = R×C.
func AStar(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	_ = buildOptions(opts) // no tunables; still rejects invalid options
	h := func(c grid.Cell) int { return grid.Manhattan(c, goal) }
	return bestFirst(g, start, goal, h, true)
}

// Dijkstra is AStar with h ≡ 0. With unit edge costs it expands cells in
// BFS order through a priority frontier. It returns the exploration trace
// only unless WithPath is given.
func Dijkstra(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	h := func(grid.Cell) int { return 0 }
	return bestFirst(g, start, goal, h, o.ReconstructPath)
}

// bestFirst is the shared A*/Dijkstra loop with lazy decrease-key.
func bestFirst(g *grid.Map, start, goal grid.Cell, h func(grid.Cell) int, wantPath bool) Trace {
	if !g.IsOpen(start) {
		return Trace{}
	}
	w := newWalker(g, start, goal)
	gScore := map[grid.Cell]int{start: 0}

	pq := make(cellPQ, 0, g.Size())
	heap.Push(&pq, cellItem{cell: start, g: 0, f: h(start)})

	found := false
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		// a cheaper entry for this cell has been pushed since
		if item.g > gScore[item.cell] {
			continue
		}
		w.steps = append(w.steps, item.cell)
		if item.cell == goal {
			found = true
			break
		}
		for n := range g.OpenNeighbors(item.cell) {
			tentative := item.g + 1
			if old, ok := gScore[n]; ok && tentative >= old {
				continue
			}
			gScore[n] = tentative
			w.parent[n] = item.cell
			heap.Push(&pq, cellItem{cell: n, g: tentative, f: tentative + h(n)})
		}
	}

	return w.trace(found, wantPath)
}

// cellItem is a frontier entry: the cell, its g-score and its priority f.
type cellItem struct {
	cell grid.Cell
	g    int
	f    int
}

// cellPQ is a min-heap of cellItem ordered by f, then row, then col.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by f ascending; equal priorities fall back to (row, col).
func (pq cellPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
