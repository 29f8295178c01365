package search

import "github.com/katalvlaran/gridpath/grid"

// RandomWalk moves from start to a uniformly chosen open neighbor at every
// step, revisits allowed, until it stands on goal, MaxSteps (default 1000)
// moves have been made, or the current cell has no open neighbor. It is the
// baseline with no completeness guarantee.
//
// The walk draws from Options.Rand; without WithRand or WithSeed a fixed
// default seed is used, so repeated calls produce the same walk. With
// WithPath a successful walk is returned loop-erased as Path.
func RandomWalk(g *grid.Map, start, goal grid.Cell, opts ...Option) Trace {
	o := buildOptions(opts)
	if !g.IsOpen(start) {
		return Trace{}
	}
	rng := o.Rand
	if rng == nil {
		rng = RandFromSeed(0)
	}

	cur := start
	steps := []grid.Cell{cur}
	moves := make([]grid.Cell, 0, 4)
	for i := 0; i < o.MaxSteps; i++ {
		if cur == goal {
			break
		}
		moves = moves[:0]
		for n := range g.OpenNeighbors(cur) {
			moves = append(moves, n)
		}
		if len(moves) == 0 {
			break
		}
		cur = moves[rng.Intn(len(moves))]
		steps = append(steps, cur)
	}

	t := Trace{Steps: steps}
	if cur == goal && o.ReconstructPath {
		t.Path = eraseLoops(steps)
	}
	return t
}

// eraseLoops removes every cycle from walk, keeping the first and last cell.
// Consecutive cells of the result remain neighbors.
func eraseLoops(walk []grid.Cell) []grid.Cell {
	path := make([]grid.Cell, 0, len(walk))
	at := make(map[grid.Cell]int, len(walk))
	for _, c := range walk {
		if i, ok := at[c]; ok {
			for _, dropped := range path[i+1:] {
				delete(at, dropped)
			}
			path = path[:i+1]
			continue
		}
		at[c] = len(path)
		path = append(path, c)
	}
	return path
}
