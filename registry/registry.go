// Package registry maps user-facing strategy names to search callables.
//
// The table is fixed at compile time and read-only, so it may be consulted
// from any number of goroutines. Every entry runs with its package defaults;
// callers that need tuning call the search or qlearn packages directly.
package registry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/qlearn"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownStrategy is returned by Run for a name not in the table.
var ErrUnknownStrategy = errors.New("registry: unknown strategy")

// Strategy is the uniform shape of every registered search.
type Strategy func(g *grid.Map, start, goal grid.Cell) search.Trace

// Strategy names, in menu order.
const (
	BFS           = "BFS"
	DFS           = "DFS"
	AStar         = "A*"
	Dijkstra      = "Dijkstra"
	Beam          = "Beam Search"
	Greedy        = "Greedy Best-First"
	IDDFS         = "IDDFS"
	Bidirectional = "Bidirectional BFS"
	DepthLimited  = "Depth-Limited DFS"
	RandomWalk    = "Random Walk"
	QLearning     = "Q-Learning"
)

type entry struct {
	name string
	run  Strategy
}

// adapt drops the variadic options so every search fits Strategy.
func adapt(f func(*grid.Map, grid.Cell, grid.Cell, ...search.Option) search.Trace) Strategy {
	return func(g *grid.Map, start, goal grid.Cell) search.Trace {
		return f(g, start, goal)
	}
}

var entries = []entry{
	{BFS, adapt(search.BFS)},
	{DFS, adapt(search.DFS)},
	{AStar, adapt(search.AStar)},
	{Dijkstra, adapt(search.Dijkstra)},
	{Beam, adapt(search.Beam)},
	{Greedy, adapt(search.Greedy)},
	{IDDFS, adapt(search.IDDFS)},
	{Bidirectional, adapt(search.Bidirectional)},
	{DepthLimited, adapt(search.DepthLimited)},
	{RandomWalk, adapt(search.RandomWalk)},
	{QLearning, func(g *grid.Map, start, goal grid.Cell) search.Trace {
		return qlearn.Search(g, start, goal)
	}},
}

var index = func() map[string]Strategy {
	m := make(map[string]Strategy, len(entries))
	for _, e := range entries {
		m[e.name] = e.run
	}
	return m
}()

// Names returns every registered name in menu order. The slice is a copy.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, bool) {
	s, ok := index[name]
	return s, ok
}

// Run looks up name and runs it on (g, start, goal).
func Run(name string, g *grid.Map, start, goal grid.Cell) (search.Trace, error) {
	s, ok := Lookup(name)
	if !ok {
		return search.Trace{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s(g, start, goal), nil
}
