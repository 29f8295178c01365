package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// benchMaze returns an n×n map with ~25% walls and open corners.
func benchMaze(n int, seed int64) *grid.Map {
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if rng.Intn(4) == 0 {
				values[r][c] = grid.Blocked
			}
		}
	}
	values[0][0], values[n-1][n-1] = grid.Open, grid.Open
	g, _ := grid.New(values)
	return g
}

// BenchmarkAStar_Open64 measures A* corner to corner on an empty 64×64 grid.
func BenchmarkAStar_Open64(b *testing.B) {
	g, _ := grid.New(open(64, 64))
	goal := grid.At(63, 63)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.AStar(g, grid.At(0, 0), goal)
	}
}

// BenchmarkStrategies_Maze128 runs each complete strategy on one 128×128 maze.
func BenchmarkStrategies_Maze128(b *testing.B) {
	g := benchMaze(128, 7)
	start, goal := grid.At(0, 0), grid.At(127, 127)
	cases := []struct {
		name string
		run  func(*grid.Map, grid.Cell, grid.Cell, ...search.Option) search.Trace
	}{
		{"BFS", search.BFS},
		{"DFS", search.DFS},
		{"Dijkstra", search.Dijkstra},
		{"AStar", search.AStar},
		{"Greedy", search.Greedy},
		{"Bidirectional", search.Bidirectional},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.Size()))
			for i := 0; i < b.N; i++ {
				_ = tc.run(g, start, goal)
			}
		})
	}
}
