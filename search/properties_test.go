package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// randomMaze returns a rows×cols grid with roughly density walls, keeping
// start and goal open.
func randomMaze(rng *rand.Rand, rows, cols int, density float64, start, goal grid.Cell) [][]int {
	v := open(rows, cols)
	for r := range v {
		for c := range v[r] {
			if rng.Float64() < density {
				v[r][c] = grid.Blocked
			}
		}
	}
	v[start.Row][start.Col] = grid.Open
	v[goal.Row][goal.Col] = grid.Open
	return v
}

// TestAStar_MatchesBFSOnRandomMazes: A* path length equals the BFS shortest
// path length, and both agree on reachability.
func TestAStar_MatchesBFSOnRandomMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	start, goal := grid.At(0, 0), grid.At(9, 9)
	for i := 0; i < 200; i++ {
		g, err := grid.New(randomMaze(rng, 10, 10, 0.3, start, goal))
		require.NoError(t, err)

		ref := search.BFS(g, start, goal, search.WithPath())
		got := search.AStar(g, start, goal)
		require.Equal(t, ref.Found(), got.Found(), "maze %d: reachability differs", i)
		if ref.Found() {
			assert.Equal(t, ref.PathLength(), got.PathLength(), "maze %d", i)
			assert.NoError(t, got.Validate(g, start, goal), "maze %d", i)
		}
	}
}

// TestAStar_ExpandsNoMoreThanDijkstra compares trace lengths on the same input.
func TestAStar_ExpandsNoMoreThanDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	start, goal := grid.At(0, 0), grid.At(11, 7)
	for i := 0; i < 200; i++ {
		g, err := grid.New(randomMaze(rng, 12, 8, 0.25, start, goal))
		require.NoError(t, err)
		a := search.AStar(g, start, goal)
		d := search.Dijkstra(g, start, goal)
		assert.LessOrEqual(t, a.NodesVisited(), d.NodesVisited(), "maze %d", i)
	}
}

// TestAStar_StraightCorridor: with an exact heuristic A* walks straight to goal.
func TestAStar_StraightCorridor(t *testing.T) {
	g, err := grid.New(open(3, 5))
	require.NoError(t, err)
	tr := search.AStar(g, grid.At(0, 0), grid.At(0, 4))
	assert.Equal(t, cells(0, 0, 0, 1, 0, 2, 0, 3, 0, 4), tr.Steps)
	assert.Equal(t, tr.Steps, tr.Path)
	assert.Greater(t, search.Dijkstra(g, grid.At(0, 0), grid.At(0, 4)).NodesVisited(), tr.NodesVisited())
}

// TestBidirectional_ManhattanOnOpenGrid: without walls the joined path is a
// shortest path, so it has Manhattan distance edges.
func TestBidirectional_ManhattanOnOpenGrid(t *testing.T) {
	g, err := grid.New(open(7, 9))
	require.NoError(t, err)
	pairs := [][2]grid.Cell{
		{{0, 0}, {6, 8}},
		{{3, 4}, {3, 5}},
		{{6, 0}, {0, 8}},
		{{2, 2}, {5, 1}},
		{{0, 4}, {6, 4}},
	}
	for _, p := range pairs {
		tr := search.Bidirectional(g, p[0], p[1])
		require.True(t, tr.Found(), "%v→%v", p[0], p[1])
		assert.Equal(t, grid.Manhattan(p[0], p[1]), tr.PathLength()-1, "%v→%v: %v", p[0], p[1], tr.Path)
		assert.NoError(t, tr.Validate(g, p[0], p[1]))
	}
}

// TestPathValidity runs every bounded strategy with WithPath on random
// mazes and checks any returned path.
func TestPathValidity(t *testing.T) {
	bounded := map[string]strategy{
		"BFS":           search.BFS,
		"DFS":           search.DFS,
		"AStar":         search.AStar,
		"Dijkstra":      search.Dijkstra,
		"Greedy":        search.Greedy,
		"Beam":          search.Beam,
		"Bidirectional": search.Bidirectional,
		"RandomWalk":    search.RandomWalk,
	}
	rng := rand.New(rand.NewSource(7))
	start, goal := grid.At(0, 0), grid.At(7, 7)
	for i := 0; i < 100; i++ {
		g, err := grid.New(randomMaze(rng, 8, 8, 0.25, start, goal))
		require.NoError(t, err)
		reachable := search.BFS(g, start, goal, search.WithPath()).Found()
		for name, run := range bounded {
			tr := run(g, start, goal, search.WithPath(), search.WithSeed(int64(i+1)))
			require.NoError(t, tr.Validate(g, start, goal), "%s maze %d", name, i)
			if !reachable {
				assert.False(t, tr.Found(), "%s maze %d: path to unreachable goal", name, i)
			}
		}
	}
}

// TestCompleteStrategiesFindReachableGoal: the complete strategies succeed
// whenever BFS does.
func TestCompleteStrategiesFindReachableGoal(t *testing.T) {
	complete := []strategy{search.DFS, search.AStar, search.Dijkstra, search.Greedy, search.Bidirectional}
	rng := rand.New(rand.NewSource(31))
	start, goal := grid.At(0, 0), grid.At(5, 5)
	for i := 0; i < 100; i++ {
		g, err := grid.New(randomMaze(rng, 6, 6, 0.3, start, goal))
		require.NoError(t, err)
		if !search.BFS(g, start, goal, search.WithPath()).Found() {
			continue
		}
		for j, run := range complete {
			assert.True(t, run(g, start, goal, search.WithPath()).Found(), "strategy %d maze %d", j, i)
		}
	}
}
