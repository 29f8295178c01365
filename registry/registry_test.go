package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/registry"
)

func TestNames_Order(t *testing.T) {
	want := []string{
		"BFS", "DFS", "A*", "Dijkstra", "Beam Search", "Greedy Best-First",
		"IDDFS", "Bidirectional BFS", "Depth-Limited DFS", "Random Walk", "Q-Learning",
	}
	assert.Equal(t, want, registry.Names())

	// Callers cannot reorder the table through the returned slice.
	names := registry.Names()
	names[0] = "mutated"
	assert.Equal(t, "BFS", registry.Names()[0])
}

func TestLookup(t *testing.T) {
	for _, name := range registry.Names() {
		s, ok := registry.Lookup(name)
		assert.True(t, ok, name)
		assert.NotNil(t, s, name)
	}
	_, ok := registry.Lookup("bfs")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestRun_Unknown(t *testing.T) {
	g, err := grid.New([][]int{{0}})
	require.NoError(t, err)
	tr, err := registry.Run("Simulated Annealing", g, grid.At(0, 0), grid.At(0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownStrategy))
	assert.Empty(t, tr.Steps)
	assert.Nil(t, tr.Path)
}

// TestRun_Unreachable: no strategy reports a path to a walled-off goal, and
// every reported path elsewhere is valid.
func TestRun_Unreachable(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	start, goal := grid.At(0, 0), grid.At(2, 1)

	for _, name := range registry.Names() {
		if name == registry.QLearning && testing.Short() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			tr, err := registry.Run(name, g, start, goal)
			require.NoError(t, err)
			assert.False(t, tr.Found())
			assert.NotEmpty(t, tr.Steps)
		})
	}
}

// TestRun_PathsValid runs every entry on a small open grid.
func TestRun_PathsValid(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	start, goal := grid.At(0, 0), grid.At(2, 3)

	for _, name := range registry.Names() {
		if name == registry.QLearning && testing.Short() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			tr, err := registry.Run(name, g, start, goal)
			require.NoError(t, err)
			require.NotEmpty(t, tr.Steps)
			assert.Equal(t, start, tr.Steps[0])
			if tr.Found() {
				assert.NoError(t, tr.Validate(g, start, goal))
			}
		})
	}

	tr, err := registry.Run(registry.AStar, g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, 6, tr.PathLength())
}

// TestRun_Concurrent shares one map across goroutines.
func TestRun_Concurrent(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	start, goal := grid.At(0, 0), grid.At(2, 4)

	want, err := registry.Run(registry.AStar, g, start, goal)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			got, err := registry.Run(registry.AStar, g, start, goal)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
