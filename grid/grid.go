package grid

import "iter"

// New constructs a Map from a non-empty, rectangular 2D slice.
// Zero is open; any other value is blocked. The input is copied, so later
// changes to values do not affect the Map.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Map, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	blocked := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		blocked[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			blocked[r][c] = values[r][c] != Open
		}
	}

	return &Map{rows: rows, cols: cols, blocked: blocked}, nil
}

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.cols }

// Size returns Rows()*Cols().
func (m *Map) Size() int { return m.rows * m.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// IsOpen reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (m *Map) IsOpen(c Cell) bool {
	return m.InBounds(c) && !m.blocked[c.Row][c.Col]
}

// Neighbors yields the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Blocked neighbors are included; callers filter
// with IsOpen. c itself need not be in bounds.
func (m *Map) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range offsets {
			n := c.Add(d)
			if !m.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// OpenNeighbors is Neighbors restricted to open cells.
func (m *Map) OpenNeighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for n := range m.Neighbors(c) {
			if m.blocked[n.Row][n.Col] {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns a fresh 0/1 matrix describing the grid.
func (m *Map) Values() [][]int {
	out := make([][]int, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = make([]int, m.cols)
		for c := 0; c < m.cols; c++ {
			if m.blocked[r][c] {
				out[r][c] = Blocked
			}
		}
	}

	return out
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the admissible distance
// estimate for 4-directional unit-cost moves.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b are orthogonal neighbors.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
