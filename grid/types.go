package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Cell state values accepted by New. Any nonzero value is treated as Blocked.
const (
	Open    = 0
	Blocked = 1
)

// Cell is a zero-indexed grid coordinate.
type Cell struct {
	Row, Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Unit moves in neighbor enumeration order.
var (
	Up    = Cell{Row: -1, Col: 0}
	Down  = Cell{Row: 1, Col: 0}
	Left  = Cell{Row: 0, Col: -1}
	Right = Cell{Row: 0, Col: 1}
)

// offsets is the fixed enumeration order shared by every traversal.
var offsets = [4]Cell{Up, Down, Left, Right}

// Offsets returns the four unit moves in enumeration order: up, down, left, right.
func Offsets() [4]Cell {
	return offsets
}

// Map is an immutable occupancy grid. blocked[r][c] is true for walls.
// It is safe to share a *Map between concurrent searches.
type Map struct {
	rows, cols int
	blocked    [][]bool
}
