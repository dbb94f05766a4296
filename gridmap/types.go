// Package gridmap defines core types and cell symbols
// for the gridmap package of github.com/katalvlaran/gridpath.
package gridmap

import "fmt"

// Cell symbols understood by Parse and emitted by Render.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolPath     = '*'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
)

// Position addresses a single cell by row and column.
// It is a comparable value type and may be used as a map key.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// offsets4 lists the unit moves in expansion order: right, down, left, up.
var offsets4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable rectangular occupancy map.
// cells[r][c] is true when the cell at row r, column c is walkable.
type Grid struct {
	width, height int
	cells         [][]bool
}
