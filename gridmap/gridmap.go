// Package gridmap provides an immutable occupancy grid for path searches.
//
// Cells are addressed by Position{Row, Col}; a position is in bounds when
// 0 ≤ Row < Height and 0 ≤ Col < Width.
package gridmap

import (
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of walkable flags.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if walkable has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(walkable [][]bool) (*Grid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])
	for _, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], walkable[r])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// FromInts builds a Grid from integer cells where 0 is walkable and any
// other value is an obstacle.
// Same errors as New.
func FromInts(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	walkable := make([][]bool, len(values))
	for r, row := range values {
		walkable[r] = make([]bool, len(row))
		for c, v := range row {
			walkable[r][c] = v == 0
		}
	}

	return New(walkable)
}

// Parse builds a Grid from ASCII rows: '.' is walkable, '#' is an obstacle.
// Blank lines and surrounding whitespace are ignored.
// Returns ErrBadCell (wrapped with the offending row and column) on any
// other symbol, plus the errors of New.
func Parse(text string) (*Grid, error) {
	var walkable [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case SymbolFree:
				row = append(row, true)
			case SymbolObstacle:
				row = append(row, false)
			default:
				return nil, badCell(len(walkable), len(row), ch)
			}
		}
		walkable = append(walkable, row)
	}

	return New(walkable)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return g.width * g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// IsWalkable reports whether the cell at p is free.
// Returns ErrOutOfBounds if p is outside the grid; callers that only need
// a neighbor gate should use Passable.
// Complexity: O(1).
func (g *Grid) IsWalkable(p Position) (bool, error) {
	if !g.InBounds(p) {
		return false, outOfBounds(p, g)
	}

	return g.cells[p.Row][p.Col], nil
}

// Passable reports whether p is both in bounds and walkable.
// Complexity: O(1).
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col]
}

// Index maps p to a row-major index: Row*Width + Col.
// The result is meaningful only for in-bounds positions.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// Offsets returns the unit moves used for adjacency, in expansion order
// right, down, left, up.
func (g *Grid) Offsets() [4][2]int {
	return offsets4
}

// Neighbors returns the passable 4-neighbors of p in Offsets order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(offsets4))
	for _, d := range offsets4 {
		n := p.Add(d[0], d[1])
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Walkable returns the number of free cells.
// Complexity: O(W×H).
func (g *Grid) Walkable() int {
	n := 0
	for _, row := range g.cells {
		for _, free := range row {
			if free {
				n++
			}
		}
	}

	return n
}

// Render draws the grid one row per line using '.' for free cells and '#'
// for obstacles. Cells on path are drawn as '*', its first cell as 'S' and
// its last as 'G'. Positions of path outside the grid are ignored.
func (g *Grid) Render(path []Position) string {
	canvas := make([][]byte, g.height)
	for r := 0; r < g.height; r++ {
		canvas[r] = make([]byte, g.width)
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] {
				canvas[r][c] = SymbolFree
			} else {
				canvas[r][c] = SymbolObstacle
			}
		}
	}
	for i, p := range path {
		if !g.InBounds(p) {
			continue
		}
		switch i {
		case 0:
			canvas[p.Row][p.Col] = SymbolStart
		case len(path) - 1:
			canvas[p.Row][p.Col] = SymbolGoal
		default:
			canvas[p.Row][p.Col] = SymbolPath
		}
	}

	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
