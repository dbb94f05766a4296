package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadCell indicates an unknown cell symbol in textual input.
	ErrBadCell = errors.New("gridmap: unknown cell symbol")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridmap: position out of bounds")
)

func badCell(row, col int, ch rune) error {
	return fmt.Errorf("%w %q at row %d, col %d", ErrBadCell, ch, row, col)
}

func outOfBounds(p Position, g *Grid) error {
	return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, p, g.height, g.width)
}
