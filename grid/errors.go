package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNoPath indicates no passable route exists between two positions.
	ErrNoPath = errors.New("grid: no path between positions")
	// ErrUnknownDirection indicates a direction name that is not up/down/left/right.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
