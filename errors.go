package citytowers

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension implies a grid was asked for with rows or cols <= 0
	ErrInvalidDimension = errors.New("grid dimensions must be positive")

	// ErrOutOfBounds implies a (row, col) outside of the grid
	ErrOutOfBounds = errors.New("cell is out of bounds")

	// ErrInvalidBudgetParameters implies a non-positive tower cost or a
	// negative budget
	ErrInvalidBudgetParameters = errors.New("invalid budget parameters")

	// ErrNotBuildable implies a tower was placed on an obstacle
	ErrNotBuildable = errors.New("cell cannot host a tower")

	// ErrCorruptGrid implies the grid broke one of it's own invariants,
	// eg. a free cell sitting on top of a tower record
	ErrCorruptGrid = errors.New("grid state is inconsistent")

	// ErrInvalidConfig implies a config file could not be used
	ErrInvalidConfig = errors.New("invalid config")
)
