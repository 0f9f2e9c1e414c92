package citytowers

// CellReader is everything a renderer needs to know about a grid.
// Grid satisfies it, but so can anything able to answer per cell queries
// (ie. a saved snapshot, a test fixture).
type CellReader interface {
	// dimensions of the grid
	Rows() int
	Cols() int

	// the tag at the given cell, errors if the cell is out of bounds
	CellState(row, col int) (CellTag, error)
}
