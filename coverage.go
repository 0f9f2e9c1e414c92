package citytowers

import (
	"github.com/pkg/errors"
)

// ApplyCoverage marks every Free cell within radius of row, col as Covered.
// Obstacles, towers & already covered cells are left alone, so applying
// coverage twice from the same place is the same as applying it once.
func ApplyCoverage(g *Grid, row, col, radius int) error {
	if g.isOutOfBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "coverage from (%d,%d)", row, col)
	}
	for _, c := range g.Neighborhood(row, col, radius) {
		if g.get(c.Row, c.Col) == Free {
			g.set(c.Row, c.Col, Covered)
		}
	}
	return nil
}

// LocalCoverageCount returns how many cells within radius of row, col are
// Covered.
func LocalCoverageCount(g *Grid, row, col, radius int) (int, error) {
	return countAround(g, row, col, radius, Covered)
}

// RawGain returns how many cells within radius of row, col are still Free,
// that is, how many cells a tower here would newly cover.
func RawGain(g *Grid, row, col, radius int) (int, error) {
	return countAround(g, row, col, radius, Free)
}

// countAround counts cells of the given tag within radius of row, col
func countAround(g *Grid, row, col, radius int, tag CellTag) (int, error) {
	if g.isOutOfBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	count := 0
	for _, c := range g.Neighborhood(row, col, radius) {
		if g.get(c.Row, c.Col) == tag {
			count++
		}
	}
	return count, nil
}
