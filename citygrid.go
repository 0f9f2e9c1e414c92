package citytowers

import (
	"math"
	"math/rand"
	"time"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/voidshard/citytowers/internal/encoding"
)

// Grid is a rows x cols city where each cell holds one CellTag.
// A Grid is owned by a single caller for it's lifetime, nothing
// here is safe for concurrent use.
type Grid struct {
	rows   int
	cols   int
	radius int

	// Seed the obstacles were placed with
	Seed int64

	// cells holds two bits per cell (see internal/encoding), row-major
	cells bitmap.Bitmap

	// towers in the order they were placed
	towers []TowerRecord
}

// New creates a grid of Free cells & scatters obstacles over it.
func New(cfg *GridConfig) (*Grid, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidDimension, "no grid config given")
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "cannot create %dx%d grid", cfg.Rows, cfg.Cols)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Grid{
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		radius: cfg.radius(),
		Seed:   seed,
		cells:  encoding.NewPacked(cfg.Rows * cfg.Cols),
		towers: []TowerRecord{},
	}

	count := obstacleCount(cfg.ObstaclePercentage, g.rows*g.cols)
	rng := rand.New(rand.NewSource(seed))
	for _, i := range sampleIndices(rng, g.rows*g.cols, count) {
		g.set(i/g.cols, i%g.cols, Obstacle)
	}

	Logf("citytowers: created %dx%d grid with %d obstacles (seed %d)", g.rows, g.cols, count, seed)
	return g, nil
}

// obstacleCount is floor(pct/100 * total) clamped to [0, total]
func obstacleCount(pct float64, total int) int {
	if math.IsNaN(pct) {
		return 0
	}
	n := math.Floor(pct / 100 * float64(total))
	if n <= 0 {
		return 0
	}
	if n >= float64(total) {
		return total
	}
	return int(n)
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Radius returns the coverage radius towers placed with SetTower use
func (g *Grid) Radius() int {
	return g.radius
}

// CellState returns the tag at row, col
func (g *Grid) CellState(row, col int) (CellTag, error) {
	if g.isOutOfBounds(row, col) {
		return Free, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.get(row, col), nil
}

// SetTower places a tower at row, col & covers the free cells around it.
// Only Free cells may take a tower. Placing on an existing tower changes
// nothing. Obstacles & Covered cells are refused with ErrNotBuildable and
// the grid is left as it was.
func (g *Grid) SetTower(row, col int) error {
	tag, err := g.CellState(row, col)
	if err != nil {
		return err
	}

	switch tag {
	case Obstacle, Covered:
		return errors.Wrapf(ErrNotBuildable, "(%d,%d) is %s", row, col, tag)
	case Tower:
		// coverage is idempotent, so this is safe & keeps SetTower
		// equivalent to "ensure a tower is here"
		return ApplyCoverage(g, row, col, g.radius)
	}

	g.set(row, col, Tower)
	if err := ApplyCoverage(g, row, col, g.radius); err != nil {
		return err
	}

	covered, err := LocalCoverageCount(g, row, col, g.radius)
	if err != nil {
		return err
	}
	g.towers = append(g.towers, TowerRecord{Cell: Cell{Row: row, Col: col}, Coverage: covered})

	return nil
}

// Neighborhood returns all in bounds cells within Chebyshev distance radius
// of row, col (including row, col itself) in row-major order.
// The centre itself need not be in bounds.
func (g *Grid) Neighborhood(row, col, radius int) []Cell {
	if radius < 0 {
		radius = 0
	}

	r0, r1 := essentials.MaxInt(0, row-radius), essentials.MinInt(g.rows, row+radius+1)
	c0, c1 := essentials.MaxInt(0, col-radius), essentials.MinInt(g.cols, col+radius+1)

	found := []Cell{}
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			found = append(found, Cell{Row: r, Col: c})
		}
	}
	return found
}

// Cells returns all cells with the given tag in row-major order
func (g *Grid) Cells(tag CellTag) []Cell {
	found := []Cell{}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.get(r, c) == tag {
				found = append(found, Cell{Row: r, Col: c})
			}
		}
	}
	return found
}

// Count returns the number of cells with the given tag
func (g *Grid) Count(tag CellTag) int {
	count := 0
	for i := 0; i < g.rows*g.cols; i++ {
		if CellTag(encoding.Get(g.cells, i)) == tag {
			count++
		}
	}
	return count
}

// Towers returns records of all placed towers, oldest first
func (g *Grid) Towers() []TowerRecord {
	out := make([]TowerRecord, len(g.towers))
	copy(out, g.towers)
	return out
}

// Stats counts cells by tag
func (g *Grid) Stats() *GridStats {
	s := newGridStats(g.rows * g.cols)
	for i := 0; i < g.rows*g.cols; i++ {
		s.increment(CellTag(encoding.Get(g.cells, i)))
	}
	s.Towers = len(g.towers)
	return s
}

// get returns the tag at row, col. Assumes bounds are already checked.
func (g *Grid) get(row, col int) CellTag {
	return CellTag(encoding.Get(g.cells, g.index(row, col)))
}

// set the tag at row, col. Assumes bounds are already checked.
func (g *Grid) set(row, col int, tag CellTag) {
	encoding.Set(g.cells, g.index(row, col), uint8(tag))
}

// index of row, col in our bitmap
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// isOutOfBounds determines if row, col is outside of the grid
func (g *Grid) isOutOfBounds(row, col int) bool {
	return row < 0 || row >= g.rows || col < 0 || col >= g.cols
}
