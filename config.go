package citytowers

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRadius is the Chebyshev reach of a tower (ie. a 3x3 window)
	DefaultRadius = 1

	defaultRows               = 10
	defaultCols               = 10
	defaultObstaclePercentage = 30
	defaultTowerCost          = 10
	defaultBudget             = 50
)

// GridConfig holds settings needed to create a Grid.
type GridConfig struct {
	// Rows & Cols of the grid, both must be > 0
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// ObstaclePercentage of cells (0-100) that are set as obstacles.
	// The resulting count is floored & clamped to the number of cells so
	// values outside of 0-100 are permitted but pointless.
	ObstaclePercentage float64 `yaml:"obstacle_percentage"`

	// Radius of tower coverage (Chebyshev distance).
	// DefaultRadius if 0 or less.
	Radius int `yaml:"radius"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `yaml:"seed"`
}

// radius returns the configured radius or the default
func (g *GridConfig) radius() int {
	if g.Radius <= 0 {
		return DefaultRadius
	}
	return g.Radius
}

// OptimizerConfig outlines a single budget constrained optimizer run.
type OptimizerConfig struct {
	// TowerCost is deducted from the Budget per placed tower, must be > 0
	TowerCost float64 `yaml:"tower_cost"`

	// Budget available to spend on towers, must be >= 0
	Budget float64 `yaml:"budget"`

	// DiscountNewTowers lets towers placed during the run discount later
	// candidates too. By default only towers that existed before the run
	// started count towards the proximity discount.
	DiscountNewTowers bool `yaml:"discount_new_towers"`
}

// Validate returns ErrInvalidBudgetParameters if the config can't be run
func (o *OptimizerConfig) Validate() error {
	if o == nil {
		return errors.Wrap(ErrInvalidBudgetParameters, "no optimizer config given")
	}
	if math.IsNaN(o.TowerCost) || o.TowerCost <= 0 {
		return errors.Wrapf(ErrInvalidBudgetParameters, "tower cost %v must be > 0", o.TowerCost)
	}
	if math.IsNaN(o.Budget) || o.Budget < 0 {
		return errors.Wrapf(ErrInvalidBudgetParameters, "budget %v must be >= 0", o.Budget)
	}
	return nil
}

// Config holds everything needed for a complete run; grid creation,
// manually placed towers & the optimizer.
type Config struct {
	Grid   GridConfig      `yaml:"grid"`
	Towers []Cell          `yaml:"towers"`
	Budget OptimizerConfig `yaml:"budget"`
}

// DefaultConfig returns the config of the demo city; a 10x10 grid with 30%
// obstacles, a tower at (5,5) and 50 to spend on towers costing 10 each.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:               defaultRows,
			Cols:               defaultCols,
			ObstaclePercentage: defaultObstaclePercentage,
			Radius:             DefaultRadius,
		},
		Towers: []Cell{{Row: 5, Col: 5}},
		Budget: OptimizerConfig{
			TowerCost: defaultTowerCost,
			Budget:    defaultBudget,
		},
	}
}

// LoadConfig reads a yaml config from disk.
// Unset grid dimensions & tower cost fall back to DefaultConfig values.
// Towers & budget are taken as given (an empty list or zero budget
// are perfectly valid).
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", fpath)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "failed to parse %s: %v", fpath, err)
	}

	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = defaultRows
	}
	if cfg.Grid.Cols == 0 {
		cfg.Grid.Cols = defaultCols
	}
	if cfg.Grid.Radius == 0 {
		cfg.Grid.Radius = DefaultRadius
	}
	if cfg.Budget.TowerCost == 0 {
		cfg.Budget.TowerCost = defaultTowerCost
	}

	return cfg, cfg.Validate()
}

// Validate checks the config before anything is built with it
func (c *Config) Validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalidConfig, "no config given")
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "%dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	for _, t := range c.Towers {
		if t.Row < 0 || t.Row >= c.Grid.Rows || t.Col < 0 || t.Col >= c.Grid.Cols {
			return errors.Wrapf(ErrOutOfBounds, "tower (%d,%d) in %dx%d grid", t.Row, t.Col, c.Grid.Rows, c.Grid.Cols)
		}
	}
	return c.Budget.Validate()
}
