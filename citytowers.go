package citytowers

import (
	"github.com/pkg/errors"
)

// Build creates the grid described by cfg & places it's manual towers.
// Manual towers are free; they don't come out of the budget.
func Build(cfg *Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := New(&cfg.Grid)
	if err != nil {
		return nil, err
	}

	for _, t := range cfg.Towers {
		err = g.SetTower(t.Row, t.Col)
		if errors.Is(err, ErrNotBuildable) {
			// obstacles are random, a manual tower can easily land on one.
			// It may also sit under an earlier manual tower's coverage
			Logf("citytowers: skipping manual tower at (%d,%d): %v", t.Row, t.Col, err)
			continue
		} else if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Run builds the grid & spends the configured budget on it.
func Run(cfg *Config) (*Grid, *Result, error) {
	g, err := Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	res, err := Optimize(g, &cfg.Budget)
	return g, res, err
}
