package citytowers

import (
	"math"

	"github.com/pkg/errors"
)

// OptimizerState is where an optimizer run currently is.
type OptimizerState int

const (
	Selecting OptimizerState = iota // scanning free cells for the best candidate
	Placing                         // committing the winning candidate
	Exhausted                       // done, nothing left to place or pay with
)

// String returns the name of the state
func (s OptimizerState) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case Placing:
		return "placing"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// StopReason says why an optimizer run became Exhausted.
type StopReason string

const (
	StopNoCandidates StopReason = "no-candidates" // no Free cells left
	StopOutOfBudget  StopReason = "out-of-budget" // budget < tower cost
	StopNoGain       StopReason = "no-gain"       // no candidate scored above 0
)

// Score returns the gain-per-cost of placing a tower at c.
//
// The raw gain is the number of Free cells within radius of c. Each tower
// in towers then discounts it by min(tower coverage, raw gain / distance)
// so that candidates close to towers that already serve a lot of cells are
// less attractive. The result is divided by cost.
// Every tower's term uses the undiscounted raw gain, not the gain left
// after earlier towers, so the order of towers doesn't matter.
//
// Score does not modify the grid.
func Score(g *Grid, c Cell, towers []TowerRecord, cost float64, radius int) (float64, error) {
	raw, err := RawGain(g, c.Row, c.Col, radius)
	if err != nil {
		return 0, err
	}

	gain := float64(raw)
	for _, t := range towers {
		dist := calculateDist(c.Col, c.Row, t.Col, t.Row)
		if dist == 0 {
			// a free cell can't sit under a tower
			return 0, errors.Wrapf(ErrCorruptGrid, "candidate (%d,%d) is on a tower", c.Row, c.Col)
		}
		gain -= math.Min(float64(t.Coverage), float64(raw)/dist)
	}

	return gain / cost, nil
}

// budgetRun holds the state of a single optimizer run over a grid
type budgetRun struct {
	g   *Grid
	cfg *OptimizerConfig

	state     OptimizerState
	towers    []TowerRecord
	remaining float64
	res       *Result

	// winning candidate chosen in Selecting
	pick      Cell
	pickScore float64
}

// Optimize greedily places towers on g until the budget, the free cells or
// worthwhile candidates run out.
//
// Each round every Free cell is scored (see Score) and the strictly best
// cell scoring above 0 gets a tower. Ties go to the first cell in row-major
// order. Running out of candidates or money is a normal stop, not an error;
// Result.Reason says which one happened. A nil cfg fails with
// ErrInvalidBudgetParameters.
func Optimize(g *Grid, cfg *OptimizerConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &budgetRun{
		g:         g,
		cfg:       cfg,
		state:     Selecting,
		towers:    g.Towers(),
		remaining: cfg.Budget,
		res: &Result{
			Remaining: cfg.Budget,
			Placed:    []Cell{},
			Steps:     []Step{},
		},
	}
	r.res.start = r.snapshot(Cell{Row: -1, Col: -1}, 0)

	for r.state != Exhausted {
		var err error
		switch r.state {
		case Selecting:
			err = r.selecting()
		case Placing:
			err = r.placing()
		}
		if err != nil {
			return nil, err
		}
	}

	Logf("citytowers: placed %d towers, %v remaining (%s)", len(r.res.Placed), r.res.Remaining, r.res.Reason)
	return r.res, nil
}

// OptimizeWithBudget runs Optimize & returns only the budget left over.
func OptimizeWithBudget(g *Grid, towerCost, budget float64) (float64, error) {
	res, err := Optimize(g, &OptimizerConfig{TowerCost: towerCost, Budget: budget})
	if err != nil {
		return budget, err
	}
	return res.Remaining, nil
}

// selecting finds the best candidate or moves to Exhausted
func (r *budgetRun) selecting() error {
	candidates := r.g.Cells(Free)
	if len(candidates) == 0 {
		r.exhaust(StopNoCandidates)
		return nil
	}
	if r.remaining < r.cfg.TowerCost {
		r.exhaust(StopOutOfBudget)
		return nil
	}

	found := false
	best := 0.0 // a candidate has to beat 0 to be worth anything
	for _, c := range candidates {
		score, err := Score(r.g, c, r.towers, r.cfg.TowerCost, r.g.radius)
		if err != nil {
			return err
		}
		if score > best {
			best = score
			r.pick = c
			found = true
		}
	}

	if !found {
		r.exhaust(StopNoGain)
		return nil
	}

	r.pickScore = best
	r.state = Placing
	return nil
}

// placing commits the chosen candidate & pays for it
func (r *budgetRun) placing() error {
	err := r.g.SetTower(r.pick.Row, r.pick.Col)
	if err != nil {
		return err
	}

	r.res.Placed = append(r.res.Placed, r.pick)
	// derived from the count rather than subtracted in place so that the
	// remainder is always exactly Budget - k*TowerCost
	r.remaining = r.cfg.Budget - float64(len(r.res.Placed))*r.cfg.TowerCost
	r.res.Remaining = r.remaining

	if r.cfg.DiscountNewTowers {
		r.towers = r.g.Towers()
	}

	step := r.snapshot(r.pick, r.pickScore)
	r.res.Steps = append(r.res.Steps, step)
	Logf("citytowers: tower at (%d,%d) gain/cost %.3f, %d covered, %v remaining", step.Row, step.Col, step.GainPerCost, step.Covered, step.Remaining)

	r.state = Selecting
	return nil
}

// exhaust ends the run
func (r *budgetRun) exhaust(why StopReason) {
	r.res.Reason = why
	r.state = Exhausted
}

// snapshot builds a Step from the current grid
func (r *budgetRun) snapshot(c Cell, score float64) Step {
	return Step{
		Cell:        c,
		GainPerCost: score,
		Remaining:   r.remaining,
		Covered:     r.g.Count(Covered),
		Towers:      r.g.Count(Tower),
	}
}
