package citytowers

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_InvalidParameters(t *testing.T) {
	cases := []struct {
		name         string
		cost, budget float64
	}{
		{"zero cost", 0, 50},
		{"negative cost", -10, 50},
		{"nan cost", math.NaN(), 50},
		{"negative budget", 10, -1},
		{"nan budget", 10, math.NaN()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newEmptyGrid(t, 4, 4)

			res, err := Optimize(g, &OptimizerConfig{TowerCost: c.cost, Budget: c.budget})
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrInvalidBudgetParameters), "%v", err)

			// nothing may change on a rejected run
			assert.Equal(t, 16, g.Count(Free))
		})
	}
}

func TestOptimize_NilConfig(t *testing.T) {
	g := newEmptyGrid(t, 4, 4)

	res, err := Optimize(g, nil)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInvalidBudgetParameters), "%v", err)
	assert.Equal(t, 16, g.Count(Free))
}

func TestOptimize_BudgetBelowCost(t *testing.T) {
	g := newEmptyGrid(t, 10, 10)
	require.NoError(t, g.SetTower(5, 5))

	remaining, err := OptimizeWithBudget(g, 10, 5)
	require.NoError(t, err)

	assert.Equal(t, 5.0, remaining)
	assert.Equal(t, 1, g.Count(Tower))
	assert.Equal(t, 91, g.Count(Free))
}

func TestOptimize_ZeroBudget(t *testing.T) {
	g := newEmptyGrid(t, 3, 3)

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 0})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Remaining)
	assert.Empty(t, res.Placed)
	assert.Equal(t, StopOutOfBudget, res.Reason)
}

func TestOptimize_DemoScenario(t *testing.T) {
	g := newEmptyGrid(t, 10, 10)
	require.NoError(t, g.SetTower(5, 5))

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 10, Budget: 50})
	require.NoError(t, err)

	// the far corner of the interior is the first pick; full raw gain & the
	// smallest discount from (5,5)
	require.NotEmpty(t, res.Placed)
	assert.Equal(t, Cell{1, 1}, res.Placed[0])

	assert.LessOrEqual(t, len(res.Placed), 5)
	assert.Equal(t, 50-10*float64(len(res.Placed)), res.Remaining)
	assert.GreaterOrEqual(t, res.Remaining, 0.0)
	assert.Equal(t, 1+len(res.Placed), g.Count(Tower))
	assert.Len(t, g.Towers(), 1+len(res.Placed))

	if res.Remaining >= 10 {
		assert.Contains(t, []StopReason{StopNoGain, StopNoCandidates}, res.Reason)
	} else {
		assert.Equal(t, StopOutOfBudget, res.Reason)
	}
}

func TestOptimize_NeverOverspends(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := New(&GridConfig{Rows: 12, Cols: 15, ObstaclePercentage: 30, Seed: seed})
		require.NoError(t, err)

		cfg := &OptimizerConfig{TowerCost: 7, Budget: 100}
		res, err := Optimize(g, cfg)
		require.NoError(t, err)

		k := len(res.Placed)
		assert.Equal(t, cfg.Budget-float64(k)*cfg.TowerCost, res.Remaining, "seed %d", seed)
		assert.GreaterOrEqual(t, res.Remaining, 0.0)

		switch res.Reason {
		case StopOutOfBudget:
			assert.Less(t, res.Remaining, cfg.TowerCost)
		case StopNoCandidates:
			assert.Zero(t, g.Count(Free))
		case StopNoGain:
			assert.GreaterOrEqual(t, res.Remaining, cfg.TowerCost)
		default:
			t.Fatalf("unexpected stop reason %q", res.Reason)
		}
	}
}

func TestOptimize_CoverageIsMonotonic(t *testing.T) {
	g, err := New(&GridConfig{Rows: 15, Cols: 15, ObstaclePercentage: 20, Seed: 8})
	require.NoError(t, err)

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 40})
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)

	prev := res.start.Covered + res.start.Towers
	for i, s := range res.Steps {
		now := s.Covered + s.Towers
		assert.GreaterOrEqual(t, now, prev, "step %d", i)
		assert.Greater(t, s.GainPerCost, 0.0)
		prev = now
	}
	assert.Equal(t, len(res.Placed), len(res.Steps))
}

func TestOptimize_FillsSmallGrid(t *testing.T) {
	g := newEmptyGrid(t, 3, 3)

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 2, Budget: 9})
	require.NoError(t, err)

	// the centre covers everything in one go
	assert.Equal(t, []Cell{{1, 1}}, res.Placed)
	assert.Equal(t, 7.0, res.Remaining)
	assert.Equal(t, StopNoCandidates, res.Reason)
	assert.Zero(t, g.Count(Free))
}

func TestOptimize_TiesGoToFirstCell(t *testing.T) {
	g := newEmptyGrid(t, 1, 4)

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 10})
	require.NoError(t, err)

	// (0,1) & (0,2) both see 3 free cells, (0,1) comes first
	assert.Equal(t, []Cell{{0, 1}, {0, 3}}, res.Placed)
	assert.Equal(t, 8.0, res.Remaining)
	assert.Equal(t, StopNoCandidates, res.Reason)
}

func TestOptimize_StopsWhenNothingGains(t *testing.T) {
	g := newEmptyGrid(t, 1, 5)
	require.NoError(t, g.SetTower(0, 0))
	require.NoError(t, g.SetTower(0, 4))

	// (0,2) is the only free cell; raw gain 1, discounted by 0.5 twice
	res, err := Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 10})
	require.NoError(t, err)

	assert.Empty(t, res.Placed)
	assert.Equal(t, 10.0, res.Remaining)
	assert.Equal(t, StopNoGain, res.Reason)
	assert.Equal(t, []Cell{{0, 2}}, g.Cells(Free))
}

func TestOptimize_DiscountNewTowers(t *testing.T) {
	g := newEmptyGrid(t, 1, 5)
	res, err := Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 10})
	require.NoError(t, err)
	// no towers at the start so no discount at all; (0,3) & (0,4) tie &
	// the first wins
	assert.Equal(t, []Cell{{0, 1}, {0, 3}}, res.Placed)

	g = newEmptyGrid(t, 1, 5)
	res, err = Optimize(g, &OptimizerConfig{TowerCost: 1, Budget: 10, DiscountNewTowers: true})
	require.NoError(t, err)
	// (0,1) placed first, then it's discount pushes the next tower to the end
	assert.Equal(t, []Cell{{0, 1}, {0, 4}}, res.Placed)
}

func TestOptimize_DemoPlacementSequence(t *testing.T) {
	g := newEmptyGrid(t, 10, 10)
	require.NoError(t, g.SetTower(5, 5))

	res, err := Optimize(g, &OptimizerConfig{TowerCost: 10, Budget: 50})
	require.NoError(t, err)

	// only (5,5) discounts; the four interior corners go first, farthest
	// from (5,5) first, then (1,4) beats (4,1) on scan order
	assert.Equal(t, []Cell{{1, 1}, {1, 8}, {8, 1}, {8, 8}, {1, 4}}, res.Placed)
	assert.Equal(t, 0.0, res.Remaining)
	assert.Equal(t, StopOutOfBudget, res.Reason)
	assert.Equal(t, 6, g.Count(Tower))
	assert.Equal(t, 48, g.Count(Covered))
}

func TestScore(t *testing.T) {
	g := newEmptyGrid(t, 10, 10)

	cases := []struct {
		name   string
		towers []TowerRecord
		cost   float64
		want   float64
	}{
		{"no towers", nil, 1, 4},
		{"cost divides", nil, 2, 2},
		{"distance bound", []TowerRecord{{Cell: Cell{0, 2}, Coverage: 8}}, 1, 2},
		{"coverage bound", []TowerRecord{{Cell: Cell{0, 1}, Coverage: 1}}, 1, 3},
		// both terms divide the raw 4, not what's left after the first
		{"summed over raw gain", []TowerRecord{
			{Cell: Cell{0, 2}, Coverage: 8},
			{Cell: Cell{4, 0}, Coverage: 8},
		}, 2, 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, err := Score(g, Cell{0, 0}, c.towers, c.cost, 1)
			require.NoError(t, err)
			assert.InDelta(t, c.want, score, 1e-9)
		})
	}
}

func TestScore_CandidateOnTower(t *testing.T) {
	g := newEmptyGrid(t, 4, 4)
	_, err := Score(g, Cell{1, 1}, []TowerRecord{{Cell: Cell{1, 1}, Coverage: 3}}, 1, 1)
	assert.True(t, errors.Is(err, ErrCorruptGrid))
}

func TestScore_DoesNotModifyGrid(t *testing.T) {
	g := newEmptyGrid(t, 4, 4)
	require.NoError(t, g.SetTower(0, 0))
	before := tagsOf(t, g)

	_, err := Score(g, Cell{3, 3}, g.Towers(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, before, tagsOf(t, g))
}

func TestOptimizerState_String(t *testing.T) {
	assert.Equal(t, "selecting", Selecting.String())
	assert.Equal(t, "placing", Placing.String())
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "unknown", OptimizerState(7).String())
}
