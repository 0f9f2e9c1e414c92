package citytowers

// TowerRecord is a placed tower along with the number of Covered cells
// around it at the time it was placed. The count is not updated later,
// it's used by the optimizer to judge how much a tower already serves.
type TowerRecord struct {
	Cell
	Coverage int
}

// GridStats holds generic stats about a grid
type GridStats struct {
	// Count of cells with a given tag
	ByTag map[CellTag]int

	// Number of tower records (placements)
	Towers int

	total int
}

// newGridStats returns blank GridStats
func newGridStats(total int) *GridStats {
	s := &GridStats{ByTag: map[CellTag]int{}, total: total}
	for _, t := range allTags {
		s.ByTag[t] = 0
	}
	return s
}

// increment ByTag by 1
func (s *GridStats) increment(t CellTag) {
	s.ByTag[t]++
}

// count returns number of cells by tag
func (s *GridStats) count(t CellTag) int {
	return s.ByTag[t]
}

// CoverageRatio returns the share of non obstacle cells that are covered
// or host a tower. A grid of only obstacles has a ratio of 0.
func (s *GridStats) CoverageRatio() float64 {
	buildable := s.total - s.count(Obstacle)
	if buildable <= 0 {
		return 0
	}
	return float64(s.count(Covered)+s.count(Tower)) / float64(buildable)
}

// Step records a single tower placed by the optimizer
type Step struct {
	Cell

	// score the cell won with
	GainPerCost float64

	// budget left after paying for the tower
	Remaining float64

	// Covered cells & Tower cells on the grid after placement
	Covered int
	Towers  int
}

// Result of an optimizer run
type Result struct {
	// Budget left after the run, always Budget - k*TowerCost
	Remaining float64

	// Cells towers were placed on, in order
	Placed []Cell

	// Steps taken, one per placed tower
	Steps []Step

	// Reason the run stopped
	Reason StopReason

	// state before the first placement, used as the first point on charts
	start Step
}
