package citytowers

// CellTag says what currently occupies a grid cell. Every cell holds
// exactly one tag.
// Obstacles are set when the grid is created & never change, towers never
// revert. Free cells are the only ones that can become Covered.
type CellTag uint8

const (
	Free     CellTag = 0 // buildable, nobody covers it (yet)
	Obstacle CellTag = 1 // impassable, cannot host a tower & is never covered
	Tower    CellTag = 2 // hosts a tower
	Covered  CellTag = 3 // free cell within reach of at least one tower
)

var (
	allTags = []CellTag{Free, Obstacle, Tower, Covered}

	tagNames = map[CellTag]string{
		Free:     "free",
		Obstacle: "obstacle",
		Tower:    "tower",
		Covered:  "covered",
	}
)

// String returns the name of the tag
func (t CellTag) String() string {
	name, ok := tagNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// Valid returns if t is one of the known tags
func (t CellTag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// AllCellTags returns all known CellTag enums
func AllCellTags() []CellTag {
	return allTags
}

// Cell is a (row, col) position on the grid.
type Cell struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}
