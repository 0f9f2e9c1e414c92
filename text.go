package citytowers

import (
	"strings"

	"github.com/gookit/color"
)

// Icons used by Text
const (
	IconFree     = "."
	IconObstacle = "#"
	IconTower    = "T"
	IconCovered  = "+"
)

var (
	tagIcons = map[CellTag]string{
		Free:     IconFree,
		Obstacle: IconObstacle,
		Tower:    IconTower,
		Covered:  IconCovered,
	}

	tagColours = map[CellTag]color.Color{
		Free:     color.FgDefault,
		Obstacle: color.FgDarkGray,
		Tower:    color.FgLightRed,
		Covered:  color.FgGreen,
	}
)

// Text draws src as one line of icons per row, row 0 first.
// If coloured is set each icon is wrapped in terminal colour codes.
func Text(src CellReader, coloured bool) (string, error) {
	var b strings.Builder
	for row := 0; row < src.Rows(); row++ {
		for col := 0; col < src.Cols(); col++ {
			tag, err := src.CellState(row, col)
			if err != nil {
				return "", err
			}

			icon, ok := tagIcons[tag]
			if !ok {
				icon = "?"
			}
			if coloured {
				icon = tagColours[tag].Sprint(icon)
			}
			b.WriteString(icon)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
