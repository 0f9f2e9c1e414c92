package citytowers

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CoverageChart plots covered cells, tower cells & remaining budget after
// each optimizer step. Step 0 is the grid before the first placement.
func CoverageChart(res *Result) (*plot.Plot, error) {
	if res == nil {
		return nil, errors.New("no optimizer result to chart")
	}

	covered, towers, budget := coverageSeries(res)

	p := plot.New()
	p.Title.Text = TitleBudget
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Cells / budget"

	lines := []struct {
		label string
		pts   plotter.XYs
		col   color.Color
	}{
		{"covered", covered, colornames.Green},
		{"towers", towers, colornames.Red},
		{"budget", budget, colornames.Steelblue},
	}

	for _, l := range lines {
		line, err := plotter.NewLine(l.pts)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to plot %s", l.label)
		}
		line.Color = l.col
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(l.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = 10
	p.Legend.YOffs = -10

	return p, nil
}

// SaveCoverageChart writes CoverageChart(res) to fpath, the format is
// picked from the file extension (png, svg, pdf ..)
func SaveCoverageChart(fpath string, res *Result) error {
	p, err := CoverageChart(res)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fpath)
}

// coverageSeries returns one point per step (plus the start) for covered
// cells, tower cells & remaining budget
func coverageSeries(res *Result) (plotter.XYs, plotter.XYs, plotter.XYs) {
	steps := append([]Step{res.start}, res.Steps...)

	covered := make(plotter.XYs, len(steps))
	towers := make(plotter.XYs, len(steps))
	budget := make(plotter.XYs, len(steps))
	for i, s := range steps {
		covered[i] = plotter.XY{X: float64(i), Y: float64(s.Covered)}
		towers[i] = plotter.XY{X: float64(i), Y: float64(s.Towers)}
		budget[i] = plotter.XY{X: float64(i), Y: s.Remaining}
	}
	return covered, towers, budget
}
