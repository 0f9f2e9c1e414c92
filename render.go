package citytowers

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// titles of the three pictures of a typical run
	TitleObstacles = "City with obstacles"
	TitleCoverage  = "Tower coverage"
	TitleBudget    = "Tower coverage within budget"

	defaultCellSize = 32
	captionSize     = 14.0 // points
	captionPadding  = 8
)

// ColourScheme defines how each cell tag (& the decoration around them)
// is coloured.
type ColourScheme struct {
	Background color.Color // also used for Free cells
	GridLines  color.Color
	Obstacles  color.Color
	Towers     color.Color
	Covered    color.Color // drawn over Background, so usually translucent
	Caption    color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		GridLines:  colornames.Black,
		Obstacles:  colornames.Black,
		Towers:     colornames.Red,
		Covered:    withAlpha(colornames.Green, 0x80),
		Caption:    colornames.Black,
	}
}

// RenderOptions configures RenderImage
type RenderOptions struct {
	// CellSize is the width & height of a cell in pixels (32 if not set)
	CellSize int

	// Title drawn above the grid, no caption space is reserved if empty
	Title string

	// Scheme to colour with, DefaultScheme if nil
	Scheme *ColourScheme

	// SkipLines disables drawing grid lines
	SkipLines bool
}

// cellSize returns the configured size or the default
func (o *RenderOptions) cellSize() int {
	if o == nil || o.CellSize <= 0 {
		return defaultCellSize
	}
	return o.CellSize
}

// scheme returns the configured scheme or the default
func (o *RenderOptions) scheme() *ColourScheme {
	if o == nil || o.Scheme == nil {
		return DefaultScheme()
	}
	return o.Scheme
}

// title returns the configured title if any
func (o *RenderOptions) title() string {
	if o == nil {
		return ""
	}
	return o.Title
}

// RenderImage draws src; obstacles as solid blocks, towers as dots,
// covered cells as a shaded overlay & free cells left blank, with
// grid lines & an optional title above.
func RenderImage(src CellReader, opts *RenderOptions) (image.Image, error) {
	rows, cols := src.Rows(), src.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "cannot render %dx%d grid", rows, cols)
	}

	cs := opts.cellSize()
	scheme := opts.scheme()
	title := opts.title()

	top := 0
	var face font.Face
	if title != "" {
		var err error
		face, err = captionFace()
		if err != nil {
			return nil, err
		}
		top = face.Metrics().Height.Ceil() + 2*captionPadding
	}

	ctx := gg.NewContext(cols*cs, rows*cs+top)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	fcs := float64(cs)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tag, err := src.CellState(row, col)
			if err != nil {
				return nil, err
			}

			x, y := float64(col)*fcs, float64(row)*fcs+float64(top)
			switch tag {
			case Obstacle:
				ctx.SetColor(scheme.Obstacles)
				ctx.DrawRectangle(x, y, fcs, fcs)
				ctx.Fill()
			case Tower:
				ctx.SetColor(scheme.Towers)
				ctx.DrawCircle(x+fcs/2, y+fcs/2, fcs/5)
				ctx.Fill()
			case Covered:
				ctx.SetColor(scheme.Covered)
				ctx.DrawRectangle(x, y, fcs, fcs)
				ctx.Fill()
			}
		}
	}

	if !(opts != nil && opts.SkipLines) {
		ctx.SetColor(scheme.GridLines)
		ctx.SetLineWidth(1)
		for row := 0; row <= rows; row++ {
			y := float64(row*cs + top)
			ctx.DrawLine(0, y, float64(cols*cs), y)
		}
		for col := 0; col <= cols; col++ {
			x := float64(col * cs)
			ctx.DrawLine(x, float64(top), x, float64(rows*cs+top))
		}
		ctx.Stroke()
	}

	if title != "" {
		ctx.SetFontFace(face)
		ctx.SetColor(scheme.Caption)
		ctx.DrawStringAnchored(title, float64(cols*cs)/2, float64(top)/2, 0.5, 0.5)
	}

	return ctx.Image(), nil
}

// SaveImage renders src (see RenderImage) & writes it to fpath as a PNG
func SaveImage(fpath string, src CellReader, opts *RenderOptions) error {
	im, err := RenderImage(src, opts)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}

// captionFace loads the Go Regular font at caption size
func captionFace() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse caption font")
	}
	return truetype.NewFace(f, &truetype.Options{Size: captionSize}), nil
}

// withAlpha returns c with the given (non premultiplied) alpha
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
