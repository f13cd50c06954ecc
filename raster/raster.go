// Package raster lays a glyph grid out as fixed size cells of an RGBA image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/asciicam/glyph"
)

// ErrGridMismatch - glyph or color sequence does not match the grid dimensions
var ErrGridMismatch = errors.New("raster: sequence length does not match grid")

// Default cell size in pixels
const (
	CellWidth  = 8
	CellHeight = 12
)

// Options - how glyphs are stamped
type Options struct {
	CellWidth  int
	CellHeight int
	Foreground color.RGBA // used when no per-cell color is supplied
	Background color.RGBA
	Face       glyph.Face
}

// Cell - one glyph position and the pixels it owns in the output
type Cell struct {
	Origin  image.Rectangle
	CharPos image.Point
	Nth     int
}

// Layout returns the cells of a cols x rows grid in row-major order
func Layout(cols, rows, cellX, cellY int) []Cell {
	out := make([]Cell, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			origin := image.Rect(x*cellX, y*cellY, (x+1)*cellX, (y+1)*cellY)
			out = append(out, Cell{Origin: origin, CharPos: image.Pt(x, y), Nth: y*cols + x})
		}
	}
	return out
}

// Render fills a (rows*CellHeight) x (cols*CellWidth) image with the
// background and stamps every glyph of g into its cell. When colors is
// non-nil it must hold one color per cell; each cell then uses its own
// color instead of opt.Foreground.
func Render(g glyph.Grid, colors []color.RGBA, opt Options) (*image.RGBA, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d glyphs for %dx%d", ErrGridMismatch, len(g.Glyphs), g.Width, g.Height)
	}
	if colors != nil && len(colors) != len(g.Glyphs) {
		return nil, fmt.Errorf("%w: %d colors for %dx%d", ErrGridMismatch, len(colors), g.Width, g.Height)
	}
	if opt.CellWidth <= 0 || opt.CellHeight <= 0 {
		return nil, fmt.Errorf("raster: invalid cell size %dx%d", opt.CellWidth, opt.CellHeight)
	}
	if opt.Face == nil {
		return nil, errors.New("raster: no face")
	}

	out := image.NewRGBA(image.Rect(0, 0, g.Width*opt.CellWidth, g.Height*opt.CellHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(opt.Background), image.ZP, draw.Src)

	for _, cel := range Layout(g.Width, g.Height, opt.CellWidth, opt.CellHeight) {
		fg := opt.Foreground
		if colors != nil {
			fg = colors[cel.Nth]
		}
		opt.Face.DrawGlyph(out, cel.Origin, g.Glyphs[cel.Nth], fg)
	}
	log.Debugf("rendered %dx%d glyphs into %v", g.Width, g.Height, out.Bounds())
	return out, nil
}
