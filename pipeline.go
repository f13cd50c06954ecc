// Package asciicam turns camera frames into images drawn with shaded glyphs.
//
// Each frame runs through the same stages: brightness conversion,
// downsampling to the glyph grid, brightness to glyph mapping, and glyph
// rasterization into 8x12 pixel cells, optionally colored per cell with the
// frame's downsampled color.
package asciicam

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/asciicam/glyph"
	"github.com/submersibletoaster/asciicam/raster"
)

// ErrEmptyFrame - a frame with no pixels cannot be processed
var ErrEmptyFrame = errors.New("asciicam: empty frame")

// Output - everything produced for one frame
type Output struct {
	Grid glyph.Grid
	// Colors holds one color per glyph, nil in monochrome mode
	Colors []color.RGBA
	Raster *image.RGBA
}

// Pipeline converts frames with a fixed Config
type Pipeline struct {
	cfg  Config
	face glyph.Face
}

// New validates cfg and prepares the glyph face
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	face := cfg.Face
	if face == nil {
		vf, err := glyph.NewVectorFace(cfg.FontScale)
		if err != nil {
			return nil, err
		}
		face = vf
	}
	return &Pipeline{cfg: cfg, face: face}, nil
}

// Config returns a copy of the pipeline configuration
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Process runs one frame through every stage. frame is not modified.
func (p *Pipeline) Process(frame image.Image) (*Output, error) {
	if frame == nil || frame.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}
	src := frame
	if p.cfg.Mirror {
		src = transform.FlipH(frame)
	}

	small := Downsample(Brightness(src), p.cfg.Density)
	out := &Output{Grid: p.cfg.Alphabet.Map(small)}
	cols, rows := out.Grid.Width, out.Grid.Height

	if p.cfg.Color {
		out.Colors = SampleColors(src, cols, rows)
		if p.cfg.PaletteSize > 0 {
			reduced, err := redraw(out.Colors, cols, rows, p.cfg.PaletteSize, p.cfg.Dither)
			if err != nil {
				return nil, fmt.Errorf("reduce colors: %w", err)
			}
			out.Colors = reduced
		}
	}

	img, err := raster.Render(out.Grid, out.Colors, raster.Options{
		CellWidth:  p.cfg.CellWidth,
		CellHeight: p.cfg.CellHeight,
		Foreground: p.cfg.Foreground,
		Background: p.cfg.Background,
		Face:       p.face,
	})
	if err != nil {
		return nil, err
	}
	out.Raster = img
	log.Debugf("frame %v -> grid %dx%d -> raster %v", frame.Bounds(), cols, rows, img.Bounds())
	return out, nil
}
