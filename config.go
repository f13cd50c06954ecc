package asciicam

import (
	"fmt"
	"image/color"

	"github.com/submersibletoaster/asciicam/glyph"
	"github.com/submersibletoaster/asciicam/raster"
)

// Config is fixed for the life of a Pipeline; New copies it.
type Config struct {
	// Density - source pixels condensed into one cell along each axis
	Density int
	// Color draws each glyph in the downsampled frame color
	Color bool
	// Mirror flips frames horizontally, selfie style
	Mirror   bool
	Alphabet glyph.Alphabet

	CellWidth  int
	CellHeight int
	FontScale  float64
	// Foreground is the glyph color when Color is off
	Foreground color.RGBA
	Background color.RGBA
	// Face overrides the vector face built from FontScale
	Face glyph.Face

	// PaletteSize > 0 reduces the color grid to that many colors per frame
	PaletteSize int
	// Dither names an error diffusion kernel for palette reduction, empty
	// picks the nearest palette color instead
	Dither string
}

// DefaultConfig - color glyphs at density 3 in 8x12 cells
func DefaultConfig() Config {
	return Config{
		Density:    3,
		Color:      true,
		Mirror:     true,
		Alphabet:   glyph.Standard,
		CellWidth:  raster.CellWidth,
		CellHeight: raster.CellHeight,
		FontScale:  0.5,
		Foreground: color.RGBA{255, 255, 255, 255},
		Background: color.RGBA{0, 0, 0, 255},
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Density < 1:
		return fmt.Errorf("config: density must be >= 1, got %d", c.Density)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("config: invalid cell size %dx%d", c.CellWidth, c.CellHeight)
	case c.Face == nil && c.FontScale <= 0:
		return fmt.Errorf("config: font scale must be positive, got %v", c.FontScale)
	case c.PaletteSize < 0 || c.PaletteSize > 256:
		return fmt.Errorf("config: palette size must be within 0-256, got %d", c.PaletteSize)
	}
	if _, ok := dither[c.Dither]; c.Dither != "" && !ok {
		return fmt.Errorf("config: unknown dither %q", c.Dither)
	}
	return nil
}
