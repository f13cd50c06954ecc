package glyph

import (
	"errors"
	"fmt"
	"image"
)

// Size - number of glyphs in an Alphabet. Brightness banding depends on it.
const Size = 10

// BandWidth - brightness values per glyph band
const BandWidth = 25

// ErrAlphabetSize is returned when an alphabet does not hold exactly Size runes
var ErrAlphabetSize = errors.New("glyph: alphabet must hold exactly 10 runes")

// Alphabet - ordered glyphs from visually densest (index 0) to blank (index 9).
// It is an array so copies never share state.
type Alphabet [Size]rune

// Standard is the print-style shading ramp
var Standard = Alphabet{'@', '%', '#', '*', '+', '=', '-', ':', '.', ' '}

// Parse builds an Alphabet from a string of exactly Size runes
func Parse(s string) (Alphabet, error) {
	var a Alphabet
	runes := []rune(s)
	if len(runes) != Size {
		return a, fmt.Errorf("%w: got %d in %q", ErrAlphabetSize, len(runes), s)
	}
	copy(a[:], runes)
	return a, nil
}

func (a Alphabet) String() string {
	return string(a[:])
}

// Index returns the band for brightness v. Values 250-255 would land on
// band 10 so they are clamped to the last glyph.
func (a Alphabet) Index(v uint8) int {
	i := int(v) / BandWidth
	if i > Size-1 {
		i = Size - 1
	}
	return i
}

// Glyph returns the rune representing brightness v
func (a Alphabet) Glyph(v uint8) rune {
	return a[a.Index(v)]
}

// Map quantizes every brightness sample of src into a Grid of the same
// dimensions, row-major.
func (a Alphabet) Map(src *image.Gray) Grid {
	b := src.Bounds()
	g := Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Glyphs: make([]rune, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			g.Glyphs = append(g.Glyphs, a.Glyph(row[x]))
		}
	}
	return g
}

// Grid - glyphs laid out row-major, Width*Height long
type Grid struct {
	Width  int
	Height int
	Glyphs []rune
}

// At returns the glyph in column x of row y
func (g Grid) At(x, y int) rune {
	return g.Glyphs[y*g.Width+x]
}

// Valid reports whether the glyph sequence matches the grid dimensions
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0 && len(g.Glyphs) == g.Width*g.Height
}

// String renders the grid as newline separated rows
func (g Grid) String() string {
	out := make([]rune, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		out = append(out, g.Glyphs[y*g.Width:(y+1)*g.Width]...)
		out = append(out, '\n')
	}
	return string(out)
}
