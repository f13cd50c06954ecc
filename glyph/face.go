package glyph

import (
	"fmt"
	"image"
	"image/color"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/pixfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// BasePointSize - point size of a vector face at scale 1.0
const BasePointSize = 20.0

// Face stamps a single glyph into a cell of dst. Implementations must not
// draw outside cell.
type Face interface {
	DrawGlyph(dst *image.RGBA, cell image.Rectangle, r rune, c color.Color)
}

// VectorFace - anti-aliased monospace face
type VectorFace struct {
	face    font.Face
	ascent  int
	descent int
	Scale   float64
}

// NewVectorFace loads the Go Mono face at BasePointSize*scale points, 72 DPI
func NewVectorFace(scale float64) (*VectorFace, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("glyph: font scale must be positive, got %v", scale)
	}
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse gomono: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    BasePointSize * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: new face: %w", err)
	}
	m := face.Metrics()
	v := &VectorFace{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
		Scale:   scale,
	}
	log.Debugf("vector face scale=%.2f ascent=%d descent=%d", scale, v.ascent, v.descent)
	return v, nil
}

// DrawGlyph draws r with its baseline just above the cell's descent band
func (v *VectorFace) DrawGlyph(dst *image.RGBA, cell image.Rectangle, r rune, c color.Color) {
	if r == ' ' {
		return
	}
	sub, ok := dst.SubImage(cell).(*image.RGBA)
	if !ok || sub.Bounds().Empty() {
		return
	}
	baseline := cell.Max.Y - v.descent
	d := font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(c),
		Face: v.face,
		Dot:  fixed.P(cell.Min.X, baseline),
	}
	d.DrawString(string(r))
}

// PixelFace - the 8x8 bitmap pixfont face, no anti-aliasing
type PixelFace struct {
	Font *pixfont.PixFont
}

// NewPixelFace wraps the default pixfont bitmap font
func NewPixelFace() *PixelFace {
	return &PixelFace{Font: pixfont.DefaultFont}
}

// DrawGlyph centers the bitmap vertically in the cell
func (p *PixelFace) DrawGlyph(dst *image.RGBA, cell image.Rectangle, r rune, c color.Color) {
	if r == ' ' {
		return
	}
	sub, ok := dst.SubImage(cell).(*image.RGBA)
	if !ok || sub.Bounds().Empty() {
		return
	}
	y := cell.Min.Y + (cell.Dy()-p.Font.GetHeight())/2
	if y < cell.Min.Y {
		y = cell.Min.Y
	}
	p.Font.DrawRune(sub, cell.Min.X, y, r, c)
}
