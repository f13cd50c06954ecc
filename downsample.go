package asciicam

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/nfnt/resize"
)

// AspectCorrection squeezes rows since glyph cells are taller than wide
const AspectCorrection = 0.55

// MinGrid - smallest grid dimension regardless of density
const MinGrid = 10

// GridSize returns the glyph grid for a w x h frame at density
func GridSize(w, h, density int) (cols, rows int) {
	cols = w / density
	if cols < MinGrid {
		cols = MinGrid
	}
	rows = int(float64(h) / float64(density) * AspectCorrection)
	if rows < MinGrid {
		rows = MinGrid
	}
	return cols, rows
}

// Brightness converts src to a single channel image anchored at 0,0
func Brightness(src image.Image) *image.Gray {
	rgba := effect.Grayscale(src)
	b := rgba.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		in := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
		out := gray.Pix[gray.PixOffset(0, y):]
		// all channels carry the same value, skip G, B and alpha
		for x := 0; x < b.Dx(); x++ {
			out[x] = in[x*4]
		}
	}
	return gray
}

// Downsample shrinks src to GridSize(src, density)
func Downsample(src *image.Gray, density int) *image.Gray {
	b := src.Bounds()
	cols, rows := GridSize(b.Dx(), b.Dy(), density)
	small := resize.Resize(uint(cols), uint(rows), src, resize.Bilinear)
	if g, ok := small.(*image.Gray); ok {
		return g
	}
	g := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.Draw(g, g.Bounds(), small, small.Bounds().Min, draw.Src)
	return g
}

// SampleColors resizes src to cols x rows and returns the colors row-major
func SampleColors(src image.Image, cols, rows int) []color.RGBA {
	small := resize.Resize(uint(cols), uint(rows), src, resize.Bilinear)
	rgba, ok := small.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, cols, rows))
		draw.Draw(rgba, rgba.Bounds(), small, small.Bounds().Min, draw.Src)
	}
	b := rgba.Bounds()
	out := make([]color.RGBA, 0, cols*rows)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, rgba.RGBAAt(x, y))
		}
	}
	return out
}
