package asciicam

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/colorquant"
	"github.com/lucasb-eyer/go-colorful"
)

var dither map[string]colorquant.Dither = map[string]colorquant.Dither{
	"FloydSteinberg": colorquant.Dither{
		Filter: [][]float32{
			[]float32{0.0, 0.0, 0.0, 7.0 / 48.0, 5.0 / 48.0},
			[]float32{3.0 / 48.0, 5.0 / 48.0, 7.0 / 48.0, 5.0 / 48.0, 3.0 / 48.0},
			[]float32{1.0 / 48.0, 3.0 / 48.0, 5.0 / 48.0, 3.0 / 48.0, 1.0 / 48.0},
		},
	},
	"Burkes": colorquant.Dither{
		Filter: [][]float32{
			[]float32{0.0, 0.0, 0.0, 8.0 / 32.0, 4.0 / 32.0},
			[]float32{2.0 / 32.0, 4.0 / 32.0, 8.0 / 32.0, 4.0 / 32.0, 2.0 / 32.0},
			[]float32{0.0, 0.0, 0.0, 0.0, 0.0},
			[]float32{4.0 / 32.0, 8.0 / 32.0, 0.0, 0.0, 0.0},
		},
	},
	"Atkinson": colorquant.Dither{
		Filter: [][]float32{
			[]float32{0.0, 0.0, 1.0 / 8.0, 1.0 / 8.0},
			[]float32{1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 0.0},
			[]float32{0.0, 1.0 / 8.0, 0.0, 0.0},
		},
	},
	"Sierra-3": colorquant.Dither{
		Filter: [][]float32{
			[]float32{0.0, 0.0, 0.0, 5.0 / 32.0, 3.0 / 32.0},
			[]float32{2.0 / 32.0, 4.0 / 32.0, 5.0 / 32.0, 4.0 / 32.0, 2.0 / 32.0},
			[]float32{0.0, 2.0 / 32.0, 3.0 / 32.0, 2.0 / 32.0, 0.0},
		},
	},
	"Sierra-Lite": colorquant.Dither{
		Filter: [][]float32{
			[]float32{0.0, 0.0, 2.0 / 4.0},
			[]float32{1.0 / 4.0, 1.0 / 4.0, 0.0},
			[]float32{0.0, 0.0, 0.0},
		},
	},
}

// DitherNames lists the accepted Config.Dither values
func DitherNames() []string {
	names := make([]string, 0, len(dither))
	for k := range dither {
		names = append(names, k)
	}
	return names
}

// ReduceColors maps a cols x rows color grid onto pal. With a kernel name
// the error is diffused across neighbouring cells, otherwise each cell takes
// the palette entry nearest in Lab space.
func ReduceColors(colors []color.RGBA, cols, rows int, pal color.Palette, kernel string) ([]color.RGBA, error) {
	if len(colors) != cols*rows {
		return nil, fmt.Errorf("palette: %d colors for %dx%d", len(colors), cols, rows)
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("palette: empty palette")
	}
	if kernel == "" {
		return nearestLab(colors, pal), nil
	}
	d, ok := dither[kernel]
	if !ok {
		return nil, fmt.Errorf("palette: unknown dither %q", kernel)
	}

	src := gridImage(colors, cols, rows)
	dst := image.NewPaletted(src.Bounds(), pal)
	out := d.Quantize(src, dst, len(pal), true, false)

	reduced := make([]color.RGBA, 0, len(colors))
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			reduced = append(reduced, color.RGBAModel.Convert(out.At(x, y)).(color.RGBA))
		}
	}
	return reduced, nil
}

func nearestLab(colors []color.RGBA, pal color.Palette) []color.RGBA {
	labs := make([]colorful.Color, len(pal))
	for i, c := range pal {
		labs[i], _ = colorful.MakeColor(c)
	}
	// camera frames repeat colors heavily
	seen := make(map[color.RGBA]color.RGBA)
	out := make([]color.RGBA, len(colors))
	for i, c := range colors {
		if hit, ok := seen[c]; ok {
			out[i] = hit
			continue
		}
		want, _ := colorful.MakeColor(c)
		best := 0
		bestDist := want.DistanceLab(labs[0])
		for j := 1; j < len(labs); j++ {
			if d := want.DistanceLab(labs[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		out[i] = color.RGBAModel.Convert(pal[best]).(color.RGBA)
		seen[c] = out[i]
	}
	return out
}

func gridImage(colors []color.RGBA, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, c := range colors {
		img.SetRGBA(i%cols, i/cols, c)
	}
	return img
}
