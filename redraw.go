package asciicam

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Nykakin/quantize"
	log "github.com/sirupsen/logrus"
)

// PickPalette chooses up to num representative colors of img
func PickPalette(img image.Image, num int) (color.Palette, error) {
	q := quantize.NewHierarhicalQuantizer()
	colors, err := q.Quantize(img, num)
	if err != nil {
		return nil, fmt.Errorf("palette: quantize: %w", err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette: quantizer returned no colors")
	}

	palette := make(color.Palette, len(colors))
	for index, clr := range colors {
		palette[index] = clr
	}
	log.Debugf("picked %d/%d palette colors", len(palette), num)
	return palette, nil
}

// redraw reduces a frame's color grid to n colors picked from the grid itself
func redraw(colors []color.RGBA, cols, rows, n int, kernel string) ([]color.RGBA, error) {
	pal, err := PickPalette(gridImage(colors, cols, rows), n)
	if err != nil {
		return nil, err
	}
	return ReduceColors(colors, cols, rows, pal, kernel)
}
