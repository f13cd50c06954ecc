// Package terminal presents pipeline output in a terminal instead of a window.
package terminal

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	ansi "github.com/gookit/color"
	"github.com/joshdk/preview"
	"github.com/submersibletoaster/asciicam"
)

const (
	home  = "\033[H"
	reset = "\033[0m"
)

// ANSI writes the glyph grid as 24-bit colored text, redrawing in place
type ANSI struct {
	W io.Writer
	// Foreground and Background apply to monochrome output
	Foreground color.Color
	Background color.Color
}

// NewANSI - monochrome cells default to white on black
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{W: w, Foreground: color.White, Background: color.Black}
}

// Show never asks to quit; stop it by cancelling the capture context
func (a *ANSI) Show(out *asciicam.Output) (bool, error) {
	bw := bufio.NewWriter(a.W)
	bw.WriteString(home)
	bg := toANSI(a.Background)
	for y := 0; y < out.Grid.Height; y++ {
		for x := 0; x < out.Grid.Width; x++ {
			fg := a.Foreground
			if out.Colors != nil {
				fg = out.Colors[y*out.Grid.Width+x]
			}
			cSeq := ansi.NewRGBStyle(toANSI(fg), bg)
			bw.WriteString(cSeq.Sprint(string(out.Grid.At(x, y))))
		}
		fmt.Fprint(bw, reset+"\n")
	}
	return false, bw.Flush()
}

// Close restores the terminal's colors
func (a *ANSI) Close() error {
	_, err := fmt.Fprint(a.W, reset)
	return err
}

func toANSI(in color.Color) (out ansi.RGBColor) {
	r, g, b, _ := in.RGBA()
	out = ansi.RGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0}
	return
}

// Preview shows each raster inline in terminals that support images
type Preview struct{}

// Show displays the raster
func (Preview) Show(out *asciicam.Output) (bool, error) {
	preview.Image(out.Raster)
	return false, nil
}

// Close is a no-op
func (Preview) Close() error { return nil }
