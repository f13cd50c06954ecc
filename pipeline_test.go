package asciicam

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/submersibletoaster/asciicam/glyph"
)

// blockFace marks the top-left pixel of every inked cell and records the color used
type blockFace struct {
	used []color.RGBA
}

func (f *blockFace) DrawGlyph(dst *image.RGBA, cell image.Rectangle, r rune, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	f.used = append(f.used, rgba)
	if r != ' ' {
		dst.SetRGBA(cell.Min.X, cell.Min.Y, rgba)
	}
}

var black = color.RGBA{0, 0, 0, 255}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Density = 2
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Density)
	assert.True(t, cfg.Color)
	assert.Equal(t, glyph.Standard, cfg.Alphabet)
	assert.Equal(t, 8, cfg.CellWidth)
	assert.Equal(t, 12, cfg.CellHeight)
	assert.Equal(t, 0.5, cfg.FontScale)
}

func TestConfigValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Density = 0 },
		func(c *Config) { c.CellWidth = 0 },
		func(c *Config) { c.FontScale = 0 },
		func(c *Config) { c.PaletteSize = 300 },
		func(c *Config) { c.Dither = "Nope" },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
		_, err := New(cfg)
		assert.Error(t, err, "case %d", i)
	}
}

func TestProcessBlackFrame(t *testing.T) {
	cfg := testConfig()
	cfg.Color = false
	p, err := New(cfg)
	require.NoError(t, err)

	out, err := p.Process(uniformRGBA(20, 20, black))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Grid.Width)
	assert.Equal(t, 10, out.Grid.Height)
	assert.Equal(t, strings.Repeat("@", 100), string(out.Grid.Glyphs))
	assert.Nil(t, out.Colors)
	assert.Equal(t, image.Rect(0, 0, 80, 120), out.Raster.Bounds())

	// every cell carries some white ink on black
	for cy := 0; cy < 10; cy++ {
		for cx := 0; cx < 10; cx++ {
			inked := false
			for y := cy * 12; y < (cy+1)*12 && !inked; y++ {
				for x := cx * 8; x < (cx+1)*8; x++ {
					if out.Raster.RGBAAt(x, y) != black {
						inked = true
						break
					}
				}
			}
			assert.True(t, inked, "cell %d,%d has no ink", cx, cy)
		}
	}
}

func TestProcessWhiteFrame(t *testing.T) {
	p, err := New(testConfig())
	require.NoError(t, err)

	out, err := p.Process(uniformRGBA(20, 20, color.RGBA{255, 255, 255, 255}))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 100), string(out.Grid.Glyphs))
	assert.Equal(t, image.Rect(0, 0, 80, 120), out.Raster.Bounds())
	for i := 0; i < len(out.Raster.Pix); i += 4 {
		require.Equal(t, []uint8{0, 0, 0, 255}, out.Raster.Pix[i:i+4])
	}
}

func TestProcessColorOverridesForeground(t *testing.T) {
	face := &blockFace{}
	cfg := testConfig()
	cfg.Face = face
	cfg.Foreground = color.RGBA{0, 255, 0, 255}
	p, err := New(cfg)
	require.NoError(t, err)

	sample := color.RGBA{200, 30, 30, 255}
	out, err := p.Process(uniformRGBA(40, 40, sample))
	require.NoError(t, err)
	require.Len(t, out.Colors, out.Grid.Width*out.Grid.Height)
	require.Len(t, face.used, len(out.Colors))

	for y := 0; y < out.Grid.Height; y++ {
		for x := 0; x < out.Grid.Width; x++ {
			want := out.Colors[y*out.Grid.Width+x]
			assert.Equal(t, sample, want)
			assert.Equal(t, want, out.Raster.RGBAAt(x*8, y*12))
		}
	}
}

func TestProcessMonochrome(t *testing.T) {
	face := &blockFace{}
	cfg := testConfig()
	cfg.Face = face
	cfg.Color = false
	cfg.Foreground = color.RGBA{255, 255, 255, 255}
	p, err := New(cfg)
	require.NoError(t, err)

	_, err = p.Process(uniformRGBA(30, 30, color.RGBA{200, 30, 30, 255}))
	require.NoError(t, err)
	require.NotEmpty(t, face.used)
	for _, c := range face.used {
		assert.Equal(t, cfg.Foreground, c)
	}
}

func TestProcessMirror(t *testing.T) {
	frame := uniformRGBA(40, 20, black)
	for y := 0; y < 20; y++ {
		for x := 20; x < 40; x++ {
			frame.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	cfg := testConfig()
	cfg.Face = &blockFace{}
	cfg.Color = false

	cfg.Mirror = false
	p, err := New(cfg)
	require.NoError(t, err)
	out, err := p.Process(frame)
	require.NoError(t, err)
	assert.Equal(t, '@', out.Grid.At(0, 0))
	assert.Equal(t, ' ', out.Grid.At(out.Grid.Width-1, 0))

	cfg.Mirror = true
	p, err = New(cfg)
	require.NoError(t, err)
	out, err = p.Process(frame)
	require.NoError(t, err)
	assert.Equal(t, ' ', out.Grid.At(0, 0))
	assert.Equal(t, '@', out.Grid.At(out.Grid.Width-1, 0))

	// the source frame is left untouched
	assert.Equal(t, black, frame.RGBAAt(0, 0))
}

func TestProcessCustomAlphabet(t *testing.T) {
	a, err := glyph.Parse("0123456789")
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Alphabet = a
	cfg.Face = &blockFace{}
	p, err := New(cfg)
	require.NoError(t, err)

	out, err := p.Process(uniformRGBA(20, 20, black))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", 100), string(out.Grid.Glyphs))
}

func TestProcessPaletteReduction(t *testing.T) {
	cfg := testConfig()
	cfg.Face = &blockFace{}
	cfg.PaletteSize = 2
	cfg.Dither = "Sierra-3"
	p, err := New(cfg)
	require.NoError(t, err)

	frame := uniformRGBA(40, 40, color.RGBA{255, 0, 0, 255})
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			frame.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	out, err := p.Process(frame)
	require.NoError(t, err)
	distinct := map[color.RGBA]bool{}
	for _, c := range out.Colors {
		distinct[c] = true
	}
	assert.LessOrEqual(t, len(distinct), 2)
}

func TestProcessEmptyFrame(t *testing.T) {
	p, err := New(testConfig())
	require.NoError(t, err)
	_, err = p.Process(image.NewRGBA(image.Rectangle{}))
	assert.True(t, errors.Is(err, ErrEmptyFrame))
	_, err = p.Process(nil)
	assert.True(t, errors.Is(err, ErrEmptyFrame))
}
