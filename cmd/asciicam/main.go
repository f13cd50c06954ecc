package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/asciicam"
	"github.com/submersibletoaster/asciicam/capture"
	"github.com/submersibletoaster/asciicam/capture/opencv"
	"github.com/submersibletoaster/asciicam/glyph"
	"github.com/submersibletoaster/asciicam/terminal"
)

const (
	pixelDensity  = 3    // larger = chunkier glyphs
	useColorASCII = true // false = white glyphs on black
)

var verbose = flag.Bool("v", false, "Verbose logging")
var sinkName = flag.String("sink", "window", "Where to show output: window, ansi or preview")
var fontName = flag.String("font", "mono", "Glyph face: mono (anti-aliased) or pixel (8x8 bitmap)")

func main() {
	flag.Parse()
	if *verbose {
		log.Info("Setting verbose logging")
		log.SetLevel(log.DebugLevel)
	}
	os.Exit(run())
}

func run() int {
	cfg := asciicam.DefaultConfig()
	cfg.Density = pixelDensity
	cfg.Color = useColorASCII
	switch *fontName {
	case "mono":
	case "pixel":
		cfg.Face = glyph.NewPixelFace()
	default:
		log.Errorf("unknown font %q", *fontName)
		return 2
	}

	p, err := asciicam.New(cfg)
	if err != nil {
		log.Errorf("pipeline: %v", err)
		return 2
	}

	sink, err := newSink(*sinkName)
	if err != nil {
		log.Error(err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := capture.Run(ctx, opencv.Open(opencv.DefaultDevice), p, sink)
	sink.Close()
	switch {
	case errors.Is(err, capture.ErrDeviceUnavailable):
		fmt.Fprintf(os.Stderr, "Could not open webcam: %v\n", err)
		return 1
	case errors.Is(err, capture.ErrFrameRead):
		log.Warnf("stream ended after %d frames: %v", st.Frames, err)
	case err != nil:
		log.Errorf("after %d frames: %v", st.Frames, err)
		return 1
	}
	return 0
}

func newSink(name string) (capture.Sink, error) {
	switch name {
	case "window":
		return opencv.NewWindow(), nil
	case "ansi":
		return terminal.NewANSI(os.Stdout), nil
	case "preview":
		return terminal.Preview{}, nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
