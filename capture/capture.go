// Package capture drives frames from a source through a pipeline into a sink
// until the source ends or the sink asks to stop.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/asciicam"
)

var (
	// ErrDeviceUnavailable - the source could not be opened
	ErrDeviceUnavailable = errors.New("capture: device unavailable")
	// ErrFrameRead - an open source failed to deliver a frame
	ErrFrameRead = errors.New("capture: frame read failed")
)

// Source yields raw frames. Read blocks until a frame is available.
type Source interface {
	Read() (image.Image, error)
	Close() error
}

// Opener acquires a Source
type Opener func() (Source, error)

// Sink presents an Output. Show returns quit=true when the user asked to stop.
type Sink interface {
	Show(out *asciicam.Output) (quit bool, err error)
	Close() error
}

// Processor is satisfied by *asciicam.Pipeline
type Processor interface {
	Process(frame image.Image) (*asciicam.Output, error)
}

// Stats - what a Run got through
type Stats struct {
	Frames int
}

// Run opens the source and loops read, process, show. The source is closed
// exactly once on every return path. A nil error means the sink or ctx
// stopped the loop.
func Run(ctx context.Context, open Opener, p Processor, sink Sink) (Stats, error) {
	var st Stats
	src, err := open()
	if err != nil {
		return st, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	log.Info("capture device opened")
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Warnf("closing capture device: %v", cerr)
		}
		log.Infof("capture device released after %d frames", st.Frames)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Infof("capture stopped: %v", ctx.Err())
			return st, nil
		default:
		}

		frame, err := src.Read()
		if err != nil {
			return st, fmt.Errorf("%w: %v", ErrFrameRead, err)
		}
		out, err := p.Process(frame)
		if err != nil {
			return st, fmt.Errorf("process frame %d: %w", st.Frames, err)
		}
		st.Frames++

		quit, err := sink.Show(out)
		if err != nil {
			return st, fmt.Errorf("show frame %d: %w", st.Frames, err)
		}
		if quit {
			log.Info("quit requested")
			return st, nil
		}
	}
}
