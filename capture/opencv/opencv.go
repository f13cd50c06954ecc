// Package opencv provides the camera source and display window backed by gocv.
package opencv

import (
	"errors"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/asciicam"
	"github.com/submersibletoaster/asciicam/capture"
	"gocv.io/x/gocv"
)

// DefaultDevice - the system's first camera
const DefaultDevice = 0

// WindowTitle names the display window
const WindowTitle = "ASCII Webcam"

// QuitKey stops the loop when pressed in the window
const QuitKey = 'q'

var errNoFrame = errors.New("camera returned no frame")

// Camera reads frames from a gocv VideoCapture
type Camera struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

// Open returns an Opener for the camera at device
func Open(device int) capture.Opener {
	return func() (capture.Source, error) {
		vc, err := gocv.OpenVideoCapture(device)
		if err != nil {
			return nil, fmt.Errorf("open camera %d: %w", device, err)
		}
		if !vc.IsOpened() {
			vc.Close()
			return nil, fmt.Errorf("camera %d did not open", device)
		}
		log.Debugf("camera %d: %.0fx%.0f @ %.1f fps", device,
			vc.Get(gocv.VideoCaptureFrameWidth),
			vc.Get(gocv.VideoCaptureFrameHeight),
			vc.Get(gocv.VideoCaptureFPS))
		return &Camera{vc: vc, mat: gocv.NewMat()}, nil
	}
}

// Read grabs the next frame as an RGBA image
func (c *Camera) Read() (image.Image, error) {
	if ok := c.vc.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, errNoFrame
	}
	return c.mat.ToImage()
}

// Close releases the frame buffer and the device
func (c *Camera) Close() error {
	merr := c.mat.Close()
	if err := c.vc.Close(); err != nil {
		return err
	}
	return merr
}

// Window shows rasters in a resizable OpenCV window. The window itself is
// only created with the first frame.
type Window struct {
	win *gocv.Window
}

// NewWindow returns a Window sink titled WindowTitle
func NewWindow() *Window {
	return &Window{}
}

// Show draws the raster and polls the keyboard once
func (w *Window) Show(out *asciicam.Output) (bool, error) {
	if w.win == nil {
		w.win = gocv.NewWindow(WindowTitle)
	}
	mat, err := gocv.ImageToMatRGB(out.Raster)
	if err != nil {
		return false, fmt.Errorf("raster to mat: %w", err)
	}
	defer mat.Close()
	w.win.IMShow(mat)
	key := w.win.WaitKey(1)
	return key >= 0 && key&0xFF == QuitKey, nil
}

// Close destroys the window if one was shown
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	return w.win.Close()
}
