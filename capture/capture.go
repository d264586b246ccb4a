// Package capture grabs desktop frames with the screenshot library. The
// desktop stands in for the aircraft's video feed when no vehicle is attached.
package capture

import (
	"image"

	"github.com/pkg/errors"
	"github.com/vova616/screenshot"
)

// Grab returns a capture of the primary screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, errors.Wrap(err, "capture screen")
	}
	return img, nil
}

// GrabRegion captures region clipped to the screen bounds.
func GrabRegion(region image.Rectangle) (*image.RGBA, error) {
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, errors.Wrap(err, "screen rect")
	}
	r := region.Intersect(screen)
	if r.Empty() {
		return nil, errors.Errorf("capture: region %v outside screen %v", region, screen)
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, errors.Wrapf(err, "capture rect %v", r)
	}
	return img, nil
}

// Grabber returns a frame grabber that captures region() on every call, or
// the full screen while region is nil or returns an empty rectangle.
func Grabber(region func() image.Rectangle) func() (*image.RGBA, error) {
	return func() (*image.RGBA, error) {
		if region == nil {
			return Grab()
		}
		r := region()
		if r.Empty() {
			return Grab()
		}
		return GrabRegion(r)
	}
}
