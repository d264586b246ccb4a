package stream

import (
	"image"
	"time"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// FrameSnapshot carries the latest video frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Size returns the frame's native stream size (zero when empty).
func (s FrameSnapshot) Size() geometry.FrameSize {
	if s.Image == nil {
		return geometry.FrameSize{}
	}
	return geometry.FrameSizeOf(s.Image)
}

// FrameSource provides read-only access to the newest frame.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// Grabber produces one frame per call.
type Grabber func() (*image.RGBA, error)

// Stats summarises acquisition loop behaviour.
type Stats struct {
	Frames         uint64
	Skipped        uint64
	AvgGrab        time.Duration
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}
