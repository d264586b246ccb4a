package geometry

import (
	"image"
	"math"
)

// ViewPoint is a point on the on-screen rendering surface.
type ViewPoint struct{ X, Y float64 }

// StreamPoint is a point in the video feed's native pixel space.
type StreamPoint struct{ X, Y float64 }

// ViewSize is a width/height pair in view space.
type ViewSize struct{ W, H float64 }

// StreamSize is a width/height pair in stream space.
type StreamSize struct{ W, H float64 }

// ViewRect is an origin+size rectangle in view space.
type ViewRect struct {
	Origin ViewPoint
	Size   ViewSize
}

// StreamRect is an origin+size rectangle in stream space.
type StreamRect struct {
	Origin StreamPoint
	Size   StreamSize
}

// ViewBounds is the current size of the rendering surface.
type ViewBounds struct{ W, H float64 }

// FrameSize is the native resolution of the video source.
type FrameSize struct{ W, H float64 }

// FitMode describes how a frame is placed inside the view.
type FitMode int

const (
	// FitLetterbox scales uniformly and centres the frame, padding the short axis.
	FitLetterbox FitMode = iota
)

func (m FitMode) String() string {
	switch m {
	case FitLetterbox:
		return "letterbox"
	default:
		return "unknown"
	}
}

// Sentinels for "no current touch/selection". Always check Valid before use.
var (
	InvalidViewPoint   = ViewPoint{X: math.MaxFloat64, Y: math.MaxFloat64}
	InvalidStreamPoint = StreamPoint{X: math.MaxFloat64, Y: math.MaxFloat64}
)

func (p ViewPoint) Valid() bool   { return validPair(p.X, p.Y) }
func (p StreamPoint) Valid() bool { return validPair(p.X, p.Y) }

func validPair(x, y float64) bool {
	if x == math.MaxFloat64 && y == math.MaxFloat64 {
		return false
	}
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Pt is shorthand for a ViewPoint literal.
func Pt(x, y float64) ViewPoint { return ViewPoint{X: x, Y: y} }

// SPt is shorthand for a StreamPoint literal.
func SPt(x, y float64) StreamPoint { return StreamPoint{X: x, Y: y} }

// Distance returns the euclidean distance between two view points.
func (p ViewPoint) Distance(q ViewPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Max returns the corner opposite the origin.
func (r ViewRect) Max() ViewPoint {
	return ViewPoint{X: r.Origin.X + r.Size.W, Y: r.Origin.Y + r.Size.H}
}

// Max returns the corner opposite the origin.
func (r StreamRect) Max() StreamPoint {
	return StreamPoint{X: r.Origin.X + r.Size.W, Y: r.Origin.Y + r.Size.H}
}

// Empty reports whether the rectangle has no area.
func (r ViewRect) Empty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// Empty reports whether the rectangle has no area.
func (r StreamRect) Empty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// Center returns the rectangle's centre point.
func (r StreamRect) Center() StreamPoint {
	return StreamPoint{X: r.Origin.X + r.Size.W/2, Y: r.Origin.Y + r.Size.H/2}
}

// Image rounds the view rect to integer pixel coordinates.
func (r ViewRect) Image() image.Rectangle {
	return roundRect(r.Origin.X, r.Origin.Y, r.Size.W, r.Size.H)
}

// Image rounds the stream rect to integer pixel coordinates.
func (r StreamRect) Image() image.Rectangle {
	return roundRect(r.Origin.X, r.Origin.Y, r.Size.W, r.Size.H)
}

// StreamRectFromImage converts integer pixel bounds into a stream rect.
func StreamRectFromImage(r image.Rectangle) StreamRect {
	r = r.Canon()
	return StreamRect{
		Origin: StreamPoint{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		Size:   StreamSize{W: float64(r.Dx()), H: float64(r.Dy())},
	}
}

// FrameSizeOf returns the native size of an image.
func FrameSizeOf(img image.Image) FrameSize {
	if img == nil {
		return FrameSize{}
	}
	b := img.Bounds()
	return FrameSize{W: float64(b.Dx()), H: float64(b.Dy())}
}

func roundRect(x, y, w, h float64) image.Rectangle {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	return image.Rect(x0, y0, x1, y1)
}
