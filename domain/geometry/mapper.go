package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// ErrConfiguration reports a zero-sized frame or view, or an unsupported fit mode.
var ErrConfiguration = errors.New("geometry: invalid stream/view configuration")

// Transform is the resolved uniform scale and letterbox offset that places a
// frame inside a view.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit resolves the letterbox transform for the given bounds and frame.
func Fit(b ViewBounds, f FrameSize) (Transform, error) {
	return FitWithMode(b, f, FitLetterbox)
}

// FitWithMode resolves the transform for an explicit fit mode. Only
// FitLetterbox is supported.
func FitWithMode(b ViewBounds, f FrameSize, mode FitMode) (Transform, error) {
	if mode != FitLetterbox {
		return Transform{}, errors.Wrapf(ErrConfiguration, "fit mode %v", mode)
	}
	if !positive(f.W) || !positive(f.H) {
		return Transform{}, errors.Wrapf(ErrConfiguration, "frame %gx%g", f.W, f.H)
	}
	if !positive(b.W) || !positive(b.H) {
		return Transform{}, errors.Wrapf(ErrConfiguration, "view bounds %gx%g", b.W, b.H)
	}
	s := math.Min(b.W/f.W, b.H/f.H)
	return Transform{
		Scale:   s,
		OffsetX: (b.W - f.W*s) / 2,
		OffsetY: (b.H - f.H*s) / 2,
	}, nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// PointToStream maps a view-space point into stream space.
func PointToStream(p ViewPoint, b ViewBounds, f FrameSize) (StreamPoint, error) {
	t, err := Fit(b, f)
	if err != nil {
		return InvalidStreamPoint, err
	}
	return StreamPoint{X: (p.X - t.OffsetX) / t.Scale, Y: (p.Y - t.OffsetY) / t.Scale}, nil
}

// PointFromStream maps a stream-space point into view space.
func PointFromStream(p StreamPoint, b ViewBounds, f FrameSize) (ViewPoint, error) {
	t, err := Fit(b, f)
	if err != nil {
		return InvalidViewPoint, err
	}
	return ViewPoint{X: p.X*t.Scale + t.OffsetX, Y: p.Y*t.Scale + t.OffsetY}, nil
}

// SizeToStream scales a view-space size into stream space.
func SizeToStream(s ViewSize, b ViewBounds, f FrameSize) (StreamSize, error) {
	t, err := Fit(b, f)
	if err != nil {
		return StreamSize{}, err
	}
	return StreamSize{W: s.W / t.Scale, H: s.H / t.Scale}, nil
}

// SizeFromStream scales a stream-space size into view space.
func SizeFromStream(s StreamSize, b ViewBounds, f FrameSize) (ViewSize, error) {
	t, err := Fit(b, f)
	if err != nil {
		return ViewSize{}, err
	}
	return ViewSize{W: s.W * t.Scale, H: s.H * t.Scale}, nil
}

// RectToStream maps a view-space rectangle into stream space. The result
// always has non-negative extents.
func RectToStream(r ViewRect, b ViewBounds, f FrameSize) (StreamRect, error) {
	o, err := PointToStream(r.Origin, b, f)
	if err != nil {
		return StreamRect{}, err
	}
	s, err := SizeToStream(r.Size, b, f)
	if err != nil {
		return StreamRect{}, err
	}
	return RectFromTwoStreamPoints(o, StreamPoint{X: o.X + s.W, Y: o.Y + s.H}), nil
}

// RectFromStream maps a stream-space rectangle into view space. The result
// always has non-negative extents.
func RectFromStream(r StreamRect, b ViewBounds, f FrameSize) (ViewRect, error) {
	o, err := PointFromStream(r.Origin, b, f)
	if err != nil {
		return ViewRect{}, err
	}
	s, err := SizeFromStream(r.Size, b, f)
	if err != nil {
		return ViewRect{}, err
	}
	return RectFromTwoViewPoints(o, ViewPoint{X: o.X + s.W, Y: o.Y + s.H}), nil
}

// RectFromTwoViewPoints builds a normalised rectangle from any two corners.
func RectFromTwoViewPoints(p1, p2 ViewPoint) ViewRect {
	x, y, w, h := normalize(p1.X, p1.Y, p2.X, p2.Y)
	return ViewRect{Origin: ViewPoint{X: x, Y: y}, Size: ViewSize{W: w, H: h}}
}

// RectFromTwoStreamPoints builds a normalised rectangle from any two corners.
func RectFromTwoStreamPoints(p1, p2 StreamPoint) StreamRect {
	x, y, w, h := normalize(p1.X, p1.Y, p2.X, p2.Y)
	return StreamRect{Origin: StreamPoint{X: x, Y: y}, Size: StreamSize{W: w, H: h}}
}

func normalize(x1, y1, x2, y2 float64) (x, y, w, h float64) {
	return math.Min(x1, x2), math.Min(y1, y2), math.Abs(x2 - x1), math.Abs(y2 - y1)
}

// BoundsSource reports the rendering surface's current bounds.
type BoundsSource interface {
	Bounds() ViewBounds
}

// BoundsFunc adapts a function to BoundsSource.
type BoundsFunc func() ViewBounds

func (f BoundsFunc) Bounds() ViewBounds { return f() }

// Mapper binds a live bounds source to a video session's frame size. Bounds
// are read on every call so conversions follow the current layout.
type Mapper struct {
	View  BoundsSource
	Frame FrameSize
}

// NewMapper returns a mapper for the given surface and frame size.
func NewMapper(view BoundsSource, frame FrameSize) *Mapper {
	return &Mapper{View: view, Frame: frame}
}

func (m *Mapper) bounds() (ViewBounds, error) {
	if m == nil || m.View == nil {
		return ViewBounds{}, errors.Wrap(ErrConfiguration, "no view bounds source")
	}
	return m.View.Bounds(), nil
}

// Layout returns the current view bounds and frame size. Callers holding
// view-space state compare it between frames to detect a layout change.
func (m *Mapper) Layout() (ViewBounds, FrameSize) {
	if m == nil || m.View == nil {
		return ViewBounds{}, FrameSize{}
	}
	return m.View.Bounds(), m.Frame
}

func (m *Mapper) PointToStream(p ViewPoint) (StreamPoint, error) {
	b, err := m.bounds()
	if err != nil {
		return InvalidStreamPoint, err
	}
	return PointToStream(p, b, m.Frame)
}

func (m *Mapper) PointFromStream(p StreamPoint) (ViewPoint, error) {
	b, err := m.bounds()
	if err != nil {
		return InvalidViewPoint, err
	}
	return PointFromStream(p, b, m.Frame)
}

func (m *Mapper) SizeToStream(s ViewSize) (StreamSize, error) {
	b, err := m.bounds()
	if err != nil {
		return StreamSize{}, err
	}
	return SizeToStream(s, b, m.Frame)
}

func (m *Mapper) SizeFromStream(s StreamSize) (ViewSize, error) {
	b, err := m.bounds()
	if err != nil {
		return ViewSize{}, err
	}
	return SizeFromStream(s, b, m.Frame)
}

func (m *Mapper) RectToStream(r ViewRect) (StreamRect, error) {
	b, err := m.bounds()
	if err != nil {
		return StreamRect{}, err
	}
	return RectToStream(r, b, m.Frame)
}

func (m *Mapper) RectFromStream(r StreamRect) (ViewRect, error) {
	b, err := m.bounds()
	if err != nil {
		return ViewRect{}, err
	}
	return RectFromStream(r, b, m.Frame)
}
