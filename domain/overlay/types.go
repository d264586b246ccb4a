package overlay

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// TapListener receives single taps (down and up without drag distance).
type TapListener interface {
	OnTap(p geometry.ViewPoint)
}

// DragListener receives drag progress and completion. Points are in view space.
type DragListener interface {
	OnDrag(from, to geometry.ViewPoint, finished bool)
}

// Listener is any value implementing TapListener, DragListener or both.
// Methods a listener does not implement are simply not invoked.
type Listener any

// GestureState enumerates the rectangle surface's gesture states.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StateCommitted
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// LineStyle selects the rectangle outline style.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
)

// SelectionState is the rectangle currently shown by a RectSurface.
type SelectionState struct {
	ID    uuid.UUID
	Rect  geometry.ViewRect
	Shown bool
	Style LineStyle
	Fill  color.RGBA
	Label string
}

// Style configures how surfaces rasterise themselves.
type Style struct {
	Stroke      color.RGBA
	LineWidth   int
	DashLength  int
	GapLength   int
	FillAlpha   uint8
	LabelColor  color.RGBA
	MarkerColor color.RGBA
	MarkerSize  int
}

// DefaultStyle returns the stock overlay palette.
func DefaultStyle() Style {
	return Style{
		Stroke:      color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		LineWidth:   2,
		DashLength:  10,
		GapLength:   5,
		FillAlpha:   0x40,
		LabelColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		MarkerColor: color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
		MarkerSize:  12,
	}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
