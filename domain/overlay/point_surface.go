package overlay

import (
	"image/color"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// PointSurface renders one point marker. Like RectSurface it is owned by the
// UI goroutine.
type PointSurface struct {
	style    Style
	point    geometry.ViewPoint
	color    color.RGBA
	onChange func()
}

// NewPointSurface returns a surface with no marker shown.
func NewPointSurface(style Style) *PointSurface {
	return &PointSurface{style: style, point: geometry.InvalidViewPoint, color: style.MarkerColor}
}

// OnChange registers the redraw callback.
func (s *PointSurface) OnChange(fn func()) { s.onChange = fn }

// UpdatePoint moves the marker. The optional colour defaults to the style's
// marker colour. An invalid point hides the marker.
func (s *PointSurface) UpdatePoint(p geometry.ViewPoint, c ...color.Color) {
	s.point = p
	s.color = s.style.MarkerColor
	if len(c) > 0 && c[0] != nil {
		s.color = toRGBA(c[0])
	}
	if s.onChange != nil {
		s.onChange()
	}
}

// Point returns the marker location and colour.
func (s *PointSurface) Point() (geometry.ViewPoint, color.RGBA) { return s.point, s.color }

// Hide removes the marker.
func (s *PointSurface) Hide() { s.UpdatePoint(geometry.InvalidViewPoint) }
