package overlay

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// RectSurface renders a single selection rectangle and turns touch input into
// tap / drag notifications. It is not safe for concurrent use: all calls must
// come from the goroutine that owns the UI.
type RectSurface struct {
	logger   *slog.Logger
	listener Listener
	style    Style
	tapSlop  float64
	onChange func()

	state    GestureState
	start    geometry.ViewPoint
	moved    bool
	sel      SelectionState
	preTouch SelectionState
}

// NewRectSurface creates an idle surface. tapSlop is the maximum travel (view
// pixels) for a gesture to still count as a tap; zero means no movement at all.
func NewRectSurface(style Style, tapSlop float64, logger *slog.Logger) *RectSurface {
	if tapSlop < 0 {
		tapSlop = 0
	}
	return &RectSurface{logger: logger, style: style, tapSlop: tapSlop, start: geometry.InvalidViewPoint}
}

// SetListener installs the gesture listener. Nil disables notifications.
func (s *RectSurface) SetListener(l Listener) {
	s.listener = l
	if l == nil || s.logger == nil {
		return
	}
	_, tap := l.(TapListener)
	_, drag := l.(DragListener)
	if !tap && !drag {
		s.logger.Debug("overlay listener handles neither taps nor drags", "type", fmt.Sprintf("%T", l))
	}
}

// OnChange registers the redraw callback invoked after every visual change.
func (s *RectSurface) OnChange(fn func()) { s.onChange = fn }

// Style returns the style the surface was built with.
func (s *RectSurface) Style() Style { return s.style }

// State returns the current gesture state.
func (s *RectSurface) State() GestureState { return s.state }

// Selection returns a copy of the displayed selection.
func (s *RectSurface) Selection() SelectionState { return s.sel }

// TouchDown starts a new gesture at p. Any prior gesture is abandoned.
func (s *RectSurface) TouchDown(p geometry.ViewPoint) {
	if !p.Valid() {
		return
	}
	s.preTouch = s.sel
	s.start = p
	s.moved = false
	s.state = StateDragging
}

// TouchMove extends the current drag to p. Ignored when not dragging.
func (s *RectSurface) TouchMove(p geometry.ViewPoint) {
	if s.state != StateDragging || !p.Valid() {
		return
	}
	if !s.moved {
		if s.start.Distance(p) <= s.tapSlop {
			return
		}
		s.moved = true
		s.sel = SelectionState{
			ID:    uuid.New(),
			Shown: true,
			Style: s.sel.Style,
			Fill:  s.style.Stroke,
			Label: s.sel.Label,
		}
	}
	s.sel.Rect = geometry.RectFromTwoViewPoints(s.start, p)
	s.redraw()
	if dl, ok := s.listener.(DragListener); ok {
		dl.OnDrag(s.start, p, false)
	}
}

// TouchUp finishes the gesture at p, firing a tap or a finished drag.
func (s *RectSurface) TouchUp(p geometry.ViewPoint) {
	if s.state != StateDragging {
		return
	}
	if !p.Valid() {
		p = s.start
	}
	if !s.moved && s.start.Distance(p) <= s.tapSlop {
		s.sel = s.preTouch
		s.state = StateIdle
		if s.sel.Shown {
			s.state = StateCommitted
		}
		if s.logger != nil {
			s.logger.Debug("overlay tap", "x", p.X, "y", p.Y)
		}
		if tl, ok := s.listener.(TapListener); ok {
			tl.OnTap(p)
		}
		return
	}
	if !s.moved {
		s.moved = true
		s.sel = SelectionState{ID: uuid.New(), Shown: true, Style: s.sel.Style, Fill: s.style.Stroke, Label: s.sel.Label}
	}
	s.sel.Rect = geometry.RectFromTwoViewPoints(s.start, p)
	s.state = StateCommitted
	s.redraw()
	if s.logger != nil {
		s.logger.Debug("overlay drag finished",
			"id", s.sel.ID.String(),
			"from_x", s.start.X, "from_y", s.start.Y,
			"to_x", p.X, "to_y", p.Y)
	}
	if dl, ok := s.listener.(DragListener); ok {
		dl.OnDrag(s.start, p, true)
	}
}

// UpdateRect shows rect with the given fill colour, bypassing gestures. A nil
// colour keeps the current one.
func (s *RectSurface) UpdateRect(rect geometry.ViewRect, fill color.Color) {
	rect = geometry.RectFromTwoViewPoints(rect.Origin, rect.Max())
	if s.sel.ID == uuid.Nil {
		s.sel.ID = uuid.New()
	}
	s.sel.Rect = rect
	s.sel.Shown = true
	if fill != nil {
		s.sel.Fill = toRGBA(fill)
	} else if s.sel.Fill == (color.RGBA{}) {
		s.sel.Fill = s.style.Stroke
	}
	if s.state != StateDragging {
		s.state = StateCommitted
	}
	s.redraw()
}

// SetDottedLine switches between dashed and solid outlines.
func (s *RectSurface) SetDottedLine(dashed bool) {
	style := LineSolid
	if dashed {
		style = LineDashed
	}
	s.sel.Style = style
	s.redraw()
}

// SetText sets the label drawn above the rectangle. Empty hides it.
func (s *RectSurface) SetText(text string) {
	s.sel.Label = text
	s.redraw()
}

// Clear hides the rectangle and returns to idle.
func (s *RectSurface) Clear() {
	s.sel = SelectionState{Style: s.sel.Style}
	s.state = StateIdle
	s.start = geometry.InvalidViewPoint
	s.moved = false
	s.redraw()
}

func (s *RectSurface) redraw() {
	if s.onChange != nil {
		s.onChange()
	}
}
