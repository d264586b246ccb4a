package presenter

import (
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/streamtrack-go/domain/geometry"
	"github.com/soocke/streamtrack-go/domain/overlay"
	"github.com/soocke/streamtrack-go/domain/vehicle"
	"github.com/soocke/streamtrack-go/ui/model"
)

// CoordinateMapper converts between view and stream space.
type CoordinateMapper interface {
	PointToStream(geometry.ViewPoint) (geometry.StreamPoint, error)
	PointFromStream(geometry.StreamPoint) (geometry.ViewPoint, error)
	RectToStream(geometry.ViewRect) (geometry.StreamRect, error)
	RectFromStream(geometry.StreamRect) (geometry.ViewRect, error)
	Layout() (geometry.ViewBounds, geometry.FrameSize)
}

// RectOverlay is the selection rectangle surface.
type RectOverlay interface {
	State() overlay.GestureState
	UpdateRect(rect geometry.ViewRect, fill color.Color)
	SetDottedLine(dashed bool)
	SetText(text string)
	Clear()
}

// PointOverlay is the tap-fly marker surface.
type PointOverlay interface {
	UpdatePoint(p geometry.ViewPoint, c ...color.Color)
	Hide()
}

// TargetColors maps target confidence to rectangle colours.
type TargetColors struct {
	High    color.RGBA
	Low     color.RGBA
	Waiting color.RGBA
	Lost    color.RGBA
}

// DefaultTargetColors uses high as the confident colour.
func DefaultTargetColors(high color.RGBA) TargetColors {
	return TargetColors{
		High:    high,
		Low:     color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
		Waiting: color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		Lost:    color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
	}
}

func (c TargetColors) For(s vehicle.TargetState) color.RGBA {
	switch s {
	case vehicle.TargetTrackingHighConfidence:
		return c.High
	case vehicle.TargetTrackingLowConfidence:
		return c.Low
	case vehicle.TargetCannotConfirm:
		return c.Lost
	default:
		return c.Waiting
	}
}

// TrackingPresenter connects overlay gestures to mission commands and mission
// reports back to the overlay. Gesture callbacks and Tick run on the UI
// thread; OnActiveTrack/OnTapFly may be called from any goroutine and are
// queued until the next Tick.
type TrackingPresenter struct {
	mapper  CoordinateMapper
	cmd     vehicle.Commander
	rect    RectOverlay
	point   PointOverlay
	mission *model.MissionModel
	colors  TargetColors
	logger  *slog.Logger

	// UI thread only
	seen        map[uuid.UUID]bool // sessions reported so far; true when stale
	outstanding int                // accepted starts whose session has not reported yet
	skipNew     int                // upcoming new sessions that belong to replaced selections

	// Overlay contents in stream space, re-projected when the layout changes.
	rectStream  geometry.StreamRect
	hasRect     bool
	pointStream geometry.StreamPoint
	hasPoint    bool
	layoutView  geometry.ViewBounds
	layoutFrame geometry.FrameSize

	mu      sync.Mutex
	pending []any
}

func NewTrackingPresenter(mapper CoordinateMapper, cmd vehicle.Commander, rect RectOverlay, point PointOverlay, mission *model.MissionModel, colors TargetColors, logger *slog.Logger) *TrackingPresenter {
	p := &TrackingPresenter{mapper: mapper, cmd: cmd, rect: rect, point: point, mission: mission, colors: colors, logger: logger}
	if mapper != nil {
		p.layoutView, p.layoutFrame = mapper.Layout()
	}
	return p
}

// OnTap flies towards the tapped location.
func (p *TrackingPresenter) OnTap(at geometry.ViewPoint) {
	if p == nil || p.mapper == nil || p.cmd == nil {
		return
	}
	sp, err := p.mapper.PointToStream(at)
	if err != nil {
		p.logError("tap", err)
		return
	}
	p.showPoint(sp, at)
	if err := p.cmd.TapFlyTo(sp); err != nil {
		p.logError("tap fly", err)
		p.hidePoint()
		return
	}
	if p.logger != nil {
		p.logger.Debug("tap fly requested", "view_x", at.X, "view_y", at.Y, "x", sp.X, "y", sp.Y)
	}
}

// OnDrag starts ActiveTrack on the finished selection. In-progress drags are
// drawn by the surface itself.
func (p *TrackingPresenter) OnDrag(from, to geometry.ViewPoint, finished bool) {
	if p == nil || !finished || p.mapper == nil || p.cmd == nil {
		return
	}
	sel := geometry.RectFromTwoViewPoints(from, to)
	sr, err := p.mapper.RectToStream(sel)
	if err != nil {
		p.logError("selection", err)
		return
	}
	if p.rect != nil {
		p.rect.SetDottedLine(true)
		p.rect.SetText(vehicle.TargetWaitingForConfirmation.String())
	}
	p.rectStream, p.hasRect = sr, true
	if err := p.cmd.StartActiveTrack(sr); err != nil {
		p.logError("active track", err)
		if p.rect != nil {
			p.rect.SetText(err.Error())
		}
		return
	}
	// Every report from an earlier selection is now stale, including sessions
	// that were started but have not reported yet.
	for id := range p.seen {
		p.seen[id] = true
	}
	p.skipNew = p.outstanding
	p.outstanding++
	if p.logger != nil {
		p.logger.Info("active track requested",
			"x", sr.Origin.X, "y", sr.Origin.Y, "w", sr.Size.W, "h", sr.Size.H)
	}
}

// OnActiveTrack queues a mission update.
func (p *TrackingPresenter) OnActiveTrack(ev vehicle.ActiveTrackEvent) { p.enqueue(ev) }

// OnTapFly queues a mission update.
func (p *TrackingPresenter) OnTapFly(ev vehicle.TapFlyEvent) { p.enqueue(ev) }

func (p *TrackingPresenter) enqueue(ev any) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, ev)
	p.mu.Unlock()
}

// Tick applies queued mission updates in arrival order.
func (p *TrackingPresenter) Tick(now time.Time) {
	if p == nil {
		return
	}
	p.mu.Lock()
	batch := p.pending
	p.pending = nil
	p.mu.Unlock()
	for _, ev := range batch {
		switch e := ev.(type) {
		case vehicle.ActiveTrackEvent:
			if p.stale(e.Session) {
				continue
			}
			p.mission.ApplyActiveTrack(e)
			p.applyActiveTrack(e)
		case vehicle.TapFlyEvent:
			p.mission.ApplyTapFly(e)
			p.applyTapFly(e)
		}
	}
	p.relayout()
}

// stale reports whether a session belongs to a replaced selection. New
// sessions arrive in the order their starts were accepted.
func (p *TrackingPresenter) stale(id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	if p.seen == nil {
		p.seen = make(map[uuid.UUID]bool)
	}
	if old, ok := p.seen[id]; ok {
		return old
	}
	if p.outstanding > 0 {
		p.outstanding--
	}
	old := p.skipNew > 0
	if old {
		p.skipNew--
	}
	p.seen[id] = old
	return old
}

// relayout re-projects the overlays when the view or frame size changed.
func (p *TrackingPresenter) relayout() {
	if p.mapper == nil {
		return
	}
	b, f := p.mapper.Layout()
	if b == p.layoutView && f == p.layoutFrame {
		return
	}
	p.layoutView, p.layoutFrame = b, f
	if p.hasRect && p.rect != nil && p.rect.State() == overlay.StateCommitted {
		if vr, err := p.mapper.RectFromStream(p.rectStream); err == nil {
			p.rect.UpdateRect(vr, nil)
		}
	}
	if p.hasPoint && p.point != nil {
		if vp, err := p.mapper.PointFromStream(p.pointStream); err == nil {
			p.point.UpdatePoint(vp)
		}
	}
	if p.logger != nil {
		p.logger.Debug("overlay relayout", "view_w", b.W, "view_h", b.H, "frame_w", f.W, "frame_h", f.H)
	}
}

// ClearSelection stops tracking and removes both overlays.
func (p *TrackingPresenter) ClearSelection() {
	if p == nil {
		return
	}
	if p.cmd != nil {
		p.cmd.StopActiveTrack()
	}
	if p.rect != nil {
		p.rect.Clear()
	}
	p.hasRect = false
	p.hidePoint()
	p.mission.Reset(time.Now())
}

func (p *TrackingPresenter) applyActiveTrack(e vehicle.ActiveTrackEvent) {
	if p.rect == nil {
		return
	}
	switch e.State {
	case vehicle.ActiveTrackReadyToStart, vehicle.ActiveTrackCannotStart, vehicle.ActiveTrackDisconnected:
		if p.rect.State() != overlay.StateDragging {
			p.rect.Clear()
			p.hasRect = false
		}
		return
	}
	// A new selection in progress wins over reports about the old one.
	if p.rect.State() == overlay.StateDragging || e.Rect.Empty() || p.mapper == nil {
		return
	}
	vr, err := p.mapper.RectFromStream(e.Rect)
	if err != nil {
		p.logError("mission rect", err)
		return
	}
	p.rectStream, p.hasRect = e.Rect, true
	p.rect.UpdateRect(vr, p.colors.For(e.Target))
	confident := e.Target == vehicle.TargetTrackingHighConfidence || e.Target == vehicle.TargetTrackingLowConfidence
	p.rect.SetDottedLine(!confident)
	label := e.Target.String()
	if e.State == vehicle.ActiveTrackCannotConfirm {
		label = e.Reason.String()
	}
	p.rect.SetText(label)
}

func (p *TrackingPresenter) applyTapFly(e vehicle.TapFlyEvent) {
	if p.point == nil {
		return
	}
	if e.State != vehicle.TapFlyExecuting {
		p.hidePoint()
		return
	}
	if p.mapper == nil {
		return
	}
	vp, err := p.mapper.PointFromStream(e.Point)
	if err != nil {
		p.logError("tap fly point", err)
		return
	}
	p.showPoint(e.Point, vp)
}

func (p *TrackingPresenter) showPoint(sp geometry.StreamPoint, vp geometry.ViewPoint) {
	p.pointStream, p.hasPoint = sp, true
	if p.point != nil {
		p.point.UpdatePoint(vp)
	}
}

func (p *TrackingPresenter) hidePoint() {
	p.hasPoint = false
	if p.point != nil {
		p.point.Hide()
	}
}

func (p *TrackingPresenter) logError(what string, err error) {
	if p.logger != nil {
		p.logger.Error(what, "error", err)
	}
}

var (
	_ overlay.TapListener     = (*TrackingPresenter)(nil)
	_ overlay.DragListener    = (*TrackingPresenter)(nil)
	_ vehicle.MissionObserver = (*TrackingPresenter)(nil)
)
