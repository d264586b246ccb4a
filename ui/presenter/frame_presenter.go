package presenter

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/soocke/streamtrack-go/domain/geometry"
	"github.com/soocke/streamtrack-go/domain/stream"
	"github.com/soocke/streamtrack-go/ui/images"
	"github.com/soocke/streamtrack-go/ui/model"
)

const (
	thumbMargin = 8
	thumbSize   = 96
)

// OverlayRenderer draws one overlay layer onto the composed view image.
type OverlayRenderer interface {
	Render(dst draw.Image)
}

// VideoView is the UI surface showing the composed video and target thumbnail.
type VideoView interface {
	UpdateVideo(img image.Image)
	UpdateTarget(img image.Image)
}

type frameTask struct {
	snapshot stream.FrameSnapshot
	w, h     int
	version  uint64
	target   image.Rectangle
	bg       color.RGBA
}

type frameResult struct {
	sequence uint64
	version  uint64
	base     *image.RGBA
	thumb    image.Image
}

// FramePresenter letterboxes new frames into the viewport on a worker
// goroutine and composes the overlays on top on the UI thread. It keeps the
// mapper's frame size in step with the stream.
type FramePresenter struct {
	Enabled  func() bool
	Source   stream.FrameSource
	Viewport *model.ViewportModel
	Mapper   *geometry.Mapper
	Mission  *model.MissionModel
	Overlays []OverlayRenderer
	View     VideoView
	Bg       color.RGBA
	logger   *slog.Logger

	workerOnce sync.Once
	workCh     chan frameTask
	resultCh   chan frameResult

	lastSeq     uint64
	lastVersion uint64
	base        *image.RGBA
	dirty       bool
}

// NewFramePresenter constructs a frame presenter.
func NewFramePresenter(enabled func() bool, source stream.FrameSource, viewport *model.ViewportModel, mapper *geometry.Mapper, mission *model.MissionModel, view VideoView, logger *slog.Logger, overlays ...OverlayRenderer) *FramePresenter {
	return &FramePresenter{
		Enabled:  enabled,
		Source:   source,
		Viewport: viewport,
		Mapper:   mapper,
		Mission:  mission,
		Overlays: overlays,
		View:     view,
		Bg:       color.RGBA{A: 0xff},
		logger:   logger,
		workCh:   make(chan frameTask, 1),
		resultCh: make(chan frameResult, 1),
	}
}

// MarkDirty requests a recomposition on the next Tick. Overlays call it
// through their change callbacks.
func (p *FramePresenter) MarkDirty() {
	if p != nil {
		p.dirty = true
	}
}

// Reset drops the composed frame so the next frame is processed afresh.
func (p *FramePresenter) Reset() {
	if p == nil {
		return
	}
	p.base = nil
	p.lastSeq = 0
	p.dirty = false
}

// Tick handles worker results, schedules the newest frame and recomposes when
// either the frame or an overlay changed.
func (p *FramePresenter) Tick() {
	if p == nil || p.Enabled == nil || p.Source == nil || p.Viewport == nil || p.View == nil {
		return
	}
	p.ensureWorker()

	for drained := false; !drained; {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			drained = true
		}
	}

	if !p.Enabled() || !p.Source.Running() {
		p.Reset()
		return
	}
	p.maybeDispatch()

	if p.dirty && p.base != nil {
		p.dirty = false
		out := image.NewRGBA(p.base.Rect)
		copy(out.Pix, p.base.Pix)
		for _, o := range p.Overlays {
			if o != nil {
				o.Render(out)
			}
		}
		p.View.UpdateVideo(out)
	}
}

func (p *FramePresenter) maybeDispatch() {
	snap := p.Source.LatestFrame()
	if snap.Image == nil || snap.Sequence == 0 {
		return
	}
	version := p.Viewport.Version()
	if snap.Sequence == p.lastSeq && version == p.lastVersion {
		return
	}
	p.lastSeq, p.lastVersion = snap.Sequence, version
	if p.Mapper != nil {
		if fs := snap.Size(); fs != p.Mapper.Frame {
			if p.logger != nil {
				p.logger.Info("stream size changed", "w", fs.W, "h", fs.H)
			}
			p.Mapper.Frame = fs
		}
	}
	w, h := p.Viewport.Size()
	task := frameTask{snapshot: snap, w: w, h: h, version: version, bg: p.Bg}
	if ev, ok := p.Mission.ActiveTrack(); ok && ev.State.Tracking() {
		task.target = ev.Rect.Image()
	}
	p.dispatchTask(task)
}

func (p *FramePresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *FramePresenter) runWorker() {
	for task := range p.workCh {
		res := p.executeTask(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

// dispatchTask replaces any queued task; only the newest frame matters.
func (p *FramePresenter) dispatchTask(task frameTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

func (p *FramePresenter) executeTask(task frameTask) frameResult {
	res := frameResult{sequence: task.snapshot.Sequence, version: task.version}
	res.base = images.Letterbox(task.snapshot.Image, task.w, task.h, task.bg)
	if !task.target.Empty() {
		if roi, _, err := images.ExtractROI(task.snapshot.Image, task.target, thumbMargin); err == nil {
			res.thumb = images.ScaleToFit(roi, thumbSize, thumbSize)
		}
	}
	return res
}

func (p *FramePresenter) handleResult(res frameResult) {
	if res.version != p.Viewport.Version() || !p.Enabled() {
		return // stale: viewport resized or stream stopped meanwhile
	}
	p.base = res.base
	p.dirty = true
	if res.thumb != nil {
		p.View.UpdateTarget(res.thumb)
	}
}
