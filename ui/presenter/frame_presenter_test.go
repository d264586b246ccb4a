package presenter

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/streamtrack-go/domain/geometry"
	"github.com/soocke/streamtrack-go/domain/stream"
	"github.com/soocke/streamtrack-go/domain/vehicle"
	"github.com/soocke/streamtrack-go/ui/model"
)

type mockSource struct {
	mu      sync.Mutex
	snap    stream.FrameSnapshot
	running bool
}

func (s *mockSource) push(img *image.RGBA) {
	s.mu.Lock()
	s.snap = stream.FrameSnapshot{Image: img, Sequence: s.snap.Sequence + 1, CapturedAt: time.Now()}
	s.mu.Unlock()
}

func (s *mockSource) LatestFrame() stream.FrameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *mockSource) Running() bool { return s.running }

type mockVideoView struct {
	videos  []image.Image
	targets []image.Image
}

func (v *mockVideoView) UpdateVideo(img image.Image)  { v.videos = append(v.videos, img) }
func (v *mockVideoView) UpdateTarget(img image.Image) { v.targets = append(v.targets, img) }

type mockRenderer struct{ calls int }

func (r *mockRenderer) Render(dst draw.Image) {
	r.calls++
	dst.Set(0, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func fill(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func tickUntil(t *testing.T, p *FramePresenter, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.Tick()
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met")
}

func TestFramePresenter_ComposesFrameAndOverlays(t *testing.T) {
	src := &mockSource{running: true}
	vp := model.NewViewportModel(200, 200)
	mapper := geometry.NewMapper(vp, geometry.FrameSize{W: 1, H: 1})
	view := &mockVideoView{}
	r := &mockRenderer{}
	enabled := true
	p := NewFramePresenter(func() bool { return enabled }, src, vp, mapper, model.NewMissionModel(), view, nil, r)

	red := color.RGBA{R: 0xff, A: 0xff}
	src.push(fill(400, 200, red))
	tickUntil(t, p, func() bool { return len(view.videos) == 1 })

	if mapper.Frame != (geometry.FrameSize{W: 400, H: 200}) {
		t.Fatalf("mapper frame not updated: %v", mapper.Frame)
	}
	img := view.videos[0].(*image.RGBA)
	if img.Bounds() != image.Rect(0, 0, 200, 200) {
		t.Fatalf("composed size %v", img.Bounds())
	}
	// 400x200 into 200x200: 50px bars above and below.
	if got := img.RGBAAt(100, 20); got != p.Bg {
		t.Fatalf("bar pixel %v", got)
	}
	if got := img.RGBAAt(100, 100); got != red {
		t.Fatalf("frame pixel %v", got)
	}
	if got := img.RGBAAt(0, 0); got.G != 0xff || r.calls != 1 {
		t.Fatalf("overlay not rendered: %v calls=%d", got, r.calls)
	}

	// Nothing changed: no recomposition.
	p.Tick()
	if len(view.videos) != 1 {
		t.Fatalf("recomposed without changes")
	}
	// Overlay change recomposes the same base.
	p.MarkDirty()
	p.Tick()
	if len(view.videos) != 2 || r.calls != 2 {
		t.Fatalf("dirty overlay not recomposed: videos=%d calls=%d", len(view.videos), r.calls)
	}

	// Resize re-letterboxes the current frame.
	vp.SetSize(100, 50)
	tickUntil(t, p, func() bool { return len(view.videos) == 3 })
	if b := view.videos[2].Bounds(); b != image.Rect(0, 0, 100, 50) {
		t.Fatalf("resized composition %v", b)
	}

	// Disabled stream shows nothing new.
	enabled = false
	src.push(fill(400, 200, red))
	p.MarkDirty()
	p.Tick()
	if len(view.videos) != 3 {
		t.Fatalf("disabled stream still composed")
	}
}

func TestFramePresenter_TargetThumbnail(t *testing.T) {
	src := &mockSource{running: true}
	vp := model.NewViewportModel(64, 64)
	mission := model.NewMissionModel()
	mission.ApplyActiveTrack(vehicle.ActiveTrackEvent{
		Session: uuid.New(),
		State:   vehicle.ActiveTrackAircraftFollowing,
		Rect:    geometry.StreamRect{Origin: geometry.SPt(10, 10), Size: geometry.StreamSize{W: 16, H: 16}},
	})
	view := &mockVideoView{}
	p := NewFramePresenter(func() bool { return true }, src, vp, geometry.NewMapper(vp, geometry.FrameSize{}), mission, view, nil)

	src.push(fill(64, 64, color.RGBA{B: 0xff, A: 0xff}))
	tickUntil(t, p, func() bool { return len(view.targets) == 1 })
	// 16px target + 8px margin each side = 32px, enlarged to 96px.
	if b := view.targets[0].Bounds(); b.Dx() != 96 || b.Dy() != 96 {
		t.Fatalf("thumbnail %v", b)
	}
}

func TestFramePresenter_NilSafe(t *testing.T) {
	var p *FramePresenter
	p.Tick()
	p.MarkDirty()
	p.Reset()
	(&FramePresenter{}).Tick()
}
