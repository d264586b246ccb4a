package presenter

import (
	"testing"

	"github.com/soocke/streamtrack-go/domain/stream"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool     { return m.enabled }
func (m *mockModel) SetEnabled(b bool) { m.enabled = b }

// mockService implements stream.Service so the presenter can be built from
// the real contract.
type mockService struct{ started, stopped int }

func (s *mockService) Start()                           { s.started++ }
func (s *mockService) Stop()                            { s.stopped++ }
func (s *mockService) LatestFrame() stream.FrameSnapshot { return stream.FrameSnapshot{} }
func (s *mockService) Running() bool                    { return s.started > s.stopped }
func (s *mockService) Stats() stream.Stats              { return stream.Stats{} }

var _ stream.Service = (*mockService)(nil)

type mockStopper struct{ stops int }

func (m *mockStopper) StopActiveTrack() { m.stops++ }

type mockStreamView struct {
	reset, editableCalls int
	lastEditable         bool
}

func (v *mockStreamView) PreviewReset()         { v.reset++ }
func (v *mockStreamView) ConfigEditable(b bool) { v.editableCalls++; v.lastEditable = b }

func TestStreamPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	svc := &mockService{}
	stop := &mockStopper{}
	view := &mockStreamView{}
	p := NewStreamPresenter(m, svc, stop, view)

	p.Enable()
	if !m.Enabled() || svc.started != 1 || view.lastEditable || view.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.started, view.editableCalls, view.lastEditable)
	}
	p.Enable()
	if svc.started != 1 || view.editableCalls != 1 {
		t.Fatalf("enable not idempotent: started=%d", svc.started)
	}

	p.Disable()
	if m.Enabled() || svc.stopped != 1 || stop.stops != 1 || view.reset != 1 || !view.lastEditable || view.editableCalls != 2 {
		t.Fatalf("disable failed: enabled=%v stopped=%d stops=%d reset=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.stopped, stop.stops, view.reset, view.editableCalls, view.lastEditable)
	}
	p.Disable()
	if svc.stopped != 1 || stop.stops != 1 || view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d stops=%d reset=%d", svc.stopped, stop.stops, view.reset)
	}
}

func TestStreamPresenter_Toggle(t *testing.T) {
	m := &mockModel{}
	svc := &mockService{}
	view := &mockStreamView{}
	p := NewStreamPresenter(m, svc, nil, view) // no mission attached
	p.Toggle()
	if !m.Enabled() || svc.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle()
	if m.Enabled() || svc.stopped != 1 || view.reset != 1 {
		t.Fatalf("toggle disable failed")
	}

	var nilPresenter *StreamPresenter
	nilPresenter.Toggle()
}
