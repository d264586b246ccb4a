package presenter

import (
	"testing"
	"time"

	"github.com/soocke/streamtrack-go/domain/vehicle"
	"github.com/soocke/streamtrack-go/ui/model"
)

type mockStatusView struct {
	labels       []string
	cur, total   time.Duration
	followCalled int
}

func (v *mockStatusView) SetStatusLabel(s string) { v.labels = append(v.labels, s) }
func (v *mockStatusView) SetFollow(cur, total time.Duration) {
	v.cur, v.total = cur, total
	v.followCalled++
}

func TestStatusPresenter_ReflectsChangesOnly(t *testing.T) {
	m := model.NewMissionModel()
	view := &mockStatusView{}
	p := NewStatusPresenter(m, view)
	base := time.Unix(100, 0)

	p.Tick(base)
	p.Tick(base.Add(time.Second))
	if len(view.labels) != 1 || view.labels[0] != "ActiveTrack: Ready to Start" {
		t.Fatalf("labels=%v", view.labels)
	}

	m.ApplyActiveTrack(vehicle.ActiveTrackEvent{State: vehicle.ActiveTrackAircraftFollowing, Target: vehicle.TargetTrackingHighConfidence, At: base})
	p.Tick(base.Add(4 * time.Second))
	if len(view.labels) != 2 {
		t.Fatalf("status change not reflected: %v", view.labels)
	}
	if view.cur != 4*time.Second || view.total != 4*time.Second || view.followCalled != 3 {
		t.Fatalf("follow times cur=%v total=%v calls=%d", view.cur, view.total, view.followCalled)
	}
}

func TestLoop_TicksInOrderAndSchedules(t *testing.T) {
	m := model.NewMissionModel()
	status := &mockStatusView{}
	tracking := NewTrackingPresenter(nil, nil, nil, nil, m, TargetColors{}, nil)
	scheduled := 0
	l := NewLoop(tracking, NewStatusPresenter(m, status), nil, func() { scheduled++ })

	// A report queued from the mission goroutine is visible in the same tick.
	tracking.OnActiveTrack(vehicle.ActiveTrackEvent{State: vehicle.ActiveTrackCannotStart})
	l.Tick()
	if scheduled != 1 {
		t.Fatalf("schedule not called")
	}
	if len(status.labels) != 1 || status.labels[0] != "ActiveTrack: Cannot Start" {
		t.Fatalf("labels=%v", status.labels)
	}

	var nilLoop *Loop
	nilLoop.Tick()
	(&Loop{}).Tick()
}
