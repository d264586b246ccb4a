package model

import (
	"testing"
	"time"

	"github.com/soocke/streamtrack-go/domain/vehicle"
)

func TestMissionModel_FollowLifecycle(t *testing.T) {
	m := NewMissionModel()
	base := time.Unix(0, 0)
	follow := func(at time.Time) {
		m.ApplyActiveTrack(vehicle.ActiveTrackEvent{State: vehicle.ActiveTrackAircraftFollowing, At: at})
	}

	// Start following at t0 and run for 5s.
	follow(base)
	m.OnTick(base.Add(5 * time.Second))
	cur, total := m.FollowTimes()
	if cur != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s current & total; got current=%v total=%v", cur, total)
	}

	// Target lost at 5s.
	m.ApplyActiveTrack(vehicle.ActiveTrackEvent{State: vehicle.ActiveTrackFindingTrackedTarget, At: base.Add(5 * time.Second)})
	cur, total = m.FollowTimes()
	if cur != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after loss expected persisted 5s; got current=%v total=%v", cur, total)
	}

	// Idle ticks change nothing.
	m.OnTick(base.Add(7 * time.Second))
	cur2, total2 := m.FollowTimes()
	if cur2 != cur || total2 != total {
		t.Fatalf("idle tick should not change durations: before %v/%v after %v/%v", cur, total, cur2, total2)
	}

	// Second follow at 10s lasting 3s.
	follow(base.Add(10 * time.Second))
	m.OnTick(base.Add(13 * time.Second))
	cur, total = m.FollowTimes()
	if cur != 3*time.Second || total != 8*time.Second {
		t.Fatalf("second follow expected 3s/8s, got %v/%v", cur, total)
	}

	// Reset ends the follow but keeps the total.
	m.Reset(base.Add(13 * time.Second))
	cur, total = m.FollowTimes()
	if cur != 3*time.Second || total != 8*time.Second {
		t.Fatalf("reset expected 3s/8s got %v/%v", cur, total)
	}
	if _, ok := m.ActiveTrack(); ok {
		t.Fatalf("reset should drop the last report")
	}
}

func TestMissionModel_Status(t *testing.T) {
	m := NewMissionModel()
	if got := m.Status(); got != "ActiveTrack: Ready to Start" {
		t.Fatalf("idle status %q", got)
	}
	m.ApplyActiveTrack(vehicle.ActiveTrackEvent{
		State:  vehicle.ActiveTrackCannotConfirm,
		Target: vehicle.TargetCannotConfirm,
		Reason: vehicle.ReasonUnstableTarget,
	})
	want := "ActiveTrack: Cannot Confirm | Target: Cannot Confirm (Unstable Target)"
	if got := m.Status(); got != want {
		t.Fatalf("status %q want %q", got, want)
	}
	m.ApplyTapFly(vehicle.TapFlyEvent{State: vehicle.TapFlyExecuting, Progress: 0.25, Bypass: vehicle.BypassLeft})
	want += " · TapFly: Executing 25% | Bypass: Left"
	if got := m.Status(); got != want {
		t.Fatalf("status %q want %q", got, want)
	}
	var nilModel *MissionModel
	if nilModel.Status() == "" {
		t.Fatalf("nil model should still describe state")
	}
}
