package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/soocke/streamtrack-go/domain/vehicle"
)

// MissionModel keeps the latest mission reports and how long the aircraft has
// been following a target: the current follow and the accumulated total.
// It is decoupled from the UI; presenters feed events and poll the values.
// Not synchronized: events are applied on the UI thread tick.
type MissionModel struct {
	track    vehicle.ActiveTrackEvent
	hasTrack bool
	fly      vehicle.TapFlyEvent
	hasFly   bool

	following   bool
	followStart time.Time
	lastFollow  time.Duration
	accumulated time.Duration
}

// NewMissionModel returns a pointer to a ready-to-use MissionModel.
func NewMissionModel() *MissionModel { return &MissionModel{} }

// ApplyActiveTrack records an ActiveTrack update.
func (m *MissionModel) ApplyActiveTrack(ev vehicle.ActiveTrackEvent) {
	if m == nil {
		return
	}
	m.track, m.hasTrack = ev, true
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	m.OnTick(at)
}

// ApplyTapFly records a TapFly update.
func (m *MissionModel) ApplyTapFly(ev vehicle.TapFlyEvent) {
	if m == nil {
		return
	}
	m.fly, m.hasFly = ev, true
}

// ActiveTrack returns the last ActiveTrack update.
func (m *MissionModel) ActiveTrack() (vehicle.ActiveTrackEvent, bool) {
	if m == nil {
		return vehicle.ActiveTrackEvent{}, false
	}
	return m.track, m.hasTrack
}

// TapFly returns the last TapFly update.
func (m *MissionModel) TapFly() (vehicle.TapFlyEvent, bool) {
	if m == nil {
		return vehicle.TapFlyEvent{}, false
	}
	return m.fly, m.hasFly
}

// Reset forgets the mission reports but keeps the accumulated follow time.
func (m *MissionModel) Reset(now time.Time) {
	if m == nil {
		return
	}
	m.hasTrack, m.hasFly = false, false
	m.track, m.fly = vehicle.ActiveTrackEvent{}, vehicle.TapFlyEvent{}
	m.OnTick(now)
}

// OnTick advances the follow timers to now.
func (m *MissionModel) OnTick(now time.Time) {
	if m == nil {
		return
	}
	following := m.hasTrack && m.track.State.Tracking()
	if following {
		if !m.following { // transition off -> on
			m.following = true
			m.followStart = now
			m.lastFollow = 0
		}
		m.lastFollow = now.Sub(m.followStart)
	} else if m.following { // transition on -> off
		m.lastFollow = now.Sub(m.followStart)
		m.accumulated += m.lastFollow
		m.following = false
	}
}

// FollowTimes returns the current (or last) follow duration and the total
// including an ongoing follow.
func (m *MissionModel) FollowTimes() (current, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	current = m.lastFollow
	total = m.accumulated
	if m.following {
		total += current
	}
	return
}

// Status is the one-line mission summary shown in the status label.
func (m *MissionModel) Status() string {
	if m == nil || (!m.hasTrack && !m.hasFly) {
		return "ActiveTrack: " + vehicle.ActiveTrackReadyToStart.String()
	}
	var parts []string
	if m.hasTrack {
		s := "ActiveTrack: " + m.track.State.String()
		if m.track.Target != vehicle.TargetUnknown {
			s += " | Target: " + m.track.Target.String()
		}
		if m.track.Target == vehicle.TargetCannotConfirm || m.track.State == vehicle.ActiveTrackCannotConfirm {
			s += " (" + m.track.Reason.String() + ")"
		}
		parts = append(parts, s)
	}
	if m.hasFly {
		s := "TapFly: " + m.fly.State.String()
		if m.fly.State == vehicle.TapFlyExecuting {
			s += fmt.Sprintf(" %d%%", int(m.fly.Progress*100+0.5))
		}
		if m.fly.Bypass != vehicle.BypassNone {
			s += " | Bypass: " + m.fly.Bypass.String()
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " · ")
}
