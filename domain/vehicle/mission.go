package vehicle

import (
	"time"

	"github.com/google/uuid"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// ActiveTrackEvent is one ActiveTrack mission update. Rect is in stream space.
type ActiveTrackEvent struct {
	Session uuid.UUID
	State   ActiveTrackState
	Target  TargetState
	Reason  CannotConfirmReason
	Rect    geometry.StreamRect
	Score   float64
	At      time.Time
}

// TapFlyEvent is one TapFly mission update. Point is in stream space.
type TapFlyEvent struct {
	Session  uuid.UUID
	State    TapFlyState
	Bypass   BypassDirection
	Point    geometry.StreamPoint
	Progress float64
	At       time.Time
}

// MissionObserver receives mission updates. Calls arrive on the mission's own
// goroutine; UI consumers must hand them over to the UI thread.
type MissionObserver interface {
	OnActiveTrack(ActiveTrackEvent)
	OnTapFly(TapFlyEvent)
}

// Commander issues tracking commands in stream space.
type Commander interface {
	StartActiveTrack(rect geometry.StreamRect) error
	StopActiveTrack()
	TapFlyTo(p geometry.StreamPoint) error
}
