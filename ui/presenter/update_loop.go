package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// Order matters: mission reports are applied before the status is read and
// before the frame is composed, so one tick shows a consistent picture.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Tracking *TrackingPresenter
	Status   *StatusPresenter
	Frame    *FramePresenter
	Schedule func()
}

func NewLoop(tracking *TrackingPresenter, status *StatusPresenter, frame *FramePresenter, schedule func()) *Loop {
	return &Loop{Tracking: tracking, Status: status, Frame: frame, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Tracking != nil {
		l.Tracking.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Frame != nil {
		l.Frame.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
