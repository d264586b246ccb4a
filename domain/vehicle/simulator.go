package vehicle

import (
	"image"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/soocke/streamtrack-go/domain/geometry"
	"github.com/soocke/streamtrack-go/domain/raster"
	"github.com/soocke/streamtrack-go/domain/stream"
	"github.com/soocke/streamtrack-go/domain/track"
)

const (
	// Consecutive misses before the simulator reports the target as lost.
	findingAfterMisses = 3
	// Consecutive misses before the mission gives up.
	cannotConfirmAfterMisses = 30
	// Ticks for a TapFly leg to complete.
	tapFlySteps = 40
)

// SimulatorOptions configures a Simulator.
type SimulatorOptions struct {
	Tick  time.Duration
	Track track.Options
	// Locator re-finds the target in each frame. Defaults to
	// track.DefaultLocator().
	Locator track.Locator
}

// Simulator is an in-process stand-in for an aircraft: it exposes component
// handles and runs ActiveTrack/TapFly missions against the video stream,
// re-locating the selected patch in each new frame.
type Simulator struct {
	logger    *slog.Logger
	source    stream.FrameSource
	opts      SimulatorOptions
	connected atomic.Bool
	closed    atomic.Bool
	events    chan any

	// loop-owned state
	observers []MissionObserver
	at        activeTrack
	tf        tapFly
}

type activeTrack struct {
	session uuid.UUID
	state   ActiveTrackState
	tmpl    *track.Template
	rect    image.Rectangle
	lastSeq uint64
	misses  int
}

type tapFly struct {
	session uuid.UUID
	state   TapFlyState
	point   geometry.StreamPoint
	step    int
}

type (
	evtAddObserver struct{ o MissionObserver }
	evtStartTrack  struct{ rect geometry.StreamRect }
	evtStopTrack   struct{}
	evtTapFly      struct{ p geometry.StreamPoint }
)

// NewSimulator starts the mission loop. Close stops it.
func NewSimulator(source stream.FrameSource, opts SimulatorOptions, logger *slog.Logger) *Simulator {
	if opts.Tick <= 0 {
		opts.Tick = 33 * time.Millisecond
	}
	if opts.Locator == nil {
		opts.Locator = track.DefaultLocator()
	}
	s := &Simulator{
		logger: logger,
		source: source,
		opts:   opts,
		events: make(chan any, 32),
		at:     activeTrack{state: ActiveTrackReadyToStart},
		tf:     tapFly{state: TapFlyReadyToExecute},
	}
	s.connected.Store(true)
	go func() {
		defer func() {
			if r := recover(); r != nil && logger != nil {
				logger.Error("simulator panic", "error", r, "stack", string(debug.Stack()))
			}
		}()
		s.loop()
	}()
	return s
}

// SetConnected toggles whether the simulated product appears connected.
func (s *Simulator) SetConnected(b bool) { s.connected.Store(b) }

// Source exposes the simulator as an injectable ProductSource.
func (s *Simulator) Source() ProductSource {
	return func() Product {
		if !s.connected.Load() {
			return nil
		}
		return s
	}
}

// AddObserver registers o for mission updates.
func (s *Simulator) AddObserver(o MissionObserver) {
	if o != nil {
		s.send(evtAddObserver{o: o})
	}
}

// StartActiveTrack begins tracking rect (stream space).
func (s *Simulator) StartActiveTrack(rect geometry.StreamRect) error {
	if !s.connected.Load() {
		return errors.Wrap(ErrAbsentComponent, "active track")
	}
	if rect.Empty() {
		return errors.Errorf("active track: empty target rect %v", rect)
	}
	s.send(evtStartTrack{rect: rect})
	return nil
}

// StopActiveTrack abandons the current ActiveTrack mission.
func (s *Simulator) StopActiveTrack() { s.send(evtStopTrack{}) }

// TapFlyTo flies towards p (stream space).
func (s *Simulator) TapFlyTo(p geometry.StreamPoint) error {
	if !s.connected.Load() {
		return errors.Wrap(ErrAbsentComponent, "tap fly")
	}
	if !p.Valid() {
		return errors.New("tap fly: invalid target point")
	}
	s.send(evtTapFly{p: p})
	return nil
}

// Close stops the mission loop. Further commands are dropped.
func (s *Simulator) Close() {
	if s.closed.CompareAndSwap(false, true) {
		close(s.events)
	}
}

func (s *Simulator) send(ev any) {
	if s.closed.Load() {
		return
	}
	defer func() { _ = recover() }() // Close raced with send
	s.events <- ev
}

func (s *Simulator) loop() {
	ticker := time.NewTicker(s.opts.Tick)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.handle(ev)
		case <-ticker.C:
			s.tickTrack()
			s.tickTapFly()
		}
	}
}

func (s *Simulator) handle(ev any) {
	switch e := ev.(type) {
	case evtAddObserver:
		s.observers = append(s.observers, e.o)
	case evtStartTrack:
		s.startTrack(e.rect)
	case evtStopTrack:
		if s.at.session != uuid.Nil {
			s.at = activeTrack{session: s.at.session, state: ActiveTrackReadyToStart}
			s.emitTrack(TargetUnknown, ReasonNone, 0)
			s.at.session = uuid.Nil
		}
	case evtTapFly:
		s.tf = tapFly{session: uuid.New(), state: TapFlyExecuting, point: e.p}
		s.emitTapFly()
	}
}

func (s *Simulator) startTrack(r geometry.StreamRect) {
	s.at = activeTrack{session: uuid.New(), state: ActiveTrackWaitingForConfirmation}
	snap := s.source.LatestFrame()
	if snap.Image == nil {
		s.at.state = ActiveTrackCannotStart
		s.emitTrack(TargetUnknown, ReasonUnknown, 0)
		return
	}
	rect := r.Image().Intersect(snap.Image.Bounds())
	patch, ok := raster.Crop(snap.Image, rect)
	if !ok {
		s.at.state = ActiveTrackCannotConfirm
		s.emitTrack(TargetCannotConfirm, ReasonTargetTooFar, 0)
		return
	}
	s.at.tmpl = track.NewTemplate(raster.GrayFromImage(patch))
	s.at.rect = rect
	s.at.lastSeq = snap.Sequence
	if s.logger != nil {
		s.logger.Info("active track started", "session", s.at.session.String(), "rect", rect.String())
	}
	s.emitTrack(TargetWaitingForConfirmation, ReasonNone, 0)
}

func (s *Simulator) tickTrack() {
	if s.at.tmpl == nil {
		return
	}
	snap := s.source.LatestFrame()
	if snap.Image == nil || snap.Sequence == s.at.lastSeq {
		return
	}
	s.at.lastSeq = snap.Sequence
	res := s.opts.Locator(raster.GrayFromImage(snap.Image), s.at.tmpl, s.at.rect, s.opts.Track)
	if res.Found {
		s.at.rect = res.Rect
		s.at.misses = 0
		s.at.state = ActiveTrackAircraftFollowing
		target := TargetTrackingHighConfidence
		if res.Score < (1+s.threshold())/2 {
			target = TargetTrackingLowConfidence
		}
		s.emitTrack(target, ReasonNone, res.Score)
		return
	}
	s.at.misses++
	switch {
	case s.at.misses >= cannotConfirmAfterMisses:
		s.at.state = ActiveTrackCannotConfirm
		s.emitTrack(TargetCannotConfirm, ReasonUnstableTarget, res.Score)
		if s.logger != nil {
			s.logger.Info("active track lost", "session", s.at.session.String())
		}
		s.at = activeTrack{state: ActiveTrackReadyToStart}
	case s.at.misses >= findingAfterMisses:
		s.at.state = ActiveTrackFindingTrackedTarget
		s.emitTrack(TargetWaitingForConfirmation, ReasonNone, res.Score)
	}
}

func (s *Simulator) threshold() float64 {
	if t := s.opts.Track.Threshold; t > 0 && t <= 1 {
		return t
	}
	return 0.7
}

func (s *Simulator) tickTapFly() {
	if s.tf.state != TapFlyExecuting {
		return
	}
	s.tf.step++
	if s.tf.step >= tapFlySteps {
		s.tf.state = TapFlyReadyToExecute
	}
	s.emitTapFly()
}

func (s *Simulator) emitTrack(target TargetState, reason CannotConfirmReason, score float64) {
	ev := ActiveTrackEvent{
		Session: s.at.session,
		State:   s.at.state,
		Target:  target,
		Reason:  reason,
		Rect:    geometry.StreamRectFromImage(s.at.rect),
		Score:   score,
		At:      time.Now(),
	}
	for _, o := range s.observers {
		o.OnActiveTrack(ev)
	}
}

func (s *Simulator) emitTapFly() {
	ev := TapFlyEvent{
		Session:  s.tf.session,
		State:    s.tf.state,
		Bypass:   BypassNone,
		Point:    s.tf.point,
		Progress: float64(s.tf.step) / tapFlySteps,
		At:       time.Now(),
	}
	for _, o := range s.observers {
		o.OnTapFly(ev)
	}
}

// Product implementation.

func (s *Simulator) Model() string                      { return "Simulator" }
func (s *Simulator) Camera() Camera                     { return simComponent("Simulated Camera") }
func (s *Simulator) Gimbal() Gimbal                     { return simComponent("Simulated Gimbal") }
func (s *Simulator) FlightController() FlightController { return simComponent("Simulated Flight Controller") }

type simComponent string

func (c simComponent) DisplayName() string                  { return string(c) }
func (c simComponent) Attitude() (pitch, roll, yaw float64) { return 0, 0, 0 }
func (c simComponent) IsFlying() bool                       { return true }

var (
	_ Product   = (*Simulator)(nil)
	_ Commander = (*Simulator)(nil)
)
