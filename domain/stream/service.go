package stream

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"
)

const statsLogInterval = 5 * time.Second

// Service acquires video frames on a background goroutine and exposes the
// newest one. Construct with NewService.
type Service interface {
	FrameSource
	Start()
	Stop()
	Stats() Stats
}

type service struct {
	grab      Grabber
	interval  time.Duration
	logger    *slog.Logger
	running   atomic.Bool
	latest    atomic.Pointer[FrameSnapshot]
	frames    atomic.Uint64
	skipped   atomic.Uint64
	grabNanos atomic.Uint64
	sequence  atomic.Uint64
	done      chan struct{}
}

// NewService returns a stopped service pulling frames from grab every
// interval (minimum 1ms).
func NewService(grab Grabber, interval time.Duration, logger *slog.Logger) Service {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &service{grab: grab, interval: interval, logger: logger}
}

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Running() bool { return s.running.Load() }

func (s *service) Stats() Stats {
	frames := s.frames.Load()
	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(s.grabNanos.Load() / frames)
	}
	snap := s.LatestFrame()
	var age time.Duration
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return Stats{
		Frames:         frames,
		Skipped:        s.skipped.Load(),
		AvgGrab:        avg,
		LastFrame:      snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
	}
}

func (s *service) Start() {
	if s.grab == nil || !s.running.CompareAndSwap(false, true) {
		return
	}
	s.done = make(chan struct{})
	go s.loop(s.done)
}

func (s *service) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.done)
}

func (s *service) loop(done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil && s.logger != nil {
			s.logger.Error("stream loop panic", "error", r, "stack", string(debug.Stack()))
		}
	}()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for {
		s.grabOnce()
		select {
		case <-done:
			return
		case <-logTicker.C:
			s.logStats()
		case <-ticker.C:
		}
	}
}

func (s *service) grabOnce() {
	start := time.Now()
	img, err := s.grab()
	if err != nil || img == nil || img.Bounds().Empty() {
		s.skipped.Add(1)
		if err != nil && s.logger != nil {
			s.logger.Error("stream grab", "error", err)
		}
		return
	}
	s.grabNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.frames.Add(1)
	seq := s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})
}

func (s *service) logStats() {
	if s.logger == nil {
		return
	}
	st := s.Stats()
	s.logger.Debug("stream.stats",
		"frames", st.Frames,
		"skipped", st.Skipped,
		"avg_grab", st.AvgGrab,
		"age", st.LatestFrameAge,
	)
}
