package model

import (
	"sync/atomic"
)

// StreamModel tracks whether the video stream is enabled. The zero value is disabled and usable.
// Concurrency-safe via atomic Bool because UI callbacks and presenter ticks may race.
type StreamModel struct{ enabled atomic.Bool }

// Enabled reports whether the stream is currently enabled.
func (m *StreamModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *StreamModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}
