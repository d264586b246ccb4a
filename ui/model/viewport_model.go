package model

import "github.com/soocke/streamtrack-go/domain/geometry"

// ViewportModel holds the current size of the video surface. It satisfies
// geometry.BoundsSource so mappers always see the live size. UI thread only.
type ViewportModel struct {
	w, h    int
	version uint64
}

// NewViewportModel returns a viewport of w x h pixels.
func NewViewportModel(w, h int) *ViewportModel {
	m := &ViewportModel{}
	m.SetSize(w, h)
	return m
}

// SetSize resizes the viewport. Non-positive sizes are ignored.
func (m *ViewportModel) SetSize(w, h int) {
	if m == nil || w <= 0 || h <= 0 || (w == m.w && h == m.h) {
		return
	}
	m.w, m.h = w, h
	m.version++
}

// Size returns the viewport size in pixels.
func (m *ViewportModel) Size() (w, h int) {
	if m == nil {
		return 0, 0
	}
	return m.w, m.h
}

// Version increments on every effective resize.
func (m *ViewportModel) Version() uint64 {
	if m == nil {
		return 0
	}
	return m.version
}

// Bounds implements geometry.BoundsSource.
func (m *ViewportModel) Bounds() geometry.ViewBounds {
	w, h := m.Size()
	return geometry.ViewBounds{W: float64(w), H: float64(h)}
}
