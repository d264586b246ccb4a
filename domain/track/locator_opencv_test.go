//go:build opencv

package track

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateOpenCV_AgreesWithLocate(t *testing.T) {
	base := shiftedFrame(160, 120, 0, 0)
	prev := image.Rect(30, 20, 50, 40)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))
	require.NotNil(t, tmpl)

	next := shiftedFrame(160, 120, 5, 3)
	want := Locate(next, tmpl, prev, Options{Stride: 1})
	got := LocateOpenCV(next, tmpl, prev, Options{})
	assert.True(t, got.Found)
	assert.Equal(t, want.Rect, got.Rect)
	assert.InDelta(t, want.Score, got.Score, 1e-3)
}

func TestLocateOpenCV_SearchWindowIsBounded(t *testing.T) {
	base := shiftedFrame(200, 120, 0, 0)
	prev := image.Rect(10, 10, 30, 30)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))

	next := shiftedFrame(200, 120, 100, 0)
	res := LocateOpenCV(next, tmpl, prev, Options{SearchRadius: 20, Threshold: 0.95})
	assert.False(t, res.Found)
	assert.LessOrEqual(t, res.Rect.Min.X, 30)
}

func TestLocateOpenCV_IsDefault(t *testing.T) {
	base := shiftedFrame(64, 64, 0, 0)
	prev := image.Rect(8, 8, 24, 24)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))
	res := DefaultLocator()(base, tmpl, prev, Options{})
	assert.True(t, res.Found)
	assert.Equal(t, prev, res.Rect)
}

func TestLocateOpenCV_Degenerate(t *testing.T) {
	assert.False(t, LocateOpenCV(nil, nil, image.Rectangle{}, Options{}).Found)
	small := shiftedFrame(4, 4, 0, 0)
	tmpl := NewTemplate(shiftedFrame(8, 8, 0, 0))
	assert.False(t, LocateOpenCV(small, tmpl, image.Rect(0, 0, 8, 8), Options{}).Found)
}
