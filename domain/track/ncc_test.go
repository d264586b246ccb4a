package track

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pattern is a position hash: texture with no translational self-similarity.
func pattern(x, y int) uint8 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return uint8(h)
}

// shiftedFrame renders the test pattern translated by (dx, dy).
func shiftedFrame(w, h, dx, dy int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: pattern(x-dx, y-dy)})
		}
	}
	return img
}

func TestLocate_FindsShiftedPatch(t *testing.T) {
	base := shiftedFrame(160, 120, 0, 0)
	prev := image.Rect(30, 20, 50, 40)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))
	require.NotNil(t, tmpl)

	next := shiftedFrame(160, 120, 5, 3)
	res := Locate(next, tmpl, prev, Options{Stride: 1})
	assert.True(t, res.Found)
	assert.Equal(t, image.Rect(35, 23, 55, 43), res.Rect)
	assert.InDelta(t, 1.0, res.Score, 1e-6)
}

func TestLocate_CoarseStrideWithRefine(t *testing.T) {
	base := shiftedFrame(160, 120, 0, 0)
	prev := image.Rect(30, 20, 50, 40)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))

	next := shiftedFrame(160, 120, 4, 2)
	res := Locate(next, tmpl, prev, Options{Stride: 2, Refine: true})
	assert.True(t, res.Found)
	assert.Equal(t, image.Rect(34, 22, 54, 42), res.Rect)
}

func TestLocate_SearchWindowIsBounded(t *testing.T) {
	base := shiftedFrame(200, 120, 0, 0)
	prev := image.Rect(10, 10, 30, 30)
	tmpl := NewTemplate(base.SubImage(prev).(*image.Gray))

	// Patch moved 100px right, beyond a 20px radius.
	next := shiftedFrame(200, 120, 100, 0)
	res := Locate(next, tmpl, prev, Options{Stride: 1, SearchRadius: 20, Threshold: 0.95})
	assert.False(t, res.Found)
	assert.LessOrEqual(t, res.Rect.Min.X, 30)
}

func TestLocate_FlatTemplate(t *testing.T) {
	frame := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range frame.Pix {
		frame.Pix[i] = 80
	}
	tmpl := NewTemplate(frame.SubImage(image.Rect(0, 0, 8, 8)).(*image.Gray))
	res := Locate(frame, tmpl, image.Rect(10, 10, 18, 18), Options{Stride: 1})
	assert.True(t, res.Found)
	assert.Equal(t, 1.0, res.Score)
}

func TestLocate_Degenerate(t *testing.T) {
	assert.Nil(t, NewTemplate(nil))
	assert.Nil(t, NewTemplate(image.NewGray(image.Rect(0, 0, 0, 5))))

	small := image.NewGray(image.Rect(0, 0, 4, 4))
	tmpl := NewTemplate(shiftedFrame(10, 10, 0, 0))
	res := Locate(small, tmpl, image.Rect(0, 0, 10, 10), Options{})
	assert.False(t, res.Found)
	assert.Equal(t, -1.0, res.Score)
	assert.False(t, Locate(nil, tmpl, image.Rectangle{}, Options{}).Found)
}
