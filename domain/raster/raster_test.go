package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 3), G: uint8(y * 5), B: uint8(x + y), A: uint8(100 + x%100)})
		}
	}
	return img
}

func TestFromImage_LosslessRoundTrip(t *testing.T) {
	src := gradient(40, 30)
	r := FromImage(src)
	require.NotNil(t, r)
	back, ok := ToImage(r).(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, src.Pix, back.Pix)
	assert.Equal(t, src.Bounds(), back.Bounds())
}

func TestFromImage_RebasesOrigin(t *testing.T) {
	src := gradient(40, 30).SubImage(image.Rect(10, 5, 20, 15))
	r := FromImage(src)
	assert.Equal(t, image.Rect(0, 0, 10, 10), r.Bounds())
	assert.Equal(t, src.At(10, 5), r.At(0, 0))
}

func TestGrayFromImage_DropsColour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})
	g := GrayFromImage(src)
	assert.Equal(t, uint8(255), g.GrayAt(0, 0).Y)
	assert.Equal(t, Luma(color.RGBA{R: 255, A: 255}), g.GrayAt(1, 0).Y)
	assert.Less(t, g.GrayAt(1, 0).Y, uint8(255))
}

func TestOpaqueFromImage_StripsAlpha(t *testing.T) {
	src := gradient(8, 8)
	o := OpaqueFromImage(src)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := o.RGBAAt(x, y)
			want := src.NRGBAAt(x, y)
			assert.Equal(t, uint8(0xff), px.A)
			assert.Equal(t, want.R, px.R)
			assert.Equal(t, want.G, px.G)
			assert.Equal(t, want.B, px.B)
		}
	}
}

func TestNilInputs(t *testing.T) {
	assert.Nil(t, FromImage(nil))
	assert.Nil(t, GrayFromImage(nil))
	assert.Nil(t, OpaqueFromImage(nil))
	assert.Nil(t, ToImage(nil))
}

func TestCrop(t *testing.T) {
	src := gradient(100, 100)

	dst, ok := Crop(src, image.Rect(-5, 0, 5, 10))
	assert.False(t, ok)
	assert.Nil(t, dst)

	dst, ok = Crop(src, image.Rect(95, 95, 105, 105))
	assert.False(t, ok)
	assert.Nil(t, dst)

	dst, ok = Crop(src, image.Rect(10, 10, 10, 20))
	assert.False(t, ok, "empty rect")
	assert.Nil(t, dst)

	dst, ok = Crop(src, image.Rect(20, 30, 30, 45))
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 10, 15), dst.Bounds())
	assert.Equal(t, src.NRGBAAt(20, 30), dst.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(29, 44), dst.NRGBAAt(9, 14))

	dst, ok = Crop(src, src.Bounds())
	require.True(t, ok)
	assert.Equal(t, src.Pix, dst.Pix)
}
