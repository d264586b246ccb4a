package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestLetterbox_PadsShortAxis(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}
	// 1280x720 into 800x600: scale 0.625, vertical offset 75.
	out := Letterbox(solid(1280, 720, red), 800, 600, black)
	require.Equal(t, image.Rect(0, 0, 800, 600), out.Bounds())
	assert.Equal(t, black, out.RGBAAt(400, 10))
	assert.Equal(t, black, out.RGBAAt(400, 590))
	assert.Equal(t, red, out.RGBAAt(400, 300))
	assert.Equal(t, red, out.RGBAAt(0, 80))
	assert.Equal(t, red, out.RGBAAt(799, 520))
}

func TestLetterbox_Pillarbox(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	black := color.RGBA{A: 255}
	// 100x100 into 300x100: bars left and right.
	out := Letterbox(solid(100, 100, green), 300, 100, black)
	assert.Equal(t, black, out.RGBAAt(50, 50))
	assert.Equal(t, green, out.RGBAAt(150, 50))
	assert.Equal(t, black, out.RGBAAt(250, 50))
}

func TestLetterbox_Degenerate(t *testing.T) {
	bg := color.RGBA{B: 9, A: 255}
	out := Letterbox(nil, 0, -1, bg)
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())
	assert.Equal(t, bg, out.RGBAAt(0, 0))

	out = Letterbox(image.NewRGBA(image.Rectangle{}), 10, 10, bg)
	assert.Equal(t, bg, out.RGBAAt(5, 5))
}

func TestScaleToFit(t *testing.T) {
	src := solid(40, 20, color.RGBA{R: 1, A: 255})
	up := ScaleToFit(src, 100, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), up.Bounds())
	down := ScaleToFit(src, 20, 20)
	assert.Equal(t, image.Rect(0, 0, 20, 10), down.Bounds())
	assert.Same(t, src, ScaleToFit(src, 40, 20).(*image.RGBA))
	assert.Nil(t, ScaleToFit(nil, 1, 1))
}

func TestEncodePNG(t *testing.T) {
	assert.Nil(t, EncodePNG(nil))
	data := EncodePNG(solid(3, 2, color.RGBA{R: 7, A: 255}))
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}
