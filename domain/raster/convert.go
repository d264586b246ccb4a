// Package raster converts between image.Image values and the pixel buffers
// used for tracking, and crops them.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// FromImage returns a lossless NRGBA copy of img, rebased to (0,0).
func FromImage(img image.Image) *image.NRGBA {
	if img == nil {
		return nil
	}
	return imaging.Clone(img)
}

// GrayFromImage returns a single-channel luminance copy. Colour and alpha are
// dropped.
func GrayFromImage(img image.Image) *image.Gray {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// OpaqueFromImage returns an RGBA copy with alpha forced to opaque. Colour
// channels keep their straight (non-premultiplied) values.
func OpaqueFromImage(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	src := imaging.Clone(img)
	dst := image.NewRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i+0] = src.Pix[i+0]
		dst.Pix[i+1] = src.Pix[i+1]
		dst.Pix[i+2] = src.Pix[i+2]
		dst.Pix[i+3] = 0xff
	}
	return dst
}

// ToImage exposes a raster as an image.Image. Gray and opaque rasters are
// returned as-is; NRGBA rasters are returned as a copy so callers cannot alias
// tracker buffers.
func ToImage(r image.Image) image.Image {
	switch v := r.(type) {
	case nil:
		return nil
	case *image.NRGBA:
		return imaging.Clone(v)
	default:
		return v
	}
}

// Luma returns the 8-bit luminance of c, matching GrayFromImage.
func Luma(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
