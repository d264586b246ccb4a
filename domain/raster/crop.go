package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Crop copies rect out of src. It returns ok=false, and a nil destination,
// when rect is empty or extends past src.Bounds().
func Crop(src image.Image, rect image.Rectangle) (*image.NRGBA, bool) {
	if src == nil || rect.Empty() {
		return nil, false
	}
	if !rect.In(src.Bounds()) {
		return nil, false
	}
	return imaging.Crop(src, rect), true
}
