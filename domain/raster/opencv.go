//go:build opencv

package raster

import (
	"image"

	"gocv.io/x/gocv"
)

// OpenCV-backed variants of the conversions, enabled with -tags opencv.
// Callers own the returned Mats and must Close them.

// MatFromImage converts img to a 4-channel RGBA Mat.
func MatFromImage(img image.Image) (gocv.Mat, error) {
	return gocv.ImageToMatRGBA(img)
}

// GrayMatFromImage converts img to a single-channel Mat.
func GrayMatFromImage(img image.Image) (gocv.Mat, error) {
	return gocv.ImageGrayToMatGray(GrayFromImage(img))
}

// Mat3FromImage converts img to a 3-channel Mat without alpha.
func Mat3FromImage(img image.Image) (gocv.Mat, error) {
	return gocv.ImageToMatRGB(img)
}

// ImageFromMat converts a Mat back into an image.Image.
func ImageFromMat(m gocv.Mat) (image.Image, error) {
	return m.ToImage()
}

// CropMat copies rect out of src into a new Mat. ok is false when rect is
// empty or not inside the source.
func CropMat(src gocv.Mat, rect image.Rectangle) (gocv.Mat, bool) {
	bounds := image.Rect(0, 0, src.Cols(), src.Rows())
	if src.Empty() || rect.Empty() || !rect.In(bounds) {
		return gocv.NewMat(), false
	}
	region := src.Region(rect)
	defer region.Close()
	return region.Clone(), true
}
