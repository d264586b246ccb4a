package images

import (
	"image"

	"github.com/pkg/errors"
)

// ExtractROI copies the region around target (frame coordinates) grown by
// margin on every side and clamped to the frame. It fails when nothing of the
// region lies inside the frame. The returned rectangle is the clamped region.
func ExtractROI(frame *image.RGBA, target image.Rectangle, margin int) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	target = target.Canon()
	if target.Empty() {
		return nil, image.Rectangle{}, errors.Errorf("empty target %v", target)
	}
	if margin < 0 {
		margin = 0
	}
	roi := target.Inset(-margin).Intersect(frame.Bounds())
	if roi.Empty() {
		return nil, image.Rectangle{}, errors.Errorf("target %v outside frame %v", target, frame.Bounds())
	}
	out := image.NewRGBA(image.Rect(0, 0, roi.Dx(), roi.Dy()))
	for y := 0; y < roi.Dy(); y++ {
		srcOff := frame.PixOffset(roi.Min.X, roi.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+roi.Dx()*4], frame.Pix[srcOff:srcOff+roi.Dx()*4])
	}
	return out, roi, nil
}
