package images

import (
	"image"
	"image/color"
	"testing"
)

func TestExtractROI_AddsMargin(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	frame.SetRGBA(40, 40, color.RGBA{R: 255, A: 255})
	roi, rect, err := ExtractROI(frame, image.Rect(40, 40, 60, 60), 10)
	if err != nil || roi == nil {
		t.Fatalf("expected ROI, got err=%v", err)
	}
	if rect != image.Rect(30, 30, 70, 70) {
		t.Fatalf("unexpected rect %v", rect)
	}
	if got := roi.RGBAAt(10, 10); got.R != 255 {
		t.Fatalf("pixel not copied: %v", got)
	}
}

func TestExtractROI_ClampsNearEdge(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 20, 20))
	roi, rect, err := ExtractROI(frame, image.Rect(-4, 2, 6, 12), 3)
	if err != nil || roi == nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect.Min.X != 0 || rect.Min.Y != 0 {
		t.Fatalf("expected clamp to 0,0 got %v", rect.Min)
	}
	if roi.Bounds().Dx() != rect.Dx() || roi.Bounds().Dy() != rect.Dy() {
		t.Fatalf("roi %v does not match rect %v", roi.Bounds(), rect)
	}
}

func TestExtractROI_Rejects(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 30, 30))
	if _, _, err := ExtractROI(nil, image.Rect(0, 0, 5, 5), 0); err == nil {
		t.Fatalf("nil frame accepted")
	}
	if _, _, err := ExtractROI(frame, image.Rectangle{}, 4); err == nil {
		t.Fatalf("empty target accepted")
	}
	if _, _, err := ExtractROI(frame, image.Rect(50, 50, 60, 60), 2); err == nil {
		t.Fatalf("target outside frame accepted")
	}
}
