//go:build opencv

package track

import (
	"image"
	"math"
	"time"

	"gocv.io/x/gocv"

	"github.com/soocke/streamtrack-go/domain/raster"
)

// DefaultLocator returns the OpenCV-backed search.
func DefaultLocator() Locator { return LocateOpenCV }

// LocateOpenCV has the semantics of Locate but scores the search window with
// cv::matchTemplate (TM_CCOEFF_NORMED). It scans every position; Stride and
// Refine are ignored.
func LocateOpenCV(frame *image.Gray, t *Template, prev image.Rectangle, opts Options) Result {
	start := time.Now()
	res := Result{Score: -1}
	if frame == nil || t == nil || t.patch == nil {
		return res
	}
	opts = opts.withDefaults()
	fb := frame.Bounds()
	if fb.Dx() < t.W || fb.Dy() < t.H {
		return res
	}
	minX, minY, maxX, maxY := searchWindow(fb, t, prev, opts.SearchRadius)
	search := image.Rect(minX, minY, maxX+t.W, maxY+t.H)

	frameMat, err := raster.GrayMatFromImage(frame)
	if err != nil {
		return res
	}
	defer frameMat.Close()
	region, ok := raster.CropMat(frameMat, search)
	defer region.Close()
	if !ok {
		return res
	}
	tmplMat, err := raster.GrayMatFromImage(t.patch)
	if err != nil {
		return res
	}
	defer tmplMat.Close()

	scores := gocv.NewMat()
	defer scores.Close()
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.MatchTemplate(region, tmplMat, &scores, gocv.TmCcoeffNormed, mask)
	_, maxVal, _, maxLoc := gocv.MinMaxLoc(scores)

	best := float64(maxVal)
	if math.IsNaN(best) || math.IsInf(best, 0) {
		best = -1 // flat template or window
	}
	x, y := minX+maxLoc.X, minY+maxLoc.Y
	res.Rect = image.Rect(x, y, x+t.W, y+t.H).Add(fb.Min)
	res.Score = best
	res.Found = best >= opts.Threshold
	res.Dur = time.Since(start)
	return res
}
