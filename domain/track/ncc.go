// Package track re-locates a selected image patch in subsequent frames using
// normalized cross-correlation (NCC) over a bounded search window.
package track

import (
	"image"
	"math"
	"time"
)

// Options configures Locate.
type Options struct {
	Threshold    float64 // minimum NCC score for Found (default 0.7)
	SearchRadius int     // pixels searched around the previous position (default 48)
	Stride       int     // coarse scan stride (default 2)
	Refine       bool    // full-resolution pass around the coarse best when Stride>1
}

// Result is the outcome of one Locate call.
type Result struct {
	Rect  image.Rectangle // matched window in frame coordinates
	Score float64
	Found bool
	Dur   time.Duration
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 || o.Threshold > 1 {
		o.Threshold = 0.7
	}
	if o.SearchRadius <= 0 {
		o.SearchRadius = 48
	}
	if o.Stride <= 0 {
		o.Stride = 2
	}
	return o
}

// Locator finds t in frame near prev. Locate is the pure-Go implementation;
// DefaultLocator picks the backend selected at build time.
type Locator func(frame *image.Gray, t *Template, prev image.Rectangle, opts Options) Result

// Template caches a patch's grayscale values and statistics.
type Template struct {
	patch *image.Gray
	gray  []float64
	W, H  int
	meanT float64
	stdT  float64
}

// NewTemplate prepares tmpl for matching. It returns nil for an empty patch.
func NewTemplate(tmpl *image.Gray) *Template {
	if tmpl == nil {
		return nil
	}
	b := tmpl.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	t := &Template{patch: tmpl, gray: make([]float64, w*h), W: w, H: h}
	var sum, sum2 float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(tmpl.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			t.gray[y*w+x] = v
			sum += v
			sum2 += v * v
		}
	}
	n := float64(w * h)
	t.meanT = sum / n
	if v := (sum2 - sum*sum/n) / n; v > 0 {
		t.stdT = math.Sqrt(v)
	}
	return t
}

// integral holds summed-area tables for O(1) window mean/variance.
type integral struct {
	gray, sum, sumSq []float64
	W, H             int
}

func buildIntegral(frame *image.Gray) *integral {
	b := frame.Bounds()
	W, H := b.Dx(), b.Dy()
	p := &integral{
		gray:  make([]float64, W*H),
		sum:   make([]float64, W*H),
		sumSq: make([]float64, W*H),
		W:     W,
		H:     H,
	}
	for y := 0; y < H; y++ {
		var row, row2 float64
		for x := 0; x < W; x++ {
			v := float64(frame.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			off := y*W + x
			p.gray[off] = v
			row += v
			row2 += v * v
			if y == 0 {
				p.sum[off] = row
				p.sumSq[off] = row2
				continue
			}
			p.sum[off] = p.sum[off-W] + row
			p.sumSq[off] = p.sumSq[off-W] + row2
		}
	}
	return p
}

// window returns the inclusive sum over [x0..x1] x [y0..y1].
func window(I []float64, W, x0, y0, x1, y1 int) float64 {
	at := func(x, y int) float64 {
		if x < 0 || y < 0 {
			return 0
		}
		return I[y*W+x]
	}
	return at(x1, y1) - at(x0-1, y1) - at(x1, y0-1) + at(x0-1, y0-1)
}

func (p *integral) score(t *Template, x, y int) float64 {
	w, h := t.W, t.H
	n := float64(w * h)
	sumF := window(p.sum, p.W, x, y, x+w-1, y+h-1)
	sumF2 := window(p.sumSq, p.W, x, y, x+w-1, y+h-1)
	meanF := sumF / n
	varF := (sumF2 - sumF*sumF/n) / n
	if t.stdT <= 1e-9 || varF <= 1e-9 {
		// Flat patch: match only an equally flat window of the same level.
		if t.stdT <= 1e-9 && varF <= 1e-9 && math.Abs(meanF-t.meanT) < 0.5 {
			return 1
		}
		return -1
	}
	var sumFT float64
	for ty := 0; ty < h; ty++ {
		row := (y+ty)*p.W + x
		trow := ty * w
		for tx := 0; tx < w; tx++ {
			sumFT += p.gray[row+tx] * t.gray[trow+tx]
		}
	}
	return (sumFT - n*meanF*t.meanT) / (n * math.Sqrt(varF) * t.stdT)
}

// Locate searches frame for t around prev (the template's last known
// position). The search window is clipped to the frame.
func Locate(frame *image.Gray, t *Template, prev image.Rectangle, opts Options) Result {
	start := time.Now()
	res := Result{Score: -1}
	if frame == nil || t == nil {
		return res
	}
	opts = opts.withDefaults()
	fb := frame.Bounds()
	W, H := fb.Dx(), fb.Dy()
	if W < t.W || H < t.H {
		return res
	}
	minX, minY, maxX, maxY := searchWindow(fb, t, prev, opts.SearchRadius)

	pre := buildIntegral(frame)
	bestX, bestY, best := minX, minY, -2.0
	scan := func(x0, x1, y0, y1, stride int) {
		for y := y0; y <= y1; y += stride {
			for x := x0; x <= x1; x += stride {
				if s := pre.score(t, x, y); s > best {
					best, bestX, bestY = s, x, y
				}
			}
		}
	}
	scan(minX, maxX, minY, maxY, opts.Stride)
	if opts.Refine && opts.Stride > 1 {
		scan(
			clamp(bestX-opts.Stride, minX, maxX), clamp(bestX+opts.Stride, minX, maxX),
			clamp(bestY-opts.Stride, minY, maxY), clamp(bestY+opts.Stride, minY, maxY),
			1,
		)
	}
	res.Rect = image.Rect(bestX, bestY, bestX+t.W, bestY+t.H).Add(fb.Min)
	res.Score = best
	res.Found = best >= opts.Threshold
	res.Dur = time.Since(start)
	return res
}

// searchWindow returns the range of candidate top-left positions, relative
// to fb.Min, within radius of prev and inside the frame.
func searchWindow(fb image.Rectangle, t *Template, prev image.Rectangle, radius int) (minX, minY, maxX, maxY int) {
	W, H := fb.Dx(), fb.Dy()
	px, py := prev.Min.X-fb.Min.X, prev.Min.Y-fb.Min.Y
	minX = clamp(px-radius, 0, W-t.W)
	maxX = clamp(px+radius, 0, W-t.W)
	minY = clamp(py-radius, 0, H-t.H)
	maxY = clamp(py+radius, 0, H-t.H)
	return minX, minY, maxX, maxY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
