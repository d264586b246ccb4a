package stream

import (
	"image"
	"image/color"
	"math"
	"sync/atomic"
)

// Synthetic returns a Grabber rendering a w x h test scene: a static textured
// background with a bright checkered target orbiting the centre. Each call
// advances the animation by one step.
func Synthetic(w, h int) Grabber {
	if w < 16 {
		w = 16
	}
	if h < 16 {
		h = 16
	}
	bg := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := noise(x/4, y/4)
			bg.SetRGBA(x, y, color.RGBA{R: v / 3, G: v/3 + 20, B: v / 2, A: 0xff})
		}
	}
	var step atomic.Uint64
	return func() (*image.RGBA, error) {
		n := step.Add(1)
		frame := image.NewRGBA(bg.Rect)
		copy(frame.Pix, bg.Pix)
		drawTarget(frame, TargetCenter(w, h, n))
		return frame, nil
	}
}

// SyntheticTargetSize is the side length of the synthetic target.
const SyntheticTargetSize = 32

// TargetCenter returns the synthetic target's centre at animation step n.
func TargetCenter(w, h int, n uint64) image.Point {
	a := float64(n) * 0.02
	rx, ry := float64(w)/4, float64(h)/4
	return image.Pt(w/2+int(math.Round(rx*math.Cos(a))), h/2+int(math.Round(ry*math.Sin(a))))
}

func drawTarget(dst *image.RGBA, c image.Point) {
	half := SyntheticTargetSize / 2
	r := image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half).Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			col := color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
			if ((x-c.X+half)/8+(y-c.Y+half)/8)%2 == 0 {
				col = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
			}
			dst.SetRGBA(x, y, col)
		}
	}
}

func noise(x, y int) uint8 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return uint8(h >> 24)
}
