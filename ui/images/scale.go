package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	_ = enc.Encode(&buf, img)
	return buf.Bytes()
}

// Letterbox renders src into a w x h canvas using the same uniform-scale,
// centred placement as geometry.Fit, padding the short axis with bg. An
// unusable source or size yields a plain bg canvas.
func Letterbox(src image.Image, w, h int, bg color.Color) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	if src == nil {
		return dst
	}
	t, err := geometry.Fit(geometry.ViewBounds{W: float64(w), H: float64(h)}, geometry.FrameSizeOf(src))
	if err != nil {
		return dst
	}
	sb := src.Bounds()
	fw, fh := float64(sb.Dx())*t.Scale, float64(sb.Dy())*t.Scale
	r := image.Rect(
		int(math.Round(t.OffsetX)), int(math.Round(t.OffsetY)),
		int(math.Round(t.OffsetX+fw)), int(math.Round(t.OffsetY+fh)),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, r, src, sb, xdraw.Src, nil)
	return dst
}

// ScaleToFit scales src to the largest size fitting maxW x maxH, preserving
// aspect ratio. Unlike Letterbox the result has no padding. Small sources are
// enlarged with nearest-neighbour so individual pixels stay visible.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := max(1, int(float64(w)*ratio+0.5))
	newH := max(1, int(float64(h)*ratio+0.5))
	if newW == w && newH == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	var s xdraw.Scaler = xdraw.ApproxBiLinear
	if ratio > 1 {
		s = xdraw.NearestNeighbor
	}
	s.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
