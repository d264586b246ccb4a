package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Render draws the selection (fill, outline, label) onto dst. Nothing is drawn
// when no rectangle is shown.
func (s *RectSurface) Render(dst draw.Image) {
	if dst == nil || !s.sel.Shown {
		return
	}
	r := s.sel.Rect.Image()
	stroke := s.sel.Fill
	stroke.A = 0xff
	if s.style.FillAlpha > 0 && !r.Empty() {
		fill := premultiply(stroke, s.style.FillAlpha)
		draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(fill), image.Point{}, draw.Over)
	}
	width := s.style.LineWidth
	if width < 1 {
		width = 1
	}
	if s.sel.Style == LineDashed {
		dash, gap := s.style.DashLength, s.style.GapLength
		if dash < 1 {
			dash = 1
		}
		if gap < 1 {
			gap = 1
		}
		strokeRect(dst, r, stroke, width, dash, gap)
	} else {
		strokeRect(dst, r, stroke, width, 0, 0)
	}
	if s.sel.Label != "" {
		drawLabel(dst, image.Pt(r.Min.X, r.Min.Y-4), s.sel.Label, s.style.LabelColor, stroke)
	}
}

// Render draws a crosshair and ring at the marker position.
func (s *PointSurface) Render(dst draw.Image) {
	if dst == nil || !s.point.Valid() {
		return
	}
	size := s.style.MarkerSize
	if size < 2 {
		size = 2
	}
	cx, cy := int(s.point.X+0.5), int(s.point.Y+0.5)
	fillRect(dst, image.Rect(cx-size, cy-1, cx+size+1, cy+2), s.color)
	fillRect(dst, image.Rect(cx-1, cy-size, cx+2, cy+size+1), s.color)
	ring := size * 2 / 3
	for dy := -ring; dy <= ring; dy++ {
		for dx := -ring; dx <= ring; dx++ {
			d2 := dx*dx + dy*dy
			if d2 <= ring*ring && d2 >= (ring-2)*(ring-2) {
				setPixel(dst, cx+dx, cy+dy, s.color)
			}
		}
	}
}

// strokeRect draws the outline of r inward with the given width. dash==0
// draws a solid line.
func strokeRect(dst draw.Image, r image.Rectangle, c color.RGBA, width, dash, gap int) {
	if r.Dx() == 0 && r.Dy() == 0 {
		setPixel(dst, r.Min.X, r.Min.Y, c)
		return
	}
	for i := 0; i < width; i++ {
		inner := r.Inset(i)
		if inner.Empty() {
			break
		}
		hline(dst, inner.Min.X, inner.Max.X-1, inner.Min.Y, c, dash, gap)
		hline(dst, inner.Min.X, inner.Max.X-1, inner.Max.Y-1, c, dash, gap)
		vline(dst, inner.Min.X, inner.Min.Y, inner.Max.Y-1, c, dash, gap)
		vline(dst, inner.Max.X-1, inner.Min.Y, inner.Max.Y-1, c, dash, gap)
	}
}

func hline(dst draw.Image, x0, x1, y int, c color.RGBA, dash, gap int) {
	for x := x0; x <= x1; x++ {
		if on(x-x0, dash, gap) {
			setPixel(dst, x, y, c)
		}
	}
}

func vline(dst draw.Image, x, y0, y1 int, c color.RGBA, dash, gap int) {
	for y := y0; y <= y1; y++ {
		if on(y-y0, dash, gap) {
			setPixel(dst, x, y, c)
		}
	}
}

// on reports whether offset falls on a dash.
func on(offset, dash, gap int) bool {
	if dash <= 0 {
		return true
	}
	return offset%(dash+gap) < dash
}

func fillRect(dst draw.Image, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

func setPixel(dst draw.Image, x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(dst.Bounds()) {
		return
	}
	dst.Set(x, y, c)
}

func premultiply(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 0xff),
		G: uint8(uint16(c.G) * uint16(a) / 0xff),
		B: uint8(uint16(c.B) * uint16(a) / 0xff),
		A: a,
	}
}

// drawLabel renders text with its baseline at pos on a solid background
// plate, nudged inside dst when the rectangle hugs the top edge.
func drawLabel(dst draw.Image, pos image.Point, text string, fg, bg color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	adv := d.MeasureString(text).Ceil()
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	b := dst.Bounds()
	if pos.Y-ascent < b.Min.Y {
		pos.Y = b.Min.Y + ascent
	}
	if pos.X+adv > b.Max.X {
		pos.X = b.Max.X - adv
	}
	if pos.X < b.Min.X {
		pos.X = b.Min.X
	}
	plate := image.Rect(pos.X-2, pos.Y-ascent-1, pos.X+adv+2, pos.Y+descent+1)
	fillRect(dst, plate, bg)
	d.Dot = fixed.P(pos.X, pos.Y)
	d.DrawString(text)
}
