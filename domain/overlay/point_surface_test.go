package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soocke/streamtrack-go/domain/geometry"
)

func TestPointSurface_DefaultAndExplicitColour(t *testing.T) {
	style := DefaultStyle()
	s := NewPointSurface(style)
	changes := 0
	s.OnChange(func() { changes++ })

	p, _ := s.Point()
	assert.False(t, p.Valid(), "new surface shows no marker")

	s.UpdatePoint(geometry.Pt(20, 20))
	p, c := s.Point()
	assert.Equal(t, geometry.Pt(20, 20), p)
	assert.Equal(t, style.MarkerColor, c)

	blue := color.RGBA{B: 255, A: 255}
	s.UpdatePoint(geometry.Pt(5, 6), blue)
	_, c = s.Point()
	assert.Equal(t, blue, c)

	// Omitting the colour again resets to the default.
	s.UpdatePoint(geometry.Pt(5, 6))
	_, c = s.Point()
	assert.Equal(t, style.MarkerColor, c)
	assert.Equal(t, 3, changes)
}

func TestPointSurface_Render(t *testing.T) {
	s := NewPointSurface(DefaultStyle())
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	s.Render(img)
	assert.Zero(t, img.RGBAAt(25, 25).A)

	s.UpdatePoint(geometry.Pt(25, 25), color.RGBA{G: 255, A: 255})
	s.Render(img)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(25, 25))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(25+DefaultStyle().MarkerSize, 25))

	s.Hide()
	p, _ := s.Point()
	assert.False(t, p.Valid())

	// Markers near the edge are clipped, not a panic.
	s.UpdatePoint(geometry.Pt(0, 49))
	assert.NotPanics(t, func() { s.Render(img) })
}
