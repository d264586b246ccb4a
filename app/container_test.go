package app

import (
	"image/color"
	"testing"

	"github.com/soocke/streamtrack-go/config"
	"github.com/soocke/streamtrack-go/domain/overlay"
)

func TestOverlayStyle_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RectColor = "#f00"
	cfg.PointColor = "not-a-color"
	cfg.LineWidth, cfg.DashLength, cfg.GapLength = 3, 6, 2

	s := overlayStyle(cfg, nil)
	if s.Stroke != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("stroke %v", s.Stroke)
	}
	if s.MarkerColor != overlay.DefaultStyle().MarkerColor {
		t.Fatalf("invalid point color should keep the default, got %v", s.MarkerColor)
	}
	if s.LineWidth != 3 || s.DashLength != 6 || s.GapLength != 2 {
		t.Fatalf("line settings not applied: %+v", s)
	}
}
