package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/soocke/streamtrack-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionSelector lets the user frame the part of the desktop used as the
// video stream when the screen source is active. The chosen region is read
// by the capture goroutine, hence the atomic storage.
type RegionSelector interface {
	OpenOrFocus()
	Clear()
	Region() image.Rectangle
}

type regionSelector struct {
	logger  *slog.Logger
	cfg     *config.Config
	cfgPath string
	region  atomic.Pointer[image.Rectangle]
	win     *ToplevelWidget
}

// NewRegionSelector restores the region persisted in cfg, if any.
func NewRegionSelector(cfg *config.Config, cfgPath string, logger *slog.Logger) RegionSelector {
	v := &regionSelector{logger: logger, cfg: cfg, cfgPath: cfgPath}
	if cfg != nil && cfg.SelectionW > 0 && cfg.SelectionH > 0 {
		r := image.Rect(cfg.SelectionX, cfg.SelectionY, cfg.SelectionX+cfg.SelectionW, cfg.SelectionY+cfg.SelectionH)
		v.region.Store(&r)
	}
	return v
}

// OpenOrFocus shows a translucent, resizable frame. Its geometry on confirm
// becomes the capture region.
func (v *regionSelector) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Capture Region")
	v.win = win
	start := image.Rect(100, 100, 100+1280/2, 100+720/2)
	if r := v.Region(); !r.Empty() {
		start = r
	}
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", start.Dx(), start.Dy(), start.Min.X, start.Min.Y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-alpha", 0.5)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(0), Sticky("nsew"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.destroy))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clear := win.Button(Txt("Full Screen"), Command(func() { v.Clear(); v.destroy() }))
	Grid(clear, In(controls), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.destroy))
}

// Clear reverts to capturing the whole primary screen.
func (v *regionSelector) Clear() {
	v.region.Store(nil)
	v.persist(image.Rectangle{})
}

func (v *regionSelector) confirm() {
	if v.win == nil {
		return
	}
	if r, ok := parseGeometry(WmGeometry(v.win.Window)); ok {
		v.region.Store(&r)
		v.persist(r)
		if v.logger != nil {
			v.logger.Info("capture region set", "region", r.String())
		}
	}
	v.destroy()
}

func (v *regionSelector) persist(r image.Rectangle) {
	if v.cfg == nil {
		return
	}
	v.cfg.SelectionX, v.cfg.SelectionY = r.Min.X, r.Min.Y
	v.cfg.SelectionW, v.cfg.SelectionH = r.Dx(), r.Dy()
	if err := v.cfg.Save(v.cfgPath); err != nil && v.logger != nil {
		v.logger.Error("config save failed", "error", err)
	}
}

func (v *regionSelector) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// Region returns the selected region; empty means full screen.
func (v *regionSelector) Region() image.Rectangle {
	if r := v.region.Load(); r != nil {
		return *r
	}
	return image.Rectangle{}
}

// geomRe matches Tk geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry converts a Tk geometry string to a screen rectangle.
func parseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	n := make([]int, 4)
	for i := range n {
		n[i], _ = strconv.Atoi(m[i+1])
	}
	if n[0] <= 0 || n[1] <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(n[2], n[3], n[2]+n[0], n[3]+n[1]), true
}
