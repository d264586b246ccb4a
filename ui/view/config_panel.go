package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/streamtrack-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the form editing stream, overlay and tracking settings.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	place := func(w Widget, opts ...Opt) {
		if parent != nil {
			opts = append(opts, In(parent))
		}
		Grid(w, opts...)
	}
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		place(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		place(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("source", "Source (synthetic/screen)", c.Source)
	makeRow("captureIntervalMs", "Capture Interval Ms", fmt.Sprintf("%d", c.CaptureIntervalMs))
	makeRow("tapSlopPx", "Tap Slop Px", fmt.Sprintf("%.1f", c.TapSlopPx))
	makeRow("lineWidth", "Line Width", fmt.Sprintf("%d", c.LineWidth))
	makeRow("dashLength", "Dash Length", fmt.Sprintf("%d", c.DashLength))
	makeRow("gapLength", "Gap Length", fmt.Sprintf("%d", c.GapLength))
	makeRow("rectColor", "Rect Colour (#rrggbb)", c.RectColor)
	makeRow("pointColor", "Point Colour (#rrggbb)", c.PointColor)
	makeRow("labelColor", "Label Colour (#rrggbb)", c.LabelColor)
	makeRow("nccThreshold", "NCC Threshold", fmt.Sprintf("%.2f", c.NCCThreshold))
	makeRow("searchRadius", "Search Radius Px", fmt.Sprintf("%d", c.SearchRadius))
	makeRow("simulate", "Simulate Mission (true/false)", fmt.Sprintf("%t", c.Simulate))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	place(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			*dst = f
		}
	}
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(strings.TrimSpace(v.text(w))); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if b, ok := parseBoolLoose(strings.TrimSpace(v.text(w))); ok {
			*dst = b
		}
	}
	assignString := func(id string, dst *string) {
		if w := v.widgets[id]; w != nil {
			if val := strings.TrimSpace(v.text(w)); val != "" {
				*dst = val
			}
		}
	}
	assignString("source", &cfg.Source)
	assignInt("captureIntervalMs", &cfg.CaptureIntervalMs)
	assignFloat("tapSlopPx", &cfg.TapSlopPx)
	assignInt("lineWidth", &cfg.LineWidth)
	assignInt("dashLength", &cfg.DashLength)
	assignInt("gapLength", &cfg.GapLength)
	assignString("rectColor", &cfg.RectColor)
	assignString("pointColor", &cfg.PointColor)
	assignString("labelColor", &cfg.LabelColor)
	assignFloat("nccThreshold", &cfg.NCCThreshold)
	assignInt("searchRadius", &cfg.SearchRadius)
	assignBool("simulate", &cfg.Simulate)
	if verr := cfg.Validate(); verr != nil {
		if v.logger != nil {
			v.logger.Warn("config rejected", "error", verr)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else {
		if v.logger != nil {
			v.logger.Info("config saved; overlay style applies on restart", "path", v.cfgPath)
		}
	}
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
