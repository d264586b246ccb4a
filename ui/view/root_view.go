package view

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/streamtrack-go/config"
	"github.com/soocke/streamtrack-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ViewSize is one entry of the video size selector.
type ViewSize struct{ W, H int }

func (s ViewSize) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// ViewSizes are the selectable video surface sizes.
var ViewSizes = []ViewSize{{640, 360}, {800, 600}, {960, 540}, {1024, 576}, {1280, 720}}

// Handlers are the user actions wired by the application.
type Handlers struct {
	ToggleStream   func()
	ClearSelection func()
	CaptureRegion  func() // nil hides the button
	ToggleDark     func()
	Exit           func()
	Resize         func(w, h int)
	Touch          TouchHandlers
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Follow      FollowStats
	ConfigPanel ConfigPanel
	Video       VideoView

	// Widgets
	StatusLabel *TLabelWidget
	SizeSelect  *TComboboxWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout with the video surface at w x h.
func (rv *RootView) Build(w, h int, on Handlers) {
	if rv == nil {
		return
	}
	// Row 0: status, follow timers, controls
	top := Frame()
	Grid(top, Row(0), Column(0), Columnspan(6), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.StatusLabel = TLabel(Txt("ActiveTrack: <none>"), Style(theme.StyleStateLabel), Width(60))
	Grid(rv.StatusLabel, In(top), Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"))
	rv.Follow = NewFollowStats(top, 1, 0)
	hint := TLabel(Txt("Drag on the video to track a target, tap to fly"), Style(theme.StyleMutedLabel))
	Grid(hint, In(top), Row(2), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))

	btns := Frame()
	Grid(btns, In(top), Row(0), Column(2), Sticky("ne"), Padx("0.3m"))
	col := 0
	addButton := func(label, style string, cmd func()) {
		if cmd == nil {
			return
		}
		b := TButton(Txt(label), Style(style), Command(cmd))
		Grid(b, In(btns), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	addButton("Toggle Stream", theme.StylePrimaryButton, on.ToggleStream)
	addButton("Clear Selection", theme.StylePrimaryButton, on.ClearSelection)
	addButton("Capture Region", theme.StylePrimaryButton, on.CaptureRegion)
	addButton("Dark Mode", theme.StylePrimaryButton, on.ToggleDark)
	addButton("Exit", theme.StyleDangerButton, on.Exit)

	names := make([]string, len(ViewSizes))
	current := 0
	for i, s := range ViewSizes {
		names[i] = s.String()
		if s.W == w && s.H == h {
			current = i
		}
	}
	rv.SizeSelect = TCombobox(Values(names), Width(12), State("readonly"))
	Grid(rv.SizeSelect, In(btns), Row(1), Column(0), Columnspan(2), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	rv.SizeSelect.Current(current)
	Bind(rv.SizeSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.SizeSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(ViewSizes) {
			if rv.logger != nil {
				rv.logger.Error("view size selection parse error", "error", err)
			}
			return
		}
		s := ViewSizes[idx]
		if rv.Video != nil {
			rv.Video.Resize(s.W, s.H)
		}
		if on.Resize != nil {
			on.Resize(s.W, s.H)
		}
	}))

	// Row 1: video and thumbnail; config panel on the right
	rv.Video = NewVideoView(1, w, h, on.Touch)
	side := Frame()
	Grid(side, Row(1), Column(5), Sticky("n"), Padx("0.4m"))
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	rv.ConfigPanel.Build(side, 0)
}

// SetStatusLabel updates the mission status text.
func (rv *RootView) SetStatusLabel(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetFollow updates the follow timers.
func (rv *RootView) SetFollow(current, total time.Duration) {
	if rv != nil && rv.Follow != nil {
		rv.Follow.Set(current, total)
	}
}

// UpdateVideo proxies to the video view.
func (rv *RootView) UpdateVideo(img image.Image) {
	if rv != nil && rv.Video != nil {
		rv.Video.UpdateVideo(img)
	}
}

// UpdateTarget proxies to the video view.
func (rv *RootView) UpdateTarget(img image.Image) {
	if rv != nil && rv.Video != nil {
		rv.Video.UpdateTarget(img)
	}
}

// PreviewReset shows the no-signal card.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Video != nil {
		rv.Video.Reset()
	}
}

// ConfigEditable toggles config panel editability.
func (rv *RootView) ConfigEditable(b bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(b)
	}
}
