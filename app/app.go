package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/streamtrack-go/config"
	"github.com/soocke/streamtrack-go/debug"
	"github.com/soocke/streamtrack-go/ui/theme"
	"github.com/soocke/streamtrack-go/ui/view"
)

const (
	tick          = 40 * time.Millisecond
	debugInterval = 2 * time.Second
)

// app owns the Tk main window and drives the presenter loop on Tk's event
// thread.
type app struct {
	title     string
	container *AppContainer
	logger    *slog.Logger
	afterID   string
	stopDebug []func()
	closed    bool
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &app{
		title:     title,
		container: BuildContainer(cfg, logger, width, height, cfgPath),
		logger:    logger,
	}
}

// Start builds the UI and blocks in the Tk main loop until the window closes.
func (a *app) Start() {
	c := a.container
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, "+100+100")
	theme.InitStyles()

	c.BuildUI(view.Handlers{
		ToggleStream:   func() { c.StreamPresenter.Toggle() },
		ClearSelection: func() { c.TrackingPresenter.ClearSelection() },
		CaptureRegion:  c.Region.OpenOrFocus,
		ToggleDark:     a.toggleDark,
		Exit:           a.exitHandler,
	}, a.scheduleUpdate)

	if c.Config.Debug {
		svc := c.StreamSvc
		a.stopDebug = append(a.stopDebug,
			debug.StartRuntimeLogger(debugInterval, a.logger, func() []any {
				st := svc.Stats()
				return []any{"frames", st.Frames, "skipped", st.Skipped, "avg_grab", st.AvgGrab, "frame_age", st.LatestFrameAge}
			}),
			debug.StartMemLogger(debugInterval, a.logger),
		)
	}
	if a.logger != nil {
		a.logger.Info("app started", "source", c.Config.Source, "simulate", c.Config.Simulate)
	}

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// TclAfter keeps every UI mutation on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}

func (a *app) toggleDark() {
	dark := theme.ToggleDark()
	if bg, err := config.ParseHexColor(theme.Current().VideoBg); err == nil && a.container.FramePresenter != nil {
		a.container.FramePresenter.Bg = bg
		a.container.FramePresenter.MarkDirty()
	}
	if a.logger != nil {
		a.logger.Debug("theme changed", "dark", dark)
	}
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	for _, stop := range a.stopDebug {
		stop()
	}
	a.container.Shutdown()
	if a.logger != nil {
		a.logger.Info("app exiting")
	}
	Destroy(App)
}
