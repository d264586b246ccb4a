package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/soocke/streamtrack-go/capture"
	"github.com/soocke/streamtrack-go/config"
	"github.com/soocke/streamtrack-go/domain/geometry"
	"github.com/soocke/streamtrack-go/domain/overlay"
	"github.com/soocke/streamtrack-go/domain/stream"
	"github.com/soocke/streamtrack-go/domain/track"
	"github.com/soocke/streamtrack-go/domain/vehicle"
	"github.com/soocke/streamtrack-go/ui/model"
	"github.com/soocke/streamtrack-go/ui/presenter"
	"github.com/soocke/streamtrack-go/ui/theme"
	"github.com/soocke/streamtrack-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Stream     *model.StreamModel
	Viewport   *model.ViewportModel
	Mission    *model.MissionModel
	Mapper     *geometry.Mapper
	StreamSvc  stream.Service
	Simulator  *vehicle.Simulator
	Components *vehicle.Components
	Rect       *overlay.RectSurface
	Point      *overlay.PointSurface
	Region     view.RegionSelector
	RootView   *view.RootView

	// Presenters
	StreamPresenter   *presenter.StreamPresenter
	TrackingPresenter *presenter.TrackingPresenter
	StatusPresenter   *presenter.StatusPresenter
	FramePresenter    *presenter.FramePresenter
	Loop              *presenter.Loop
}

// BuildContainer constructs all non-Tk components. Widgets are created later
// by BuildUI once the Tk root exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger, width, height int, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Stream = &model.StreamModel{}
	c.Viewport = model.NewViewportModel(width, height)
	c.Mission = model.NewMissionModel()
	c.Mapper = geometry.NewMapper(c.Viewport, geometry.FrameSize{W: float64(cfg.StreamWidth), H: float64(cfg.StreamHeight)})
	c.Region = view.NewRegionSelector(cfg, cfgPath, logger)

	interval := time.Duration(cfg.CaptureIntervalMs) * time.Millisecond
	var grab stream.Grabber
	switch cfg.Source {
	case config.SourceScreen:
		grab = capture.Grabber(c.Region.Region)
	default:
		grab = stream.Synthetic(cfg.StreamWidth, cfg.StreamHeight)
	}
	c.StreamSvc = stream.NewService(grab, interval, logger)

	c.Simulator = vehicle.NewSimulator(c.StreamSvc, vehicle.SimulatorOptions{
		Tick: interval,
		Track: track.Options{
			Threshold:    cfg.NCCThreshold,
			SearchRadius: cfg.SearchRadius,
			Refine:       true,
		},
	}, logger)
	c.Simulator.SetConnected(cfg.Simulate)
	c.Components = vehicle.NewComponents(c.Simulator.Source())
	c.logComponents()

	style := overlayStyle(cfg, logger)
	c.Rect = overlay.NewRectSurface(style, cfg.TapSlopPx, logger)
	c.Point = overlay.NewPointSurface(style)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	return c
}

// BuildUI creates the widgets and wires the presenters to them. Must run on
// the Tk thread.
func (c *AppContainer) BuildUI(h view.Handlers, schedule func()) {
	w, ht := c.Viewport.Size()
	h.Touch = view.TouchHandlers{
		Down: func(x, y float64) { c.Rect.TouchDown(geometry.Pt(x, y)) },
		Move: func(x, y float64) { c.Rect.TouchMove(geometry.Pt(x, y)) },
		Up:   func(x, y float64) { c.Rect.TouchUp(geometry.Pt(x, y)) },
	}
	h.Resize = c.Viewport.SetSize
	if c.Config.Source != config.SourceScreen {
		h.CaptureRegion = nil
	}
	c.RootView.Build(w, ht, h)

	colors := presenter.DefaultTargetColors(c.Rect.Style().Stroke)
	c.TrackingPresenter = presenter.NewTrackingPresenter(c.Mapper, c.Simulator, c.Rect, c.Point, c.Mission, colors, c.Logger)
	c.Rect.SetListener(c.TrackingPresenter)
	c.Simulator.AddObserver(c.TrackingPresenter)

	c.StreamPresenter = presenter.NewStreamPresenter(c.Stream, c.StreamSvc, c.Simulator, c.RootView)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Mission, c.RootView)
	c.FramePresenter = presenter.NewFramePresenter(c.Stream.Enabled, c.StreamSvc, c.Viewport, c.Mapper, c.Mission, c.RootView, c.Logger, c.Rect, c.Point)
	if bg, err := config.ParseHexColor(theme.Current().VideoBg); err == nil {
		c.FramePresenter.Bg = bg
	}
	c.Rect.OnChange(c.FramePresenter.MarkDirty)
	c.Point.OnChange(c.FramePresenter.MarkDirty)
	c.Loop = presenter.NewLoop(c.TrackingPresenter, c.StatusPresenter, c.FramePresenter, schedule)
}

// Shutdown stops background goroutines. Safe to call more than once.
func (c *AppContainer) Shutdown() {
	if c.StreamSvc != nil {
		c.StreamSvc.Stop()
	}
	if c.Simulator != nil {
		c.Simulator.Close()
	}
}

func (c *AppContainer) logComponents() {
	if c.Logger == nil {
		return
	}
	p, ok := c.Components.FetchProduct()
	if !ok {
		c.Logger.Warn("no aircraft connected; missions will be rejected")
		return
	}
	attrs := []any{"model", p.Model()}
	if fc, err := c.Components.RequireFlightController(); err == nil {
		attrs = append(attrs, "flight_controller", fc.DisplayName(), "flying", fc.IsFlying())
	}
	if cam, err := c.Components.RequireCamera(); err == nil {
		attrs = append(attrs, "camera", cam.DisplayName())
	}
	if g, err := c.Components.RequireGimbal(); err == nil {
		pitch, roll, yaw := g.Attitude()
		attrs = append(attrs, "gimbal", g.DisplayName(), "pitch", pitch, "roll", roll, "yaw", yaw)
	}
	c.Logger.Info("aircraft connected", attrs...)
}

// overlayStyle builds the overlay style from config, keeping defaults for
// colors that do not parse.
func overlayStyle(cfg *config.Config, logger *slog.Logger) overlay.Style {
	s := overlay.DefaultStyle()
	s.LineWidth, s.DashLength, s.GapLength = cfg.LineWidth, cfg.DashLength, cfg.GapLength
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"rect_color", cfg.RectColor, &s.Stroke},
		{"point_color", cfg.PointColor, &s.MarkerColor},
		{"label_color", cfg.LabelColor, &s.LabelColor},
	} {
		c, err := config.ParseHexColor(f.hex)
		if err != nil {
			if logger != nil {
				logger.Warn("invalid overlay color; using default", "field", f.name, "value", f.hex, "error", err)
			}
			continue
		}
		*f.dst = c
	}
	return s
}
