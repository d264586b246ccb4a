package config

import (
	"encoding/json"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Video sources.
const (
	SourceSynthetic = "synthetic"
	SourceScreen    = "screen"
)

// Config holds runtime configuration for the stream view and tracking overlay.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Video stream
	Source            string `json:"source"`
	StreamWidth       int    `json:"stream_width"`
	StreamHeight      int    `json:"stream_height"`
	CaptureIntervalMs int    `json:"capture_interval_ms"`

	// Screen capture region (SourceScreen only; zero size = primary display)
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`

	// View
	ViewWidth  int     `json:"view_width"`
	ViewHeight int     `json:"view_height"`
	TapSlopPx  float64 `json:"tap_slop_px"`

	// Overlay style
	RectColor  string `json:"rect_color"`
	PointColor string `json:"point_color"`
	LabelColor string `json:"label_color"`
	LineWidth  int    `json:"line_width"`
	DashLength int    `json:"dash_length"`
	GapLength  int    `json:"gap_length"`

	// Simulated mission
	Simulate     bool    `json:"simulate"`
	NCCThreshold float64 `json:"ncc_threshold"`
	SearchRadius int     `json:"search_radius"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		Source:            SourceSynthetic,
		StreamWidth:       1280,
		StreamHeight:      720,
		CaptureIntervalMs: 50,
		ViewWidth:         800,
		ViewHeight:        600,
		TapSlopPx:         0,
		RectColor:         "#10b981",
		PointColor:        "#dc2626",
		LabelColor:        "#ffffff",
		LineWidth:         2,
		DashLength:        10,
		GapLength:         5,
		Simulate:          true,
		NCCThreshold:      0.70,
		SearchRadius:      48,
	}
}

// Validate clamps/normalizes values to safe ranges. It reports an error only
// for values that cannot be repaired, such as an unknown source.
func (c *Config) Validate() error {
	def := DefaultConfig()
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source == "" {
		c.Source = def.Source
	}
	if c.StreamWidth <= 0 || c.StreamHeight <= 0 {
		c.StreamWidth, c.StreamHeight = def.StreamWidth, def.StreamHeight
	}
	if c.CaptureIntervalMs <= 0 {
		c.CaptureIntervalMs = def.CaptureIntervalMs
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		c.ViewWidth, c.ViewHeight = def.ViewWidth, def.ViewHeight
	}
	if c.TapSlopPx < 0 {
		c.TapSlopPx = 0
	}
	if _, err := ParseHexColor(c.RectColor); err != nil {
		c.RectColor = def.RectColor
	}
	if _, err := ParseHexColor(c.PointColor); err != nil {
		c.PointColor = def.PointColor
	}
	if _, err := ParseHexColor(c.LabelColor); err != nil {
		c.LabelColor = def.LabelColor
	}
	if c.LineWidth <= 0 {
		c.LineWidth = def.LineWidth
	}
	if c.DashLength <= 0 {
		c.DashLength = def.DashLength
	}
	if c.GapLength < 0 {
		c.GapLength = def.GapLength
	}
	if c.NCCThreshold <= 0 || c.NCCThreshold > 1 {
		c.NCCThreshold = def.NCCThreshold
	}
	if c.SearchRadius <= 0 {
		c.SearchRadius = def.SearchRadius
	}
	switch c.Source {
	case SourceSynthetic, SourceScreen:
		return nil
	default:
		bad := c.Source
		c.Source = def.Source
		return errors.Errorf("config: unknown source %q", bad)
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, errors.Errorf("config: bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "config: bad colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "config: open")
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "config: create")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
