package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	if diff := cmp.Diff(DefaultConfig(), c); diff != "" {
		t.Fatalf("Validate changed defaults (-want +got):\n%s", diff)
	}
}

func TestValidateClamps(t *testing.T) {
	c := &Config{
		Source:       " Screen ",
		StreamWidth:  -1,
		ViewWidth:    0,
		ViewHeight:   300,
		TapSlopPx:    -3,
		RectColor:    "green",
		LineWidth:    0,
		NCCThreshold: 1.5,
		SelectionW:   -10,
	}
	require.NoError(t, c.Validate())
	def := DefaultConfig()
	assert.Equal(t, SourceScreen, c.Source)
	assert.Equal(t, def.StreamWidth, c.StreamWidth)
	assert.Equal(t, def.ViewWidth, c.ViewWidth)
	assert.Equal(t, def.ViewHeight, c.ViewHeight)
	assert.Zero(t, c.TapSlopPx)
	assert.Equal(t, def.RectColor, c.RectColor)
	assert.Equal(t, def.LineWidth, c.LineWidth)
	assert.Equal(t, def.NCCThreshold, c.NCCThreshold)
	assert.Zero(t, c.SelectionW)
}

func TestValidateUnknownSource(t *testing.T) {
	c := DefaultConfig()
	c.Source = "webcam"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webcam")
	assert.Equal(t, SourceSynthetic, c.Source)
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#10b981")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}, got)

	got, err = ParseHexColor("f0a")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, got)

	for _, bad := range []string{"", "#12345", "#gggggg", "red"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streamtrack.json")

	cfg, err := Load(path)
	require.NoError(t, err, "missing file yields defaults")
	assert.Equal(t, DefaultConfig(), cfg)

	cfg.ViewWidth = 1024
	cfg.ViewHeight = 576
	cfg.DashLength = 6
	cfg.Simulate = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	bad, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), bad)
}
