// Package theme holds the light and dark palettes of the tracker UI and the
// named ttk styles built from them.
package theme

import (
	tk "modernc.org/tk9.0"
)

// Palette is the set of resolved colors for one mode.
type Palette struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
	// VideoBg fills the letterbox bars around the stream.
	VideoBg string
}

var (
	light = Palette{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Border:    "#d0d7de",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		Text:      "#1e293b",
		TextMuted: "#64748b",
		VideoBg:   "#000000",
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
		VideoBg:   "#020617",
	}
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleMutedLabel    = "muted.TLabel"
)

var darkMode bool

// Current returns the palette of the active mode.
func Current() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles (re)applies styles for the current mode.
func InitStyles() { applyStyles(Current()) }

// SetDark switches mode and reapplies styles. Returns the new mode.
func SetDark(d bool) bool {
	darkMode = d
	applyStyles(Current())
	return darkMode
}

// ToggleDark flips the mode. Returns the new mode.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

func applyStyles(p Palette) {
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))

	button := func(name, bg string) {
		tk.StyleConfigure(name, tk.Background(bg), tk.Foreground("white"), tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge"))
	}
	button(StylePrimaryButton, p.Primary)
	button(StyleDangerButton, p.Danger)

	tk.StyleConfigure(StyleMutedLabel, tk.Foreground(p.TextMuted), tk.Background(p.Surface), tk.Padding("2p 1p"))
	// Mission status banner
	tk.StyleConfigure(StyleStateLabel, tk.Foreground("white"), tk.Background(p.Accent), tk.Padding("4p 2p"), tk.Borderwidth(1), tk.Relief("groove"))
}
