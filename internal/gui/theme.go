package gui

import (
	"log/slog"
	"strings"

	darkmode "github.com/thiagokokada/dark-mode-go"
)

type ThemePreference int

const (
	ThemeAuto ThemePreference = iota
	ThemeLight
	ThemeDark
)

func (p ThemePreference) String() string {
	switch p {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

type colorPalette struct {
	ThemeName   string
	DiffAdd     string
	DiffDel     string
	DiffHeader  string
	DiffHunk    string
	StagedRow   string
	UnstagedRow string
	ErrorBg     string
	ErrorFg     string
}

var (
	lightPalette = colorPalette{
		ThemeName:   "azure light",
		DiffAdd:     "#dff5de",
		DiffDel:     "#f9d6d5",
		DiffHeader:  "#e4e4e4",
		DiffHunk:    "#dde9f7",
		StagedRow:   "#e2f7e1",
		UnstagedRow: "#fde2e1",
		ErrorBg:     "#f8d7da",
		ErrorFg:     "#721c24",
	}
	darkPalette = colorPalette{
		ThemeName:   "azure dark",
		DiffAdd:     "#1f3d2b",
		DiffDel:     "#3d1f29",
		DiffHeader:  "#2f2f2f",
		DiffHunk:    "#1f2d3d",
		StagedRow:   "#1f3b2a",
		UnstagedRow: "#4a1f23",
		ErrorBg:     "#5c1f24",
		ErrorFg:     "#f8d7da",
	}
	detectDarkMode = darkmode.IsDarkMode
)

func ThemePreferenceFromString(raw string) ThemePreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeDark.String():
		return ThemeDark
	case ThemeLight.String():
		return ThemeLight
	default:
		return ThemeAuto
	}
}

func paletteForPreference(pref ThemePreference) colorPalette {
	switch pref {
	case ThemeDark:
		return darkPalette
	case ThemeLight:
		return lightPalette
	default:
		if detectDarkMode == nil {
			return lightPalette
		}
		dark, err := detectDarkMode()
		if err != nil {
			slog.Debug("detect dark mode", slog.Any("error", err))
			return lightPalette
		}
		if dark {
			return darkPalette
		}
		return lightPalette
	}
}

func (p colorPalette) isDark() bool {
	return strings.Contains(strings.ToLower(p.ThemeName), "dark")
}

// diffTagColors maps the diff line tags to their background colors, falling
// back to the light palette for unset entries.
func (p colorPalette) diffTagColors() map[string]string {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return map[string]string{
		diffAddTag:    pick(p.DiffAdd, lightPalette.DiffAdd),
		diffDelTag:    pick(p.DiffDel, lightPalette.DiffDel),
		diffHeaderTag: pick(p.DiffHeader, lightPalette.DiffHeader),
		diffHunkTag:   pick(p.DiffHunk, lightPalette.DiffHunk),
	}
}
