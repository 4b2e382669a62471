package gui

import (
	_ "embed"
	"log/slog"
	"strings"

	. "modernc.org/tk9.0"
)

//go:embed assets/appicon.svg
var appIconSVG string

func applyAppIcon() {
	if strings.TrimSpace(appIconSVG) == "" {
		return
	}
	img := NewPhoto(Data(appIconSVG))
	if img == nil {
		slog.Debug("app icon not loaded")
		return
	}
	App.IconPhoto(img)
}
