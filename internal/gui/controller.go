package gui

import (
	"context"

	"github.com/alecthomas/chroma/v2"

	"github.com/thiagokokada/branchy/internal/model"
	. "modernc.org/tk9.0"
)

// Controller owns the Tk widgets and mirrors model.Repository snapshots into
// them. All methods run on the Tk event loop; repository operations that
// reach git are started on their own goroutine.
type Controller struct {
	repo *model.Repository
	ctx  context.Context

	cfg   controllerConfig
	theme controllerTheme
	ui    appWidgets
	state controllerState
}

type controllerConfig struct {
	syntaxHighlight bool
}

type controllerTheme struct {
	pref    ThemePreference
	palette colorPalette
	style   *chroma.Style
}

type controllerState struct {
	// snap is the last rendered snapshot. Tree row IDs index snap.Changes
	// and listbox rows index snap.Branches.
	snap            model.Snapshot
	diffText        string
	diffHighlighted bool
	syntaxTags      map[string]string
	bannerVisible   bool
	shortcutsWindow *ToplevelWidget
}
