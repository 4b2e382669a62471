package gui

import (
	"testing"
	"time"

	"github.com/thiagokokada/branchy/internal/git"
	"github.com/thiagokokada/branchy/internal/model"
	"github.com/thiagokokada/branchy/internal/watch"
)

func TestRunConfigWithDefaults(t *testing.T) {
	got := RunConfig{ThemePreference: ThemePreference(42)}.withDefaults()
	if got.GitBinary != git.DefaultBinary {
		t.Fatalf("GitBinary = %q", got.GitBinary)
	}
	if got.WatchDebounce != watch.DefaultDebounce {
		t.Fatalf("WatchDebounce = %v", got.WatchDebounce)
	}
	if got.DismissAfter != model.DefaultDismissAfter || got.DismissTick != model.DefaultDismissTick {
		t.Fatalf("dismiss timings = %v/%v", got.DismissAfter, got.DismissTick)
	}
	if got.ThemePreference != ThemeAuto {
		t.Fatalf("ThemePreference = %v", got.ThemePreference)
	}
}

func TestRunConfigWithDefaultsKeepsValues(t *testing.T) {
	in := RunConfig{
		RepoPath:        "/repo",
		ThemePreference: ThemeDark,
		GitBinary:       "/opt/git",
		GitTimeout:      time.Second,
		WatchDebounce:   time.Second,
		DismissAfter:    5 * time.Second,
		DismissTick:     time.Second,
	}
	if got := in.withDefaults(); got != in {
		t.Fatalf("withDefaults changed explicit values: %#v", got)
	}
}

func TestRunConfigWithDefaultsRejectsLongTick(t *testing.T) {
	got := RunConfig{DismissAfter: time.Second, DismissTick: 2 * time.Second}.withDefaults()
	if got.DismissTick != model.DefaultDismissTick {
		t.Fatalf("DismissTick = %v", got.DismissTick)
	}
}

func TestWindowTitle(t *testing.T) {
	if got := windowTitle(""); got != "branchy" {
		t.Fatalf("windowTitle(\"\") = %q", got)
	}
	if got := windowTitle("/home/me/project"); got != "branchy - /home/me/project" {
		t.Fatalf("windowTitle = %q", got)
	}
}

func TestAutoReloadLabel(t *testing.T) {
	if autoReloadLabel(true) == autoReloadLabel(false) {
		t.Fatalf("labels should differ")
	}
}
