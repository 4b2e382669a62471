// Package gui is the Tk front end. It renders model.Repository snapshots and
// forwards user actions back to it.
package gui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thiagokokada/branchy/internal/git"
	"github.com/thiagokokada/branchy/internal/model"
	"github.com/thiagokokada/branchy/internal/watch"

	. "modernc.org/tk9.0"
	_ "modernc.org/tk9.0/themes/azure" // load theme
)

// RunConfig describes the parameters that control the GUI runtime.
type RunConfig struct {
	// RepoPath is opened on start. Empty starts without a repository.
	RepoPath        string
	ThemePreference ThemePreference
	AutoReload      bool
	SyntaxHighlight bool
	Verbose         bool
	GitBinary       string
	GitTimeout      time.Duration
	WatchDebounce   time.Duration
	DismissAfter    time.Duration
	DismissTick     time.Duration
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.GitBinary == "" {
		cfg.GitBinary = git.DefaultBinary
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = watch.DefaultDebounce
	}
	if cfg.DismissAfter <= 0 {
		cfg.DismissAfter = model.DefaultDismissAfter
	}
	if cfg.DismissTick <= 0 || cfg.DismissTick > cfg.DismissAfter {
		cfg.DismissTick = model.DefaultDismissTick
	}
	if cfg.ThemePreference < ThemeAuto || cfg.ThemePreference > ThemeDark {
		cfg.ThemePreference = ThemeAuto
	}
	return cfg
}

func Run(cfg RunConfig) error {
	cfg = cfg.withDefaults()
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := InitializeExtension("eval"); err != nil && err != AlreadyInitialized {
		return fmt.Errorf("init eval extension: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := git.NewService(git.NewCLI(cfg.GitBinary, cfg.GitTimeout))
	if err := svc.CheckVersion(ctx); err != nil {
		return err
	}

	c := &Controller{
		ctx: ctx,
		cfg: controllerConfig{
			syntaxHighlight: cfg.SyntaxHighlight && syntaxHighlightAvailable,
		},
		theme: controllerTheme{
			pref: cfg.ThemePreference,
		},
	}
	var repo *model.Repository
	watcher := watch.New(func() { repo.HandleFilesChanged() }, watch.WithDebounce(cfg.WatchDebounce))
	repo = model.NewRepository(model.Options{
		Service:      svc,
		Picker:       &tkFolderPicker{initialDir: func() string { return repo.Path() }},
		Watcher:      watcher,
		AutoReload:   cfg.AutoReload,
		DismissAfter: cfg.DismissAfter,
		DismissTick:  cfg.DismissTick,
	})
	c.repo = repo
	return c.run(cfg.RepoPath)
}

func (c *Controller) run(initialPath string) error {
	defer c.repo.Close()
	c.theme.palette = paletteForPreference(c.theme.pref)
	if c.theme.palette.ThemeName != "" {
		if err := ActivateTheme(c.theme.palette.ThemeName); err != nil {
			slog.Error(
				"activate theme",
				slog.String("theme", c.theme.palette.ThemeName),
				slog.Any("error", err),
			)
		}
	}
	if c.cfg.syntaxHighlight {
		c.theme.style = styleForPalette(c.theme.palette)
	}
	applyAppIcon()
	c.initMenubar()
	c.buildUI()

	unsubscribe := c.repo.Subscribe(func(ch model.Change) {
		PostEvent(func() { c.render(ch) }, false)
	})
	defer unsubscribe()
	c.render(model.Change{Fields: model.FieldAll, State: c.repo.Snapshot()})

	if initialPath != "" {
		slog.Debug("opening initial repository", slog.String("path", initialPath))
		go c.repo.OpenRepository(c.ctx, initialPath)
	}
	App.SetResizable(true, true)
	App.Center().Wait()
	return nil
}
