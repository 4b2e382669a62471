// Package cmd wires the branchy command line to the GUI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thiagokokada/branchy/internal/buildinfo"
	"github.com/thiagokokada/branchy/internal/config"
	"github.com/thiagokokada/branchy/internal/gui"
)

// launcher starts the application for the given config and optional
// repository path.
type launcher func(cfg *config.Config, repoPath string) error

func Run() error {
	return newRootCommand(launchGUI).Execute()
}

func launchGUI(cfg *config.Config, repoPath string) error {
	return gui.Run(gui.RunConfig{
		RepoPath:        repoPath,
		ThemePreference: gui.ThemePreferenceFromString(cfg.Theme),
		AutoReload:      cfg.Watch,
		SyntaxHighlight: cfg.Syntax,
		Verbose:         cfg.Verbose,
		GitBinary:       cfg.Git.Binary,
		GitTimeout:      cfg.Git.Timeout.Std(),
		WatchDebounce:   cfg.WatchDebounce.Std(),
		DismissAfter:    cfg.Error.DismissAfter.Std(),
		DismissTick:     cfg.Error.Tick.Std(),
	})
}

func newRootCommand(launch launcher) *cobra.Command {
	root := &cobra.Command{
		Use:   "branchy [path]",
		Short: "A small desktop client for everyday git work",
		Long: `branchy shows the working tree status and branches of a git repository,
lets you stage, unstage, commit and switch branches, and reloads itself when
files change on disk.

When path is omitted branchy starts without a repository.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.VersionWithTags(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			repoPath := ""
			if len(args) > 0 {
				repoPath = args[0]
			}
			return launch(cfg, repoPath)
		},
	}
	root.SetVersionTemplate(buildinfo.Name + " {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/branchy/config.yaml)")
	flags.String("mode", gui.ThemeAuto.String(), "color mode: auto, light, or dark")
	flags.Bool("nowatch", false, "disable automatic reload when repository changes")
	flags.Bool("nosyntax", false, "disable syntax highlighting in the diff viewer")
	flags.Bool("verbose", false, "enable verbose logging")
	flags.String("git", "", "git executable to run (default: git from PATH)")

	root.AddCommand(newConfigCommand(), newVersionCommand())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(config.Options{File: file, Flags: cmd.Flags()})
}
