package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/branchy/internal/buildinfo"
	"github.com/thiagokokada/branchy/internal/git"
)

const versionTimeout = 5 * time.Second

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print branchy and git versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, buildinfo.String())

			ctx, cancel := context.WithTimeout(cmd.Context(), versionTimeout)
			defer cancel()
			svc := git.NewService(git.NewCLI(cfg.Git.Binary, cfg.Git.Timeout.Std()))
			version, err := svc.Version(ctx)
			if err != nil {
				fmt.Fprintf(out, "git: unavailable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(out, "%s\n", version)
			if err := svc.CheckVersion(ctx); err != nil {
				fmt.Fprintf(out, "warning: %v\n", err)
			}
			return nil
		},
	}
}
