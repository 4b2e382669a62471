package git

import (
	"context"
	"os"
	"strings"
)

const isRepositoryArgs = "rev-parse --is-inside-work-tree"

// Service issues the git subcommands the application needs through a Runner.
type Service struct {
	runner Runner
}

func NewService(runner Runner) *Service {
	return &Service{runner: runner}
}

// IsRepository reports whether path lies inside a git work tree. A path
// that is not an existing directory is simply not a repository.
func (s *Service) IsRepository(ctx context.Context, path string) (bool, error) {
	res, err := s.runner.Run(ctx, path, isRepositoryArgs)
	if err != nil {
		if ctx.Err() == nil && !isDir(path) {
			return false, nil
		}
		return false, err
	}
	return res.ExitCode == 0 && strings.TrimSpace(res.Stdout) == "true", nil
}

func (s *Service) Stage(ctx context.Context, repoPath, path string) error {
	_, err := s.run(ctx, repoPath, "add "+quoteArg(path))
	return err
}

func (s *Service) Unstage(ctx context.Context, repoPath, path string) error {
	_, err := s.run(ctx, repoPath, "restore --staged "+quoteArg(path))
	return err
}

func (s *Service) Commit(ctx context.Context, repoPath, message string) error {
	_, err := s.run(ctx, repoPath, "commit -m "+quoteArg(message))
	return err
}

// run executes args and turns a non-zero exit status into a *CommandError.
func (s *Service) run(ctx context.Context, dir, args string) (string, error) {
	res, err := s.runner.Run(ctx, dir, args)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &CommandError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
