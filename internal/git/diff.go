package git

import (
	"context"
	"strings"
)

// DiffArgs returns the argument string used to diff a single change.
func DiffArgs(change FileChange) string {
	if change.IsStaged {
		return "diff --cached -- " + quoteArg(change.Path)
	}
	return "diff -- " + quoteArg(change.Path)
}

// Diff returns the unified diff for change. git prints nothing for untracked
// files, so their diff is built from the file contents.
func (s *Service) Diff(ctx context.Context, repoPath string, change FileChange) (string, error) {
	out, err := s.run(ctx, repoPath, DiffArgs(change))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" && change.Kind == ChangeUntracked {
		return untrackedDiff(repoPath, change.Path)
	}
	return out, nil
}
