package git

import (
	"context"
	"fmt"
	"strings"
)

const (
	branchListArgs = "branch -a --format=%(refname:short)|%(HEAD)|%(refname:rstrip=-2)"
	remoteHEAD     = "origin/HEAD"
)

// Branches lists local and remote branches in git's order.
func (s *Service) Branches(ctx context.Context, repoPath string) ([]Branch, error) {
	out, err := s.run(ctx, repoPath, branchListArgs)
	if err != nil {
		return nil, err
	}
	return ParseBranches(out), nil
}

// Checkout switches the worktree to branch. Remote branches end up detached.
func (s *Service) Checkout(ctx context.Context, repoPath, branch string) error {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return fmt.Errorf("branch not specified")
	}
	_, err := s.run(ctx, repoPath, "checkout "+quoteArg(branch))
	return err
}

// ParseBranches converts `name|marker|ref-prefix` lines. Malformed lines and
// the origin/HEAD pointer are dropped.
func ParseBranches(raw string) []Branch {
	var branches []Branch
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name == remoteHEAD {
			continue
		}
		branches = append(branches, Branch{
			Name:      name,
			IsCurrent: strings.TrimSpace(fields[1]) == "*",
			IsRemote:  strings.HasPrefix(name, remotePrefix),
		})
	}
	return branches
}
