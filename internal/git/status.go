package git

import (
	"context"
	"strconv"
	"strings"
)

const (
	statusArgs       = "status --porcelain=v2 -b"
	branchHeadPrefix = "# branch.head "
	branchABPrefix   = "# branch.ab "
	// type, XY, sub, mH, mI, mW, hH, hI
	minChangeFields = 8
	// rename entries carry an extra score field before the path
	renamePathField = minChangeFields + 1
)

// Status runs git status and parses its porcelain v2 output.
func (s *Service) Status(ctx context.Context, repoPath string) (RepositoryStatus, error) {
	out, err := s.run(ctx, repoPath, statusArgs)
	if err != nil {
		return RepositoryStatus{}, err
	}
	return ParseStatus(repoPath, out), nil
}

// ParseStatus converts `git status --porcelain=v2 -b` output. It never fails:
// unknown or malformed lines are skipped or degraded to a Modified entry.
func ParseStatus(repoPath, raw string) RepositoryStatus {
	status := RepositoryStatus{
		RepositoryPath: repoPath,
		Branch:         defaultBranchStatus(),
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, branchHeadPrefix):
			status.Branch.Name = strings.TrimSpace(line[len(branchHeadPrefix):])
		case strings.HasPrefix(line, branchABPrefix):
			status.Branch.AheadBy, status.Branch.BehindBy = parseAheadBehind(line[len(branchABPrefix):])
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "? "):
			status.Changes = append(status.Changes, FileChange{
				Path: strings.TrimSpace(line[2:]),
				Kind: ChangeUntracked,
			})
		case strings.HasPrefix(line, "1 "), strings.HasPrefix(line, "2 "):
			status.Changes = append(status.Changes, parseChangeLine(line))
		}
	}
	return status
}

func parseAheadBehind(s string) (ahead, behind int) {
	for _, field := range strings.Fields(s) {
		if len(field) < 2 {
			continue
		}
		n, err := strconv.Atoi(field[1:])
		if err != nil || n < 0 {
			n = 0
		}
		switch field[0] {
		case '+':
			ahead = n
		case '-':
			behind = n
		}
	}
	return ahead, behind
}

func parseChangeLine(line string) FileChange {
	fields := strings.Split(line, " ")
	if len(fields) < minChangeFields {
		return FileChange{Path: line, Kind: ChangeModified}
	}
	xy := fields[1]
	// "2" lines end in "<path>\t<origPath>"; the new path is the one before
	// the tab.
	head := line
	pathField := minChangeFields
	if idx := strings.IndexByte(line, '\t'); idx >= 0 {
		head = line[:idx]
	}
	if line[0] == '2' {
		pathField = renamePathField
	}
	parts := strings.SplitN(head, " ", pathField+1)
	path := parts[len(parts)-1]
	var index, worktree byte = '.', '.'
	if len(xy) > 0 {
		index = xy[0]
	}
	if len(xy) > 1 {
		worktree = xy[1]
	}
	return FileChange{
		Path:     path,
		Kind:     changeKind(index, worktree),
		IsStaged: index != '.',
	}
}

func changeKind(index, worktree byte) ChangeKind {
	switch {
	case index == 'A' || worktree == 'A':
		return ChangeAdded
	case index == 'D' || worktree == 'D':
		return ChangeDeleted
	case index == 'R' || worktree == 'R':
		return ChangeRenamed
	default:
		return ChangeModified
	}
}
