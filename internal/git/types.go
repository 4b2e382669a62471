package git

import "strings"

const remotePrefix = "origin/"

type ChangeKind uint8

const (
	ChangeModified ChangeKind = iota
	ChangeAdded
	ChangeDeleted
	ChangeRenamed
	ChangeUntracked
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "Added"
	case ChangeDeleted:
		return "Deleted"
	case ChangeRenamed:
		return "Renamed"
	case ChangeUntracked:
		return "Untracked"
	default:
		return "Modified"
	}
}

// Letter is the single-character marker shown next to a change.
func (k ChangeKind) Letter() string {
	switch k {
	case ChangeAdded:
		return "A"
	case ChangeDeleted:
		return "D"
	case ChangeRenamed:
		return "R"
	case ChangeUntracked:
		return "?"
	default:
		return "M"
	}
}

// FileChange is one entry of the porcelain status output. Path is relative to
// the repository root.
type FileChange struct {
	Path     string
	Kind     ChangeKind
	IsStaged bool
}

type BranchStatus struct {
	Name     string
	AheadBy  int
	BehindBy int
}

func defaultBranchStatus() BranchStatus {
	return BranchStatus{Name: "HEAD"}
}

// RepositoryStatus is a snapshot produced by a single status invocation.
type RepositoryStatus struct {
	RepositoryPath string
	Branch         BranchStatus
	Changes        []FileChange
}

type Branch struct {
	Name      string
	IsCurrent bool
	IsRemote  bool
}

// DisplayName returns the branch name without the remote prefix.
func (b Branch) DisplayName() string {
	if b.IsRemote {
		return strings.TrimPrefix(b.Name, remotePrefix)
	}
	return b.Name
}
