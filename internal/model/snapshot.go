package model

import (
	"fmt"
	"strings"

	"github.com/thiagokokada/branchy/internal/git"
)

// Field identifies which parts of the state a notification touches.
type Field uint32

const (
	FieldRepository Field = 1 << iota
	FieldBranch
	FieldChanges
	FieldBranches
	FieldSelection
	FieldDiff
	FieldCommitMessage
	FieldError
	FieldBusy
	FieldAutoReload

	FieldAll = FieldRepository | FieldBranch | FieldChanges | FieldBranches |
		FieldSelection | FieldDiff | FieldCommitMessage | FieldError | FieldBusy | FieldAutoReload
)

func (f Field) Has(other Field) bool {
	return f&other != 0
}

// Snapshot is a copy of the repository state. It is safe to keep and read
// from any goroutine.
type Snapshot struct {
	RepositoryPath string
	BranchDisplay  string
	Changes        []git.FileChange
	Branches       []git.Branch
	Selected       *git.FileChange
	DiffText       string
	DiffVisible    bool
	DiffLoading    bool
	CommitMessage  string
	ErrorMessage   string
	ErrorProgress  float64
	BusyOperations []string
	AutoReload     bool
}

// Change is delivered to listeners after every state update.
type Change struct {
	Fields Field
	State  Snapshot
}

func (s Snapshot) HasRepository() bool { return s.RepositoryPath != "" }

func (s Snapshot) HasError() bool { return s.ErrorMessage != "" }

func (s Snapshot) Busy() bool { return len(s.BusyOperations) > 0 }

func (s Snapshot) ShowContent() bool { return s.HasRepository() }

func (s Snapshot) ShowEmptyChanges() bool { return s.HasRepository() && len(s.Changes) == 0 }

func (s Snapshot) ShowEmptyBranches() bool { return s.HasRepository() && len(s.Branches) == 0 }

// CanCommit mirrors the precondition checked by Repository.Commit.
func (s Snapshot) CanCommit() bool {
	return s.HasRepository() && strings.TrimSpace(s.CommitMessage) != ""
}

// CurrentBranch returns the branch marked as checked out, if any.
func (s Snapshot) CurrentBranch() (git.Branch, bool) {
	for _, b := range s.Branches {
		if b.IsCurrent {
			return b, true
		}
	}
	return git.Branch{}, false
}

// FormatBranch renders "<name> ↑<ahead> ↓<behind>".
func FormatBranch(b git.BranchStatus) string {
	return fmt.Sprintf("%s ↑%d ↓%d", b.Name, b.AheadBy, b.BehindBy)
}
