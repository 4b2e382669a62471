package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thiagokokada/branchy/internal/git"
	"github.com/thiagokokada/branchy/internal/model"
)

const (
	placeholderRowID   = "__placeholder__"
	noRepositoryLabel  = "Open a repository to see its changes."
	noChangesLabel     = "Working tree clean."
	noBranchesLabel    = "(no branches)"
	noDiffLabel        = "Select a change to view its diff."
	loadingDiffLabel   = "Loading diff..."
	emptyDiffLabel     = "No differences."
	readyStatus        = "Ready."
	stagedRowTag       = "staged"
	unstagedRowTag     = "unstaged"
	maxChangePathWidth = 120
)

type changeRow struct {
	ID     string
	Status string
	Staged string
	Path   string
	Tag    string
}

// buildChangeRows keeps one row per change, duplicates included, so a path
// that is both staged and modified shows twice.
func buildChangeRows(changes []git.FileChange) []changeRow {
	if len(changes) == 0 {
		return nil
	}
	rows := make([]changeRow, 0, len(changes))
	for i, c := range changes {
		staged := ""
		tag := unstagedRowTag
		if c.IsStaged {
			staged = "✓"
			tag = stagedRowTag
		}
		rows = append(rows, changeRow{
			ID:     strconv.Itoa(i),
			Status: c.Kind.Letter() + " " + c.Kind.String(),
			Staged: staged,
			Path:   truncateMiddle(c.Path, maxChangePathWidth),
			Tag:    tag,
		})
	}
	return rows
}

func changeIndex(id string, n int) (int, bool) {
	if id == "" || id == placeholderRowID {
		return 0, false
	}
	idx, err := strconv.Atoi(id)
	if err != nil || idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// selectedRowID finds the row matching sel by path and staging so the tree
// selection follows the model after a reload.
func selectedRowID(changes []git.FileChange, sel *git.FileChange) (string, bool) {
	if sel == nil {
		return "", false
	}
	for i := range changes {
		if sameChange(sel, &changes[i]) {
			return strconv.Itoa(i), true
		}
	}
	return "", false
}

func sameChange(a, b *git.FileChange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func placeholderLabel(s model.Snapshot) string {
	switch {
	case !s.HasRepository():
		return noRepositoryLabel
	case s.ShowEmptyChanges():
		return noChangesLabel
	default:
		return ""
	}
}

func branchEntries(branches []git.Branch) []string {
	if len(branches) == 0 {
		return nil
	}
	entries := make([]string, 0, len(branches))
	for _, b := range branches {
		marker := "  "
		if b.IsCurrent {
			marker = "* "
		}
		name := b.DisplayName()
		if b.IsRemote {
			name += " (remote)"
		}
		entries = append(entries, marker+name)
	}
	return entries
}

func currentBranchIndex(branches []git.Branch) int {
	for i, b := range branches {
		if b.IsCurrent {
			return i
		}
	}
	return -1
}

func diffPlaceholder(s model.Snapshot) string {
	switch {
	case s.Selected == nil:
		return noDiffLabel
	case s.DiffLoading:
		return loadingDiffLabel
	case s.DiffText == "":
		return emptyDiffLabel
	default:
		return ""
	}
}

func statusText(s model.Snapshot) string {
	if s.Busy() {
		return fmt.Sprintf("Working: %s...", strings.Join(s.BusyOperations, ", "))
	}
	if !s.HasRepository() {
		return readyStatus
	}
	return fmt.Sprintf("%d change(s), %d branch(es).", len(s.Changes), len(s.Branches))
}

func branchLabel(s model.Snapshot) string {
	if !s.HasRepository() || s.BranchDisplay == "" {
		return "Branch: -"
	}
	return "Branch: " + s.BranchDisplay
}

func autoReloadLabel(enabled bool) string {
	if enabled {
		return "Auto Reload: On"
	}
	return "Auto Reload: Off"
}

func windowTitle(path string) string {
	if path == "" {
		return "branchy"
	}
	return fmt.Sprintf("branchy - %s", path)
}

func truncateMiddle(s string, limit int) string {
	r := []rune(s)
	if limit < 5 || len(r) <= limit {
		return s
	}
	keep := limit - 3
	head := keep / 2
	tail := keep - head
	return string(r[:head]) + "..." + string(r[len(r)-tail:])
}
