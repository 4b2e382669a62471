package gui

import (
	"strings"
	"testing"

	"github.com/thiagokokada/branchy/internal/git"
	"github.com/thiagokokada/branchy/internal/model"
)

func TestBuildChangeRows(t *testing.T) {
	changes := []git.FileChange{
		{Path: "a.txt", Kind: git.ChangeModified, IsStaged: true},
		{Path: "a.txt", Kind: git.ChangeModified},
		{Path: "new.go", Kind: git.ChangeUntracked},
	}
	rows := buildChangeRows(changes)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != "0" || rows[0].Staged != "✓" || rows[0].Tag != stagedRowTag {
		t.Fatalf("unexpected staged row: %#v", rows[0])
	}
	if rows[1].Staged != "" || rows[1].Tag != unstagedRowTag {
		t.Fatalf("unexpected unstaged row: %#v", rows[1])
	}
	if !strings.HasPrefix(rows[2].Status, "?") {
		t.Fatalf("unexpected untracked status: %q", rows[2].Status)
	}
	if buildChangeRows(nil) != nil {
		t.Fatalf("expected nil rows for no changes")
	}
}

func TestChangeIndex(t *testing.T) {
	tests := []struct {
		id   string
		n    int
		want int
		ok   bool
	}{
		{id: "0", n: 2, want: 0, ok: true},
		{id: "1", n: 2, want: 1, ok: true},
		{id: "2", n: 2},
		{id: "-1", n: 2},
		{id: placeholderRowID, n: 2},
		{id: "", n: 2},
		{id: "abc", n: 2},
	}
	for _, tc := range tests {
		got, ok := changeIndex(tc.id, tc.n)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("changeIndex(%q, %d) = %d, %v; want %d, %v", tc.id, tc.n, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSelectedRowID(t *testing.T) {
	changes := []git.FileChange{
		{Path: "a.txt", Kind: git.ChangeModified, IsStaged: true},
		{Path: "a.txt", Kind: git.ChangeModified},
	}
	sel := changes[1]
	id, ok := selectedRowID(changes, &sel)
	if !ok || id != "1" {
		t.Fatalf("expected row 1, got %q %v", id, ok)
	}
	if _, ok := selectedRowID(changes, nil); ok {
		t.Fatalf("nil selection should not match")
	}
	missing := git.FileChange{Path: "b.txt"}
	if _, ok := selectedRowID(changes, &missing); ok {
		t.Fatalf("unknown path should not match")
	}
}

func TestPlaceholderLabel(t *testing.T) {
	if got := placeholderLabel(model.Snapshot{}); got != noRepositoryLabel {
		t.Fatalf("no repository: got %q", got)
	}
	if got := placeholderLabel(model.Snapshot{RepositoryPath: "/r"}); got != noChangesLabel {
		t.Fatalf("clean repository: got %q", got)
	}
	s := model.Snapshot{RepositoryPath: "/r", Changes: []git.FileChange{{Path: "a"}}}
	if got := placeholderLabel(s); got != "" {
		t.Fatalf("with changes: got %q", got)
	}
}

func TestBranchEntries(t *testing.T) {
	branches := []git.Branch{
		{Name: "main", IsCurrent: true},
		{Name: "feature"},
		{Name: "origin/main", IsRemote: true},
	}
	got := branchEntries(branches)
	want := []string{"* main", "  feature", "  main (remote)"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("branchEntries = %q, want %q", got, want)
	}
	if idx := currentBranchIndex(branches); idx != 0 {
		t.Fatalf("currentBranchIndex = %d", idx)
	}
	if idx := currentBranchIndex(branches[1:]); idx != -1 {
		t.Fatalf("currentBranchIndex without current = %d", idx)
	}
}

func TestDiffPlaceholder(t *testing.T) {
	sel := &git.FileChange{Path: "a"}
	tests := []struct {
		name string
		snap model.Snapshot
		want string
	}{
		{name: "no selection", snap: model.Snapshot{}, want: noDiffLabel},
		{name: "loading", snap: model.Snapshot{Selected: sel, DiffLoading: true}, want: loadingDiffLabel},
		{name: "empty", snap: model.Snapshot{Selected: sel}, want: emptyDiffLabel},
		{name: "text", snap: model.Snapshot{Selected: sel, DiffText: "diff"}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := diffPlaceholder(tc.snap); got != tc.want {
				t.Fatalf("diffPlaceholder = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatusText(t *testing.T) {
	if got := statusText(model.Snapshot{}); got != readyStatus {
		t.Fatalf("idle without repository: %q", got)
	}
	busy := model.Snapshot{BusyOperations: []string{"reload", "stage"}}
	if got := statusText(busy); got != "Working: reload, stage..." {
		t.Fatalf("busy: %q", got)
	}
	loaded := model.Snapshot{RepositoryPath: "/r", Changes: make([]git.FileChange, 2), Branches: make([]git.Branch, 1)}
	if got := statusText(loaded); got != "2 change(s), 1 branch(es)." {
		t.Fatalf("loaded: %q", got)
	}
}

func TestBranchLabel(t *testing.T) {
	if got := branchLabel(model.Snapshot{}); got != "Branch: -" {
		t.Fatalf("no repository: %q", got)
	}
	s := model.Snapshot{RepositoryPath: "/r", BranchDisplay: "main ↑1 ↓0"}
	if got := branchLabel(s); got != "Branch: main ↑1 ↓0" {
		t.Fatalf("loaded: %q", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("short", 10); got != "short" {
		t.Fatalf("short string changed: %q", got)
	}
	got := truncateMiddle("abcdefghijklmnop", 10)
	if got != "abc...mnop" {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if len([]rune(got)) != 10 {
		t.Fatalf("expected 10 runes, got %d", len([]rune(got)))
	}
}
