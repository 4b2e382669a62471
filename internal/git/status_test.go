package git

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		branch  BranchStatus
		changes []FileChange
	}{
		{
			name:   "empty",
			in:     "",
			branch: BranchStatus{Name: "HEAD"},
		},
		{
			name:   "no_branch_head",
			in:     "# branch.oid abc123\n? a.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "a.txt", Kind: ChangeUntracked},
			},
		},
		{
			name:   "branch_and_ahead_behind",
			in:     "# branch.oid abc\n# branch.head main\n# branch.upstream origin/main\n# branch.ab +3 -2\n",
			branch: BranchStatus{Name: "main", AheadBy: 3, BehindBy: 2},
		},
		{
			name:   "ahead_behind_garbage",
			in:     "# branch.head dev\n# branch.ab +x -1\n",
			branch: BranchStatus{Name: "dev", BehindBy: 1},
		},
		{
			name:   "untracked",
			in:     "? untracked.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "untracked.txt", Kind: ChangeUntracked},
			},
		},
		{
			name:   "staged_modified",
			in:     "1 M. N... 100644 100644 100644 abc123 def456 staged.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "staged.txt", Kind: ChangeModified, IsStaged: true},
			},
		},
		{
			name:   "unstaged_modified",
			in:     "1 .M N... 100644 100644 100644 abc123 def456 unstaged.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "unstaged.txt", Kind: ChangeModified},
			},
		},
		{
			name:   "added",
			in:     "1 A. N... 000000 100644 100644 000000 abc123 newfile.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "newfile.txt", Kind: ChangeAdded, IsStaged: true},
			},
		},
		{
			name:   "deleted_in_worktree",
			in:     "1 .D N... 100644 100644 000000 abc123 abc123 gone.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "gone.txt", Kind: ChangeDeleted},
			},
		},
		{
			name:   "renamed_takes_new_name",
			in:     "2 R. N... 100644 100644 100644 abc123 def456 R100 newname.txt\toldname.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "newname.txt", Kind: ChangeRenamed, IsStaged: true},
			},
		},
		{
			name:   "renamed_in_worktree",
			in:     "2 .R N... 100644 100644 100644 abc123 abc123 R087 src/new.go\tsrc/old.go\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "src/new.go", Kind: ChangeRenamed},
			},
		},
		{
			name:   "renamed_with_spaces",
			in:     "2 R. N... 100644 100644 100644 abc123 def456 R100 new name.txt\told name.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "new name.txt", Kind: ChangeRenamed, IsStaged: true},
			},
		},
		{
			name:   "path_with_spaces",
			in:     "1 .M N... 100644 100644 100644 abc123 def456 docs/read me.md\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "docs/read me.md", Kind: ChangeModified},
			},
		},
		{
			name:   "added_wins_over_deleted",
			in:     "1 AD N... 000000 100644 000000 000000 abc123 flip.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "flip.txt", Kind: ChangeAdded, IsStaged: true},
			},
		},
		{
			name:   "short_line_fallback",
			in:     "1 M. broken\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "1 M. broken", Kind: ChangeModified},
			},
		},
		{
			name:   "crlf_and_noise",
			in:     "# branch.head main\r\n\r\nu UU N... 1 2 3 4 a b c conflict.txt\r\n! ignored.log\r\n1 MM N... 100644 100644 100644 abc def both.txt\r\n",
			branch: BranchStatus{Name: "main"},
			changes: []FileChange{
				{Path: "both.txt", Kind: ChangeModified, IsStaged: true},
			},
		},
		{
			name:   "duplicates_preserved",
			in:     "1 M. N... 100644 100644 100644 abc def same.txt\n1 .M N... 100644 100644 100644 abc def same.txt\n",
			branch: BranchStatus{Name: "HEAD"},
			changes: []FileChange{
				{Path: "same.txt", Kind: ChangeModified, IsStaged: true},
				{Path: "same.txt", Kind: ChangeModified},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseStatus("/repo", tt.in)
			if got.RepositoryPath != "/repo" {
				t.Fatalf("RepositoryPath = %q, want /repo", got.RepositoryPath)
			}
			if got.Branch != tt.branch {
				t.Fatalf("branch = %+v, want %+v", got.Branch, tt.branch)
			}
			if !reflect.DeepEqual(got.Changes, tt.changes) {
				t.Fatalf("changes = %+v, want %+v", got.Changes, tt.changes)
			}
		})
	}
}

func TestParseStatusKeepsLinesAfterHugeLine(t *testing.T) {
	t.Parallel()

	huge := "? " + strings.Repeat("x", 2<<20)
	raw := "# branch.head main\n" + huge + "\n1 .M N... 100644 100644 100644 abc def after.txt\n"
	got := ParseStatus("/repo", raw)
	if len(got.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(got.Changes))
	}
	want := FileChange{Path: "after.txt", Kind: ChangeModified}
	if got.Changes[1] != want {
		t.Fatalf("last change = %+v, want %+v", got.Changes[1], want)
	}
}

func TestChangeKindLetter(t *testing.T) {
	t.Parallel()

	want := map[ChangeKind]string{
		ChangeModified:  "M",
		ChangeAdded:     "A",
		ChangeDeleted:   "D",
		ChangeRenamed:   "R",
		ChangeUntracked: "?",
	}
	for kind, letter := range want {
		if got := kind.Letter(); got != letter {
			t.Fatalf("%s.Letter() = %q, want %q", kind, got, letter)
		}
	}
}
