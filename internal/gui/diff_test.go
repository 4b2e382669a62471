package gui

import (
	"reflect"
	"testing"
)

func TestDiffLineTag(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "", want: ""},
		{line: "diff --git a/a b/a", want: diffHeaderTag},
		{line: "new file mode 100644", want: diffHeaderTag},
		{line: "index 0000000..e69de29", want: diffHeaderTag},
		{line: "@@ -1,2 +1,3 @@ func main()", want: diffHunkTag},
		{line: "+added", want: diffAddTag},
		{line: "+++ b/file", want: ""},
		{line: "-removed", want: diffDelTag},
		{line: "--- a/file", want: ""},
		{line: " context", want: ""},
		{line: "Binary files /dev/null and b/x differ", want: ""},
	}
	for _, tc := range tests {
		if got := diffLineTag(tc.line); got != tc.want {
			t.Fatalf("line=%q: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestDiffLineTags(t *testing.T) {
	content := "diff --git a/x b/x\n--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n same"
	got := diffLineTags(content)
	want := []lineTag{
		{Line: 1, Tag: diffHeaderTag},
		{Line: 4, Tag: diffHunkTag},
		{Line: 5, Tag: diffDelTag},
		{Line: 6, Tag: diffAddTag},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("diffLineTags = %#v, want %#v", got, want)
	}
	if diffLineTags("") != nil {
		t.Fatalf("expected no tags for empty diff")
	}
}

func TestNormalizeDiffPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a/foo", want: "foo"},
		{in: "b/foo", want: "foo"},
		{in: "b/a/foo", want: "a/foo"},
		{in: "foo", want: "foo"},
	}
	for _, tc := range tests {
		if got := normalizeDiffPath(tc.in); got != tc.want {
			t.Fatalf("in=%q: want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestDiffPathFromLine(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{line: "other", want: "", wantOK: false},
		{line: "diff --git", want: "", wantOK: false},
		{line: "diff --git ", want: "", wantOK: true},
		{line: "diff --git a/foo b/foo", want: "foo", wantOK: true},
		{line: "diff --git \"a/foo bar\" \"b/foo bar\"", want: "foo bar", wantOK: true},
		{line: "diff --git a/x \"b/unterminated", want: "unterminated", wantOK: true},
	}
	for _, tc := range tests {
		got, ok := diffPathFromLine(tc.line)
		if ok != tc.wantOK {
			t.Fatalf("line=%q: want ok=%v, got %v (path=%q)", tc.line, tc.wantOK, ok, got)
		}
		if ok && got != tc.want {
			t.Fatalf("line=%q: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestDiffLineCode(t *testing.T) {
	tests := []struct {
		line      string
		wantCode  string
		wantOff   int
		wantMatch bool
	}{
		{line: "", wantMatch: false},
		{line: "diff --git a/x b/x", wantMatch: false},
		{line: "+foo", wantCode: "foo", wantOff: 1, wantMatch: true},
		{line: "-bar", wantCode: "bar", wantOff: 1, wantMatch: true},
		{line: " baz", wantCode: "baz", wantOff: 1, wantMatch: true},
		{line: "+++ b/x", wantMatch: false},
		{line: "--- a/x", wantMatch: false},
		{line: "\\ No newline at end of file", wantMatch: false},
	}
	for _, tc := range tests {
		code, off, ok := diffLineCode(tc.line)
		if ok != tc.wantMatch {
			t.Fatalf("line=%q: want ok=%v, got %v", tc.line, tc.wantMatch, ok)
		}
		if !ok {
			continue
		}
		if code != tc.wantCode || off != tc.wantOff {
			t.Fatalf("line=%q: want (%q,%d), got (%q,%d)", tc.line, tc.wantCode, tc.wantOff, code, off)
		}
	}
}
