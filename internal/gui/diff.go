package gui

import (
	"strings"

	"github.com/thiagokokada/branchy/internal/git"
)

const (
	diffAddTag    = "diffAdd"
	diffDelTag    = "diffDel"
	diffHeaderTag = "diffHeader"
	diffHunkTag   = "diffHunk"
)

var diffTags = []string{diffAddTag, diffDelTag, diffHeaderTag, diffHunkTag}

func diffLineTag(line string) string {
	switch {
	case strings.HasPrefix(line, "diff --git"),
		strings.HasPrefix(line, "new file mode"),
		strings.HasPrefix(line, "deleted file mode"),
		strings.HasPrefix(line, "index "):
		return diffHeaderTag
	case strings.HasPrefix(line, "@@"):
		return diffHunkTag
	case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
		return diffAddTag
	case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
		return diffDelTag
	default:
		return ""
	}
}

// lineTag is a tag applied to a whole line of the diff text widget. Line
// numbers start at 1 as in Tk text indices.
type lineTag struct {
	Line int
	Tag  string
}

func diffLineTags(content string) []lineTag {
	if content == "" {
		return nil
	}
	var tags []lineTag
	for i, line := range strings.Split(content, "\n") {
		if tag := diffLineTag(line); tag != "" {
			tags = append(tags, lineTag{Line: i + 1, Tag: tag})
		}
	}
	return tags
}

// diffPathFromLine reports the b/ side path of a "diff --git" header. ok is
// false for any other line.
func diffPathFromLine(line string) (path string, ok bool) {
	const prefix = "diff --git "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	segment := strings.TrimSpace(line[len(prefix):])
	tokens, err := git.SplitArgs(segment)
	if err != nil {
		tokens = strings.Fields(strings.ReplaceAll(segment, `"`, ""))
	}
	if len(tokens) < 2 {
		return "", true
	}
	return normalizeDiffPath(tokens[len(tokens)-1]), true
}

func normalizeDiffPath(token string) string {
	if rest, ok := strings.CutPrefix(token, "b/"); ok {
		return rest
	}
	return strings.TrimPrefix(token, "a/")
}

// diffLineCode strips the +/-/space marker of a hunk line, returning the
// source code and the column it starts at.
func diffLineCode(line string) (code string, offset int, ok bool) {
	if line == "" {
		return "", 0, false
	}
	if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
		return "", 0, false
	}
	switch line[0] {
	case '+', '-', ' ':
		return line[1:], 1, true
	default:
		return "", 0, false
	}
}
