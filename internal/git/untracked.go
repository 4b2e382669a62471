package git

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const binarySniffLen = 8000

func untrackedDiff(repoPath, path string) (string, error) {
	full := filepath.Join(repoPath, filepath.FromSlash(path))
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat untracked file: %w", err)
	}
	if info.IsDir() {
		return "", nil
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read untracked file: %w", err)
	}
	return NewFileDiff(path, data)
}

// NewFileDiff renders data as a unified diff adding a new file at path.
func NewFileDiff(path string, data []byte) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "diff --git a/%s b/%s\n", path, path)
	b.WriteString("new file mode 100644\n")
	if len(data) == 0 {
		return b.String(), nil
	}
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		fmt.Fprintf(&b, "Binary files /dev/null and b/%s differ\n", path)
		return b.String(), nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	body, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		B:        difflib.SplitLines(text),
		FromFile: "/dev/null",
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", path, err)
	}
	b.WriteString(body)
	return b.String(), nil
}
