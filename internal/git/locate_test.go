package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestLocateFindsRootFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	layout, err := Locate(sub)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if !samePath(t, layout.Root, dir) {
		t.Fatalf("Root = %q, want %q", layout.Root, dir)
	}
	if !samePath(t, layout.GitDir, filepath.Join(dir, ".git")) {
		t.Fatalf("GitDir = %q", layout.GitDir)
	}
}

func TestLocateNotRepository(t *testing.T) {
	t.Parallel()

	_, err := Locate(t.TempDir())
	if !errors.Is(err, ErrNotRepository) {
		t.Fatalf("expected ErrNotRepository, got %v", err)
	}
}

func samePath(t *testing.T, a, b string) bool {
	t.Helper()
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		t.Fatal(err)
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		t.Fatal(err)
	}
	return ra == rb
}
