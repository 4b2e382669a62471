package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Layout describes where a work tree and its metadata directory live.
type Layout struct {
	Root   string
	GitDir string
}

// Locate finds the repository enclosing path. Linked worktrees and
// submodules resolve GitDir through their .git file.
func Locate(path string) (Layout, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Layout{}, err
	}
	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return Layout{}, ErrNotRepository
		}
		return Layout{}, fmt.Errorf("open repository %s: %w", abs, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return Layout{}, ErrNotRepository
		}
		return Layout{}, fmt.Errorf("open worktree %s: %w", abs, err)
	}
	layout := Layout{Root: wt.Filesystem.Root()}
	layout.GitDir = filepath.Join(layout.Root, gogit.GitDirName)
	if st, ok := repo.Storer.(*filesystem.Storage); ok {
		layout.GitDir = st.Filesystem().Root()
	}
	return layout, nil
}
