package model

import (
	"context"
	"errors"
	"sync"

	"github.com/thiagokokada/branchy/internal/git"
)

type fakeService struct {
	mu sync.Mutex

	isRepositoryFunc func(ctx context.Context, path string) (bool, error)
	statusFunc       func(ctx context.Context, repoPath string) (git.RepositoryStatus, error)
	branchesFunc     func(ctx context.Context, repoPath string) ([]git.Branch, error)
	checkoutFunc     func(ctx context.Context, repoPath, branch string) error
	stageFunc        func(ctx context.Context, repoPath, path string) error
	unstageFunc      func(ctx context.Context, repoPath, path string) error
	commitFunc       func(ctx context.Context, repoPath, message string) error
	diffFunc         func(ctx context.Context, repoPath string, change git.FileChange) (string, error)

	statusCalls int
	checkouts   []string
	staged      []string
	unstaged    []string
	commits     []string
	diffs       []git.FileChange
}

func (f *fakeService) IsRepository(ctx context.Context, path string) (bool, error) {
	if f.isRepositoryFunc != nil {
		return f.isRepositoryFunc(ctx, path)
	}
	return true, nil
}

func (f *fakeService) Status(ctx context.Context, repoPath string) (git.RepositoryStatus, error) {
	f.mu.Lock()
	f.statusCalls++
	f.mu.Unlock()
	if f.statusFunc != nil {
		return f.statusFunc(ctx, repoPath)
	}
	return git.RepositoryStatus{RepositoryPath: repoPath, Branch: git.BranchStatus{Name: "main"}}, nil
}

func (f *fakeService) Branches(ctx context.Context, repoPath string) ([]git.Branch, error) {
	if f.branchesFunc != nil {
		return f.branchesFunc(ctx, repoPath)
	}
	return []git.Branch{{Name: "main", IsCurrent: true}}, nil
}

func (f *fakeService) Checkout(ctx context.Context, repoPath, branch string) error {
	f.mu.Lock()
	f.checkouts = append(f.checkouts, branch)
	f.mu.Unlock()
	if f.checkoutFunc != nil {
		return f.checkoutFunc(ctx, repoPath, branch)
	}
	return nil
}

func (f *fakeService) Stage(ctx context.Context, repoPath, path string) error {
	f.mu.Lock()
	f.staged = append(f.staged, path)
	f.mu.Unlock()
	if f.stageFunc != nil {
		return f.stageFunc(ctx, repoPath, path)
	}
	return nil
}

func (f *fakeService) Unstage(ctx context.Context, repoPath, path string) error {
	f.mu.Lock()
	f.unstaged = append(f.unstaged, path)
	f.mu.Unlock()
	if f.unstageFunc != nil {
		return f.unstageFunc(ctx, repoPath, path)
	}
	return nil
}

func (f *fakeService) Commit(ctx context.Context, repoPath, message string) error {
	f.mu.Lock()
	f.commits = append(f.commits, message)
	f.mu.Unlock()
	if f.commitFunc != nil {
		return f.commitFunc(ctx, repoPath, message)
	}
	return nil
}

func (f *fakeService) Diff(ctx context.Context, repoPath string, change git.FileChange) (string, error) {
	f.mu.Lock()
	f.diffs = append(f.diffs, change)
	f.mu.Unlock()
	if f.diffFunc != nil {
		return f.diffFunc(ctx, repoPath, change)
	}
	return "diff of " + change.Path, nil
}

func (f *fakeService) StatusCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls
}

type fakePicker struct {
	path  string
	ok    bool
	err   error
	calls int
}

func (f *fakePicker) PickFolder(context.Context) (string, bool, error) {
	f.calls++
	return f.path, f.ok, f.err
}

type fakeWatcher struct {
	mu      sync.Mutex
	watched []string
	stops   int
	err     error
}

func (f *fakeWatcher) Watch(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watched = append(f.watched, path)
	return f.err
}

func (f *fakeWatcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeWatcher) Watched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.watched...)
}

func (f *fakeWatcher) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

var errBoom = errors.New("boom")
