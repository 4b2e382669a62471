// Package model holds the repository state shown by the GUI and the
// operations that change it. All methods are safe for concurrent use; long
// running operations block until git returns, so callers on a UI thread
// should invoke them from a goroutine.
package model

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/thiagokokada/branchy/internal/git"
)

// GitService is the subset of git.Service the repository relies on.
type GitService interface {
	IsRepository(ctx context.Context, path string) (bool, error)
	Status(ctx context.Context, repoPath string) (git.RepositoryStatus, error)
	Branches(ctx context.Context, repoPath string) ([]git.Branch, error)
	Checkout(ctx context.Context, repoPath, branch string) error
	Stage(ctx context.Context, repoPath, path string) error
	Unstage(ctx context.Context, repoPath, path string) error
	Commit(ctx context.Context, repoPath, message string) error
	Diff(ctx context.Context, repoPath string, change git.FileChange) (string, error)
}

// FolderPicker asks the user for a directory. ok is false when cancelled.
type FolderPicker interface {
	PickFolder(ctx context.Context) (path string, ok bool, err error)
}

type Watcher interface {
	Watch(path string) error
	Stop()
}

type Options struct {
	Service      GitService
	Picker       FolderPicker
	Watcher      Watcher
	AutoReload   bool
	DismissAfter time.Duration
	DismissTick  time.Duration
}

type Listener func(Change)

type reloadRequest struct {
	keepSelection      bool
	selectPath         string
	resetCommitMessage bool
}

type Repository struct {
	svc     GitService
	picker  FolderPicker
	watcher Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	diff    *DiffLoader
	notice  *ErrorNotice

	mu            sync.Mutex
	path          string
	branchDisplay string
	changes       []git.FileChange
	branches      []git.Branch
	selected      *git.FileChange
	commitMessage string
	autoReload    bool
	reloadGen     uint64
	busy          map[uuid.UUID]string

	notifyMu     sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

func NewRepository(opts Options) *Repository {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Repository{
		svc:        opts.Service,
		picker:     opts.Picker,
		watcher:    opts.Watcher,
		ctx:        ctx,
		cancel:     cancel,
		autoReload: opts.AutoReload,
		busy:       make(map[uuid.UUID]string),
		listeners:  make(map[int]Listener),
	}
	r.notice = NewErrorNotice(opts.DismissAfter, opts.DismissTick, func() { r.notify(FieldError) })
	r.diff = NewDiffLoader(ctx, r.fetchDiff, func() { r.notify(FieldDiff) }, r.reportError)
	return r
}

// Close stops the watcher and cancels every outstanding operation.
func (r *Repository) Close() {
	r.cancel()
	if r.watcher != nil {
		r.watcher.Stop()
	}
	r.diff.Close()
	r.notice.Close()
}

// Subscribe registers fn for state changes. fn runs on the goroutine that
// made the change and must not call back into the Repository synchronously.
func (r *Repository) Subscribe(fn Listener) (unsubscribe func()) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	id := r.nextListener
	r.nextListener++
	r.listeners[id] = fn
	return func() {
		r.notifyMu.Lock()
		defer r.notifyMu.Unlock()
		delete(r.listeners, id)
	}
}

func (r *Repository) notify(fields Field) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	if len(r.listeners) == 0 {
		return
	}
	change := Change{Fields: fields, State: r.Snapshot()}
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		r.listeners[id](change)
	}
}

func (r *Repository) Snapshot() Snapshot {
	r.mu.Lock()
	s := Snapshot{
		RepositoryPath: r.path,
		BranchDisplay:  r.branchDisplay,
		Changes:        slices.Clone(r.changes),
		Branches:       slices.Clone(r.branches),
		CommitMessage:  r.commitMessage,
		AutoReload:     r.autoReload,
	}
	if r.selected != nil {
		sel := *r.selected
		s.Selected = &sel
	}
	for _, op := range r.busy {
		s.BusyOperations = append(s.BusyOperations, op)
	}
	r.mu.Unlock()
	sort.Strings(s.BusyOperations)
	s.DiffText, s.DiffVisible, s.DiffLoading = r.diff.State()
	s.ErrorMessage, s.ErrorProgress = r.notice.State()
	return s
}

func (r *Repository) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Busy reports whether any operation is in flight.
func (r *Repository) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.busy) > 0
}

func (r *Repository) track(op string) (done func()) {
	id := uuid.New()
	r.mu.Lock()
	r.busy[id] = op
	r.mu.Unlock()
	slog.Debug("operation started", slog.String("op", op), slog.String("id", id.String()))
	r.notify(FieldBusy)
	return func() {
		r.mu.Lock()
		delete(r.busy, id)
		r.mu.Unlock()
		slog.Debug("operation finished", slog.String("op", op), slog.String("id", id.String()))
		r.notify(FieldBusy)
	}
}

func (r *Repository) reportError(err error) {
	msg, ok := describeError(err)
	if !ok {
		slog.Debug("operation cancelled", slog.Any("error", err))
		return
	}
	slog.Error("git operation failed", slog.Any("error", err))
	r.notice.Show(msg)
}

func (r *Repository) DismissError() {
	r.notice.Dismiss()
}

// Browse asks for a folder and opens it. Cancelling the picker changes
// nothing.
func (r *Repository) Browse(ctx context.Context) {
	done := r.track("browse")
	defer done()
	if r.picker == nil {
		return
	}
	path, ok, err := r.picker.PickFolder(ctx)
	if err != nil {
		r.reportError(err)
		return
	}
	if !ok || strings.TrimSpace(path) == "" {
		return
	}
	r.open(ctx, path)
}

// OpenRepository validates path and loads it, replacing the current one.
func (r *Repository) OpenRepository(ctx context.Context, path string) {
	done := r.track("open")
	defer done()
	r.open(ctx, path)
}

func (r *Repository) open(ctx context.Context, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	ok, err := r.svc.IsRepository(ctx, path)
	if err != nil {
		r.reportError(err)
		return
	}
	if !ok {
		slog.Debug("not a repository", slog.String("path", path))
		r.notice.Show(NotRepositoryMessage)
		return
	}
	r.notice.Dismiss()

	r.mu.Lock()
	r.path = path
	r.branchDisplay = ""
	r.changes = nil
	r.branches = nil
	r.selected = nil
	r.reloadGen++
	r.mu.Unlock()
	r.diff.Load(nil)
	r.notify(FieldRepository | FieldBranch | FieldChanges | FieldBranches | FieldSelection | FieldDiff)

	r.startWatcher(path)
	r.reloadStatus(ctx, reloadRequest{resetCommitMessage: true})
}

// CloseRepository returns to the no-repository state.
func (r *Repository) CloseRepository() {
	if r.watcher != nil {
		r.watcher.Stop()
	}
	r.mu.Lock()
	r.path = ""
	r.branchDisplay = ""
	r.changes = nil
	r.branches = nil
	r.selected = nil
	r.commitMessage = ""
	r.reloadGen++
	r.mu.Unlock()
	r.diff.Load(nil)
	r.notify(FieldAll &^ (FieldError | FieldBusy | FieldAutoReload))
}

// SetAutoReload turns the filesystem watcher on or off.
func (r *Repository) SetAutoReload(enabled bool) {
	r.mu.Lock()
	changed := r.autoReload != enabled
	r.autoReload = enabled
	path := r.path
	r.mu.Unlock()
	if !changed {
		return
	}
	if enabled {
		r.startWatcher(path)
	} else if r.watcher != nil {
		r.watcher.Stop()
	}
	r.notify(FieldAutoReload)
}

func (r *Repository) startWatcher(path string) {
	r.mu.Lock()
	enabled := r.autoReload
	r.mu.Unlock()
	if r.watcher == nil || !enabled || path == "" {
		return
	}
	if err := r.watcher.Watch(path); err != nil {
		slog.Error("auto reload disabled", slog.String("path", path), slog.Any("error", err))
	}
}

// Reload refreshes status and branches, keeping the selection and the
// commit message.
func (r *Repository) Reload(ctx context.Context) {
	r.reloadStatus(ctx, reloadRequest{keepSelection: true})
}

// HandleFilesChanged is the watcher callback. It is skipped while another
// operation runs or when no repository is open.
func (r *Repository) HandleFilesChanged() {
	r.mu.Lock()
	skip := r.path == "" || len(r.busy) > 0
	r.mu.Unlock()
	if skip {
		slog.Debug("skipping watcher reload")
		return
	}
	r.reloadStatus(r.ctx, reloadRequest{keepSelection: true})
}

func (r *Repository) reloadStatus(ctx context.Context, req reloadRequest) {
	r.mu.Lock()
	path := r.path
	if path == "" {
		r.mu.Unlock()
		return
	}
	r.reloadGen++
	gen := r.reloadGen
	selectPath := ""
	if req.keepSelection {
		selectPath = req.selectPath
		if selectPath == "" && r.selected != nil {
			selectPath = r.selected.Path
		}
	}
	r.mu.Unlock()

	done := r.track("reload")
	defer done()

	var (
		status   git.RepositoryStatus
		branches []git.Branch
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = r.svc.Status(gctx, path)
		return err
	})
	g.Go(func() error {
		var err error
		branches, err = r.svc.Branches(gctx, path)
		return err
	})
	if err := g.Wait(); err != nil {
		r.reportError(err)
		return
	}

	r.mu.Lock()
	if gen != r.reloadGen || path != r.path {
		r.mu.Unlock()
		slog.Debug("dropping stale reload", slog.String("path", path))
		return
	}
	r.branchDisplay = FormatBranch(status.Branch)
	r.changes = status.Changes
	r.branches = branches
	r.selected = findChange(r.changes, selectPath)
	fields := FieldBranch | FieldChanges | FieldBranches | FieldSelection | FieldDiff
	if req.resetCommitMessage {
		r.commitMessage = ""
		fields |= FieldCommitMessage
	}
	var selected *git.FileChange
	if r.selected != nil {
		sel := *r.selected
		selected = &sel
	}
	r.mu.Unlock()

	r.diff.Load(selected)
	r.notify(fields)
}

func findChange(changes []git.FileChange, path string) *git.FileChange {
	if path == "" {
		return nil
	}
	for i := range changes {
		if changes[i].Path == path {
			c := changes[i]
			return &c
		}
	}
	return nil
}

// Select makes change the current selection and loads its diff. A nil
// change clears the diff immediately.
func (r *Repository) Select(change *git.FileChange) {
	r.mu.Lock()
	if change == nil || r.path == "" {
		r.selected = nil
		change = nil
	} else {
		c := *change
		r.selected = &c
	}
	r.mu.Unlock()
	r.diff.Load(change)
	r.notify(FieldSelection | FieldDiff)
}

func (r *Repository) fetchDiff(ctx context.Context, change git.FileChange) (string, error) {
	path := r.Path()
	if path == "" {
		return "", context.Canceled
	}
	return r.svc.Diff(ctx, path, change)
}

func (r *Repository) SetCommitMessage(msg string) {
	r.mu.Lock()
	if r.commitMessage == msg {
		r.mu.Unlock()
		return
	}
	r.commitMessage = msg
	r.mu.Unlock()
	r.notify(FieldCommitMessage)
}

func (r *Repository) Stage(ctx context.Context, change *git.FileChange) {
	r.applyChange(ctx, "stage", change, r.svc.Stage)
}

func (r *Repository) Unstage(ctx context.Context, change *git.FileChange) {
	r.applyChange(ctx, "unstage", change, r.svc.Unstage)
}

func (r *Repository) applyChange(ctx context.Context, op string, change *git.FileChange, fn func(context.Context, string, string) error) {
	path := r.Path()
	if change == nil || path == "" {
		return
	}
	done := r.track(op)
	defer done()
	if err := fn(ctx, path, change.Path); err != nil {
		r.reportError(err)
		return
	}
	r.reloadStatus(ctx, reloadRequest{keepSelection: true, selectPath: change.Path})
}

// Checkout switches to branch unless it is already current.
func (r *Repository) Checkout(ctx context.Context, branch *git.Branch) {
	path := r.Path()
	if branch == nil || branch.IsCurrent || path == "" {
		return
	}
	done := r.track("checkout")
	defer done()
	if err := r.svc.Checkout(ctx, path, branch.Name); err != nil {
		r.reportError(err)
		return
	}
	r.reloadStatus(ctx, reloadRequest{resetCommitMessage: true})
}

// Commit records the staged changes with the current commit message.
func (r *Repository) Commit(ctx context.Context) {
	r.mu.Lock()
	path, msg := r.path, r.commitMessage
	r.mu.Unlock()
	if path == "" || strings.TrimSpace(msg) == "" {
		return
	}
	done := r.track("commit")
	defer done()
	if err := r.svc.Commit(ctx, path, msg); err != nil {
		r.reportError(err)
		return
	}
	r.reloadStatus(ctx, reloadRequest{resetCommitMessage: true})
}
