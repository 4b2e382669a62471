// Package watch reports debounced changes below a git work tree.
package watch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thiagokokada/branchy/internal/debounce"
	"github.com/thiagokokada/branchy/internal/git"
)

const DefaultDebounce = 300 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher calls its change callback once a burst of filesystem events below
// the watched work tree has settled.
type Watcher struct {
	delay    time.Duration
	onChange func()

	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	layout   git.Layout
	debounce *debounce.Debouncer
	done     chan struct{}
}

type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

func New(onChange func(), opts ...Option) *Watcher {
	w := &Watcher{delay: DefaultDebounce, onChange: onChange}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch replaces any previous watch with one rooted at the work tree
// containing path.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()

	layout, err := git.Locate(path)
	if err != nil {
		slog.Debug("watch: locate repository", slog.String("path", path), slog.Any("error", err))
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return absErr
		}
		layout = git.Layout{Root: abs, GitDir: filepath.Join(abs, ".git")}
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	if err := fsw.Add(layout.Root); err != nil {
		return fmt.Errorf("watch %s: %w", layout.Root, errors.Join(err, fsw.Close()))
	}
	addTree(fsw, layout, layout.Root)
	if info, err := os.Stat(layout.GitDir); err == nil && info.IsDir() {
		if err := fsw.Add(layout.GitDir); err != nil {
			slog.Error("watch git dir", slog.String("path", layout.GitDir), slog.Any("error", err))
		}
	}

	done := make(chan struct{})
	w.fsw = fsw
	w.layout = layout
	w.done = done
	var d *debounce.Debouncer
	d = debounce.New(w.delay, func() { w.flush(d) })
	w.debounce = d
	go w.loop(fsw, done)
	slog.Debug("watching repository",
		slog.String("root", layout.Root),
		slog.String("gitdir", layout.GitDir),
	)
	return nil
}

// Stop tears down the current watch. It is safe to call repeatedly.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if w.debounce != nil {
		if w.debounce.Pending() {
			slog.Debug("watch: dropping pending change")
		}
		w.debounce.Stop()
		w.debounce = nil
	}
	if w.fsw != nil {
		if err := w.fsw.Close(); err != nil {
			slog.Error("watcher close", slog.Any("error", err))
		}
		w.fsw = nil
	}
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(fsw, ev)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Error("fsnotify error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&relevantOps == 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw != fsw || w.debounce == nil {
		return
	}
	if shouldIgnore(w.layout.GitDir, ev.Name) {
		return
	}
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			addTree(fsw, w.layout, ev.Name)
		}
	}
	slog.Debug("fsnotify event",
		slog.String("op", ev.Op.String()),
		slog.String("path", ev.Name),
	)
	w.debounce.Trigger()
}

// flush runs the callback unless d was replaced or stopped after its timer
// fired.
func (w *Watcher) flush(d *debounce.Debouncer) {
	w.mu.Lock()
	if w.debounce != d {
		w.mu.Unlock()
		return
	}
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// addTree registers every directory below root, skipping git metadata.
func addTree(fsw *fsnotify.Watcher, layout git.Layout, root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("watch walk", slog.String("path", path), slog.Any("error", err))
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" || path == layout.GitDir {
			return fs.SkipDir
		}
		if path == layout.Root {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			slog.Debug("watch add", slog.String("path", path), slog.Any("error", err))
		}
		return nil
	})
	if err != nil {
		slog.Debug("watch walk", slog.String("root", root), slog.Any("error", err))
	}
}

// shouldIgnore drops events inside the git metadata directory except for
// HEAD (branch switches) and index (staging).
func shouldIgnore(gitDir, name string) bool {
	rel, err := filepath.Rel(gitDir, name)
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	if rel == "." {
		return true
	}
	base := filepath.Base(name)
	return base != "HEAD" && base != "index"
}
