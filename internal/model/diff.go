package model

import (
	"context"
	"errors"
	"sync"

	"github.com/thiagokokada/branchy/internal/git"
)

// DiffFetcher returns the diff text for a single change.
type DiffFetcher func(ctx context.Context, change git.FileChange) (string, error)

// DiffLoader keeps at most one diff fetch in flight. Each Load cancels the
// previous fetch, and a result is applied only while its load is the latest.
//
// Load updates the state synchronously without calling onChange; onChange
// fires when an asynchronous fetch settles.
type DiffLoader struct {
	base     context.Context
	fetch    DiffFetcher
	onChange func()
	onError  func(error)

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	text    string
	visible bool
	loading bool
}

func NewDiffLoader(ctx context.Context, fetch DiffFetcher, onChange func(), onError func(error)) *DiffLoader {
	if onChange == nil {
		onChange = func() {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &DiffLoader{base: ctx, fetch: fetch, onChange: onChange, onError: onError}
}

// Load starts fetching the diff of change. A nil change clears the diff.
func (l *DiffLoader) Load(change *git.FileChange) {
	l.mu.Lock()
	l.cancelLocked()
	l.gen++
	gen := l.gen
	l.text = ""
	if change == nil {
		l.visible = false
		l.loading = false
		l.mu.Unlock()
		return
	}
	l.visible = true
	l.loading = true
	ctx, cancel := context.WithCancel(l.base)
	l.cancel = cancel
	target := *change
	l.mu.Unlock()

	go l.run(ctx, cancel, gen, target)
}

// Close cancels any in-flight fetch.
func (l *DiffLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
	l.gen++
	l.loading = false
}

func (l *DiffLoader) State() (text string, visible, loading bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text, l.visible, l.loading
}

func (l *DiffLoader) cancelLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *DiffLoader) run(ctx context.Context, cancel context.CancelFunc, gen uint64, change git.FileChange) {
	defer cancel()
	text, err := l.fetch(ctx, change)

	l.mu.Lock()
	if gen != l.gen || ctx.Err() != nil {
		l.mu.Unlock()
		return
	}
	l.cancel = nil
	l.loading = false
	if err != nil {
		l.text = ""
	} else {
		l.text = text
	}
	l.mu.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		l.onError(err)
	}
	l.onChange()
}
