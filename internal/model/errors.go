package model

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/thiagokokada/branchy/internal/git"
)

const (
	DefaultDismissAfter = 3000 * time.Millisecond
	DefaultDismissTick  = 100 * time.Millisecond

	NotRepositoryMessage = "The selected folder is not a Git repository."
	unexpectedPrefix     = "An unexpected error occurred: "
)

// describeError converts err into the message shown to the user. ok is false
// for cancellations, which are never shown.
func describeError(err error) (msg string, ok bool) {
	if err == nil || errors.Is(err, context.Canceled) {
		return "", false
	}
	if errors.Is(err, git.ErrNotRepository) {
		return NotRepositoryMessage, true
	}
	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Message(), true
	}
	return unexpectedPrefix + err.Error(), true
}

// ErrorNotice holds a single error message that clears itself after a
// countdown. Progress runs from 100 down to 0 in equal steps per tick.
type ErrorNotice struct {
	total    time.Duration
	tick     time.Duration
	onChange func()

	mu       sync.Mutex
	message  string
	progress float64
	gen      uint64
	stop     chan struct{}
}

func NewErrorNotice(total, tick time.Duration, onChange func()) *ErrorNotice {
	if total <= 0 {
		total = DefaultDismissAfter
	}
	if tick <= 0 || tick > total {
		tick = DefaultDismissTick
		if tick > total {
			tick = total
		}
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &ErrorNotice{total: total, tick: tick, onChange: onChange, progress: 100}
}

// Show replaces the current message and restarts the countdown.
func (n *ErrorNotice) Show(msg string) {
	n.mu.Lock()
	n.stopLocked()
	n.message = msg
	n.progress = 100
	n.gen++
	gen := n.gen
	stop := make(chan struct{})
	n.stop = stop
	n.mu.Unlock()
	n.onChange()
	go n.countdown(gen, stop)
}

// Dismiss clears the message and resets progress to 100.
func (n *ErrorNotice) Dismiss() {
	n.mu.Lock()
	hadMessage := n.message != ""
	n.stopLocked()
	n.gen++
	n.message = ""
	n.progress = 100
	n.mu.Unlock()
	if hadMessage {
		n.onChange()
	}
}

func (n *ErrorNotice) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	n.gen++
}

func (n *ErrorNotice) State() (msg string, progress float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.progress
}

func (n *ErrorNotice) stopLocked() {
	if n.stop != nil {
		close(n.stop)
		n.stop = nil
	}
}

func (n *ErrorNotice) countdown(gen uint64, stop <-chan struct{}) {
	steps := int(n.total / n.tick)
	if steps < 1 {
		steps = 1
	}
	ticker := time.NewTicker(n.tick)
	defer ticker.Stop()
	for i := 1; ; i++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		n.mu.Lock()
		if gen != n.gen {
			n.mu.Unlock()
			return
		}
		done := i >= steps
		if done {
			n.message = ""
			n.progress = 100
			n.stop = nil
		} else {
			n.progress = 100 * float64(steps-i) / float64(steps)
		}
		n.mu.Unlock()
		n.onChange()
		if done {
			return
		}
	}
}
