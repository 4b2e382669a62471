package git

import (
	"context"
	"sync"
)

type runCall struct {
	dir  string
	args string
}

type fakeRunner struct {
	mu      sync.Mutex
	calls   []runCall
	runFunc func(ctx context.Context, dir, args string) (Result, error)
}

func (f *fakeRunner) Run(ctx context.Context, dir, args string) (Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, runCall{dir: dir, args: args})
	fn := f.runFunc
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, dir, args)
	}
	return Result{}, nil
}

func (f *fakeRunner) lastArgs() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1].args
}
