package git

import (
	"context"
	"testing"
)

func TestParseGitVersionOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want gitVersion
		ok   bool
	}{
		{name: "empty", in: "", ok: false},
		{name: "plain", in: "git version 2.44.0\n", want: gitVersion{major: 2, minor: 44, patch: 0}, ok: true},
		{name: "apple_git", in: "git version 2.39.3 (Apple Git-146)\n", want: gitVersion{major: 2, minor: 39, patch: 3}, ok: true},
		{name: "windows_suffix", in: "git version 2.39.3.windows.1\n", want: gitVersion{major: 2, minor: 39, patch: 3}, ok: true},
		{name: "no_prefix", in: "2.42.1\n", want: gitVersion{major: 2, minor: 42, patch: 1}, ok: true},
		{name: "no_patch", in: "git version 2.42\n", want: gitVersion{major: 2, minor: 42, patch: 0}, ok: true},
		{name: "invalid", in: "git version not-a-version\n", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseGitVersionOutput(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got=%+v)", ok, tt.ok, got)
			}
			if ok && got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	for out, wantErr := range map[string]bool{
		"git version 2.23.0\n": false,
		"git version 2.45.1\n": false,
		"git version 2.22.9\n": true,
		"garbage\n":            true,
	} {
		runner := &fakeRunner{runFunc: func(context.Context, string, string) (Result, error) {
			return Result{Stdout: out}, nil
		}}
		err := NewService(runner).CheckVersion(context.Background())
		if (err != nil) != wantErr {
			t.Fatalf("CheckVersion(%q) err = %v, wantErr %v", out, err, wantErr)
		}
		if runner.lastArgs() != "--version" {
			t.Fatalf("args = %q", runner.lastArgs())
		}
	}
}
