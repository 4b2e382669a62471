package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

const DefaultBinary = "git"

// Result is the outcome of one git invocation. A non-zero ExitCode is not an
// error at this level.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a git subcommand inside dir. args is a single argument
// string where double quotes group words, e.g. `add "my file.txt"`.
type Runner interface {
	Run(ctx context.Context, dir string, args string) (Result, error)
}

// CLI runs the installed git binary.
type CLI struct {
	Binary  string
	Timeout time.Duration
}

func NewCLI(binary string, timeout time.Duration) *CLI {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &CLI{Binary: binary, Timeout: timeout}
}

func (c *CLI) Run(ctx context.Context, dir string, args string) (Result, error) {
	argv, err := SplitArgs(args)
	if err != nil {
		return Result{}, fmt.Errorf("git %s: %w", args, err)
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	cmd := exec.CommandContext(ctx, binary, argv...)
	cmd.Dir = dir
	// status must not rewrite the index, or every reload would wake the watcher.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "GIT_TERMINAL_PROMPT=0")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("git %s: %w", args, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("git %s: %w", args, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	slog.Debug("git command",
		slog.String("args", args),
		slog.String("dir", dir),
		slog.Int("exit", res.ExitCode),
		slog.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// SplitArgs tokenizes an argument string. Whitespace separates words outside
// double quotes; inside quotes \" and \\ are unescaped.
func SplitArgs(s string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inToken bool
		quoted  bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quoted && c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\'):
			i++
			cur.WriteByte(s[i])
		case c == '"':
			quoted = !quoted
			inToken = true
		case !quoted && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}

// quoteArg wraps s in double quotes, escaping embedded quotes and backslashes.
func quoteArg(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
