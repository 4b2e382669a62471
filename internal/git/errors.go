package git

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrNotRepository = errors.New("not a Git repository")

const unknownErrorMessage = "An unknown error occurred."

// CommandError reports a git invocation that exited with a non-zero status.
type CommandError struct {
	Args     string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("git %s: exit status %d", e.Args, e.ExitCode)
	}
	return fmt.Sprintf("git %s: exit status %d: %s", e.Args, e.ExitCode, stderr)
}

// Message is the user-facing summary of the failure.
func (e *CommandError) Message() string {
	return ExtractErrorMessage(e.Stderr)
}

// ExtractErrorMessage reduces git's stderr to its first line, without the
// "fatal:" or "error:" prefix and with the first letter capitalized.
func ExtractErrorMessage(stderr string) string {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return unknownErrorMessage
	}
	if idx := strings.IndexByte(msg, '\n'); idx > 0 {
		msg = strings.TrimSpace(msg[:idx])
	}
	msg = stripPrefixFold(msg, "fatal:")
	msg = stripPrefixFold(msg, "error:")
	r, size := utf8.DecodeRuneInString(msg)
	if size > 0 && unicode.IsLower(r) {
		msg = string(unicode.ToUpper(r)) + msg[size:]
	}
	return msg
}

func stripPrefixFold(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return strings.TrimSpace(s[len(prefix):])
	}
	return s
}
