// Package tkutil holds helpers for the raw Tcl commands the tk9.0 bindings
// do not wrap.
package tkutil

import (
	"fmt"
	"log/slog"
	"strings"

	evalext "modernc.org/tk9.0/extensions/eval"
)

func Eval(format string, a ...any) (string, error) {
	eval := fmt.Sprintf(format, a...)
	r, err := evalext.Eval(eval)
	if err != nil {
		return "", fmt.Errorf("tk eval=%s; err=%w", eval, err)
	}
	return r, nil
}

// EvalOrLog runs a command whose failure only affects presentation.
func EvalOrLog(format string, a ...any) string {
	out, err := Eval(format, a...)
	if err != nil {
		slog.Debug("tk eval", slog.Any("error", err))
		return ""
	}
	return out
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	`[`, `\[`,
	`]`, `\]`,
	"\n", `\n`,
)

// Quote makes s a single Tcl word with no substitutions.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
