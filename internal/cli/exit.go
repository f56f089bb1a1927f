// internal/cli/exit.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"hairpin/internal/cmdutil"
)

// Process exit codes.
const (
	ExitOK     = 0
	ExitNone   = 1 // no hairpin found and --fail-on-none
	ExitUsage  = 2 // bad flags, settings or input
	ExitOutput = 3 // writing results failed
	ExitSignal = 130
)

// codedError carries the exit code of a failed command. A nil err exits
// silently.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *codedError) Unwrap() error { return e.err }

func withCode(code int, err error) error { return &codedError{code: code, err: err} }

// exitCode reports err on stderr and maps it to a process exit code.
// Errors raised by cobra itself (unknown command, bad flag) are usage errors.
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *codedError
	if errors.As(err, &ce) {
		if ce.err != nil && ce.code != ExitSignal {
			cmdutil.Errorf(stderr, "%v", ce.err)
		}
		return ce.code
	}
	cmdutil.Errorf(stderr, "%v", err)
	_, _ = fmt.Fprintln(stderr, "Run 'hairpin --help' for usage.")
	return ExitUsage
}
