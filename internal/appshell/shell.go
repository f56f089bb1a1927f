// Package appshell wires a CLI runner to the process: signals, argv and the
// exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Runner executes argv and returns the exit code.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitSignal is the exit code of a run interrupted by SIGINT/SIGTERM.
const ExitSignal = 130

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits.
// An empty command line prints help.
func Main(run Runner) {
	os.Exit(execute(run, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(run Runner, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitSignal
	}
	return code
}
