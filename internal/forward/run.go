package forward

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// Stdio holds the streams handed to the child. Nil fields inherit the
// wrapper's own os.Stdin, os.Stdout and os.Stderr.
type Stdio struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes argv with args appended verbatim and waits for it to finish.
//
// The returned code is the child's exit status. When no status exists
// (argv[0] could not be started, or the child died from a signal) Run
// returns 1 together with an error describing why.
//
// While the child runs, the wrapper ignores interrupts: the terminal
// delivers them to the child, and the child decides what status to exit with.
func Run(ctx context.Context, argv, args []string, stdio Stdio) (int, error) {
	if len(argv) == 0 {
		return 1, errors.New("no command to run")
	}

	full := make([]string, 0, len(argv)-1+len(args))
	full = append(full, argv[1:]...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, argv[0], full...)
	cmd.Stdin = stdio.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = stdio.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = stdio.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, fmt.Errorf("%s: %w", argv[0], err)
	}
	return 1, fmt.Errorf("running %s: %w", argv[0], err)
}
