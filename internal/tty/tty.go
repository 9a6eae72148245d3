// Package tty answers the two questions vroom asks about its output stream:
// how wide it is, and whether it is a terminal at all.
package tty

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Width returns the column count of the terminal behind f. It fails when f
// is not a terminal or reports a width that cannot be drawn into.
func Width(f *os.File) (int, error) {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, fmt.Errorf("terminal size of %s: %w", f.Name(), err)
	}
	if w <= 0 {
		return 0, fmt.Errorf("terminal size of %s: unusable width %d", f.Name(), w)
	}
	return w, nil
}

// WidthFunc returns a closure that queries the width of f on every call.
func WidthFunc(f *os.File) func() (int, error) {
	return func() (int, error) {
		return Width(f)
	}
}

// IsTerminal reports whether f is a terminal, including Cygwin and MSYS
// ptys on Windows.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
