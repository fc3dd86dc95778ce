// Package tty reports whether the process streams are attached to an
// interactive terminal. Commands use it to decide between animated,
// colored output and plain text suitable for pipes and CI logs.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsStdoutTerminal reports whether stdout is an interactive terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTerminal reports whether stderr is an interactive terminal.
func IsStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsStdinTerminal reports whether stdin is an interactive terminal.
func IsStdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
