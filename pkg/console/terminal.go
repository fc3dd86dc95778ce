package console

import (
	"fmt"
	"os"

	"github.com/rkaminsk/trigger/pkg/tty"
)

// ClearLine clears the current stderr line. No-op when stderr is not an
// interactive terminal.
func ClearLine() {
	if !tty.IsStderrTerminal() {
		return
	}
	fmt.Fprint(os.Stderr, "\r\033[K")
}

// ClearScreen clears the terminal and moves the cursor to the top left.
// No-op when stdout is not an interactive terminal.
func ClearScreen() {
	if !tty.IsStdoutTerminal() {
		return
	}
	fmt.Fprint(os.Stdout, "\033[2J\033[H")
}
