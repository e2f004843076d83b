// Package terminal holds small helpers for interactive terminal output.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// Width returns the width of the terminal on stdout, or 80 when stdout is
// not a terminal.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// LinesFor is the number of rows textLength characters wrap to at width.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	n := (textLength + width - 1) / width
	if n < 1 {
		n = 1
	}
	return n
}

// ClearPreviousLines erases a prompt and its answer after the user pressed
// Enter. textLength is the prompt plus input length.
func ClearPreviousLines(w io.Writer, textLength int) {
	// +1 for the empty line the cursor sits on after Enter
	n := LinesFor(textLength, Width()) + 1
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
