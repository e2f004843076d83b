package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/RichMan125/srm-ui/internal/terminal"
)

var stdin = bufio.NewReader(os.Stdin)

// promptLine asks for one line of input.
func promptLine(w io.Writer, label string) string {
	fmt.Fprint(w, label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptSecret asks for input without echo, then clears the prompt.
func promptSecret(w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	terminal.ClearPreviousLines(w, len(label))
	return string(b), nil
}
