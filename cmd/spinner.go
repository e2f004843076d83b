package cmd

import (
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"github.com/RichMan125/srm-ui/internal/terminal"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// runWithSpinner runs fn and animates text for as long as busy reports true.
// Without a terminal it just runs fn.
func runWithSpinner(text string, busy func() bool, fn func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()

	if !terminal.IsInteractive() {
		<-done
		return
	}

	cursor.Hide()
	defer cursor.Show()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		<-done
		return
	}
	defer area.Stop()

	t := time.NewTicker(120 * time.Millisecond)
	defer t.Stop()
	i := 0
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if busy() {
				area.Update(spinnerFrames[i%len(spinnerFrames)] + " " + text)
				i++
			}
		}
	}
}
