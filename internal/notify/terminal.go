// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notify renders session notices on the terminal.
package notify

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/RichMan125/srm-ui/internal/auth"
)

// Terminal prints notices with pterm prefix printers. A terminal has no
// auto-dismiss, so Notice.Duration is ignored.
type Terminal struct {
	out   io.Writer
	quiet bool
}

var _ auth.Notifier = (*Terminal)(nil)

// NewTerminal returns a Terminal writing to w; nil means stderr.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	return &Terminal{out: w}
}

// Quiet suppresses success notices. Errors are always printed.
func (t *Terminal) Quiet(q bool) *Terminal {
	t.quiet = q
	return t
}

func (t *Terminal) Error(n auth.Notice) {
	t.print(pterm.Error, n)
}

func (t *Terminal) Success(n auth.Notice) {
	if t.quiet {
		return
	}
	t.print(pterm.Success, n)
}

func (t *Terminal) print(base pterm.PrefixPrinter, n auth.Notice) {
	p := base.WithWriter(t.out)
	if n.Title != "" {
		p = p.WithPrefix(pterm.Prefix{Text: n.Title, Style: base.Prefix.Style})
	}
	p.Println(n.Content)
}
