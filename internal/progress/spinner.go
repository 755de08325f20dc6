// Package progress provides terminal progress indicators for long-running
// operations such as clone's object-store copy.
package progress

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/harlowdev/pygit/internal/termcolor"
)

// Spinner displays an animated status line on stderr while a long-running
// operation is in progress, rendered through pterm. It is only displayed
// when stderr is a TTY; in non-interactive environments (piped output, CI,
// E2E tests) it is silent.
type Spinner struct {
	msg      string
	active   bool
	pspinner *pterm.SpinnerPrinter
}

// New creates a Spinner that will display msg alongside the animation.
func New(msg string) *Spinner {
	return &Spinner{msg: msg}
}

// Start begins the spinner animation. A no-op when stderr is not a terminal.
func (s *Spinner) Start() {
	if !termcolor.IsTerminal(os.Stderr.Fd()) {
		return
	}
	printer := pterm.DefaultSpinner.WithWriter(os.Stderr)
	sp, err := printer.Start(s.msg)
	if err != nil {
		return
	}
	s.pspinner = sp
	s.active = true
}

// Stop halts the spinner animation and clears the line.
func (s *Spinner) Stop() {
	if !s.active || s.pspinner == nil {
		return
	}
	_ = s.pspinner.Stop()
	s.active = false
}
