package termcolor

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Writer wraps an io.Writer and conditionally applies styled output based on
// whether color output is enabled. Styling goes through pterm so that the
// command surface gets one consistent palette instead of hand-rolled ANSI
// escape sequences scattered across formatters.
type Writer struct {
	io.Writer
	enabled bool
}

// NewWriter creates a Writer that resolves the given ColorMode against the
// file's terminal status. In ColorAuto mode, color is enabled only when f
// is a terminal and NO_COLOR is not set.
func NewWriter(f *os.File, mode ColorMode) *Writer {
	var enabled bool
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
		enabled = false
	default:
		enabled = ShouldColorize(f)
	}
	return &Writer{Writer: f, enabled: enabled}
}

// Enabled reports whether color output is active.
func (w *Writer) Enabled() bool {
	return w.enabled
}

func (w *Writer) style(s string, colors ...pterm.Color) string {
	if !w.enabled {
		return s
	}
	return pterm.NewStyle(colors...).Sprint(s)
}

// Red returns s styled red, or s unchanged if color is disabled.
func (w *Writer) Red(s string) string { return w.style(s, pterm.FgRed) }

// Green returns s styled green, or s unchanged if color is disabled.
func (w *Writer) Green(s string) string { return w.style(s, pterm.FgGreen) }

// Yellow returns s styled yellow, or s unchanged if color is disabled.
func (w *Writer) Yellow(s string) string { return w.style(s, pterm.FgYellow) }

// Cyan returns s styled cyan, or s unchanged if color is disabled.
func (w *Writer) Cyan(s string) string { return w.style(s, pterm.FgCyan) }

// Bold returns s styled bold, or s unchanged if color is disabled.
func (w *Writer) Bold(s string) string { return w.style(s, pterm.Bold) }

// BoldCyan returns s styled bold cyan, or s unchanged if color is disabled.
func (w *Writer) BoldCyan(s string) string { return w.style(s, pterm.FgCyan, pterm.Bold) }
