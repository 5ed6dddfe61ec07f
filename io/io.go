// Package dispatchio centralizes the dispatcher's stream handling and
// terminal styling so commands and help rendering never touch os.Stdout
// directly. Streams are swappable for tests.
package dispatchio

import (
	stdio "io"
	"os"

	"golang.org/x/term"
)

// IOManager holds the three standard streams plus the color policy applied
// to styled output.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio with automatic color
// detection.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces styled output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables styled output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether styled output should carry ANSI sequences.
// NO_COLOR always wins, FORCE_COLOR always enables, otherwise output must be
// a terminal with a TERM that is not dumb.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	f, ok := m.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// IsInteractive reports whether stdin is a terminal outside of CI.
func (m *IOManager) IsInteractive() bool {
	f, ok := m.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("CI") == ""
}

// Width returns the terminal width of stdout, or 80 when it cannot be
// determined.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// Bold wraps s in a bold escape sequence when color is supported.
func (m *IOManager) Bold(s string) string { return m.style("1", s) }

// Faint wraps s in a faint escape sequence when color is supported.
func (m *IOManager) Faint(s string) string { return m.style("2", s) }

// Colorize wraps s in the given ANSI SGR code when color is supported.
func (m *IOManager) Colorize(code, s string) string { return m.style(code, s) }

func (m *IOManager) style(code, s string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
