package dispatchio

import (
	"bytes"
	"strings"
	"testing"
)

func TestWithWritersChain(t *testing.T) {
	in := strings.NewReader("input")
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	m := New().WithIn(in).WithOut(out).WithErr(errBuf)
	if m.In() != in || m.Out() != out || m.Err() != errBuf {
		t.Error("With* accessors did not round-trip")
	}
}

func TestStylingFollowsColorPolicy(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	m := New().WithOut(&bytes.Buffer{})
	// A buffer is not a terminal, so styling is a no-op.
	if got := m.Bold("title"); got != "title" {
		t.Errorf("Bold on non-TTY = %q, want plain", got)
	}

	m.ForceColor()
	if got := m.Bold("title"); got != "\x1b[1mtitle\x1b[0m" {
		t.Errorf("Bold forced = %q", got)
	}
	if got := m.Faint("note"); got != "\x1b[2mnote\x1b[0m" {
		t.Errorf("Faint forced = %q", got)
	}
	if got := m.Colorize("31", "bad"); got != "\x1b[31mbad\x1b[0m" {
		t.Errorf("Colorize forced = %q", got)
	}

	m.NoColor()
	if got := m.Bold("title"); got != "title" {
		t.Errorf("Bold with NoColor = %q, want plain", got)
	}
}

func TestNoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := New().WithOut(&bytes.Buffer{}).ForceColor()
	// The environment kill switch beats the programmatic override.
	if m.SupportsColor() {
		t.Error("NO_COLOR set but SupportsColor() = true")
	}
}
