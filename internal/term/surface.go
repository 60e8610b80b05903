package term

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Control sequences understood by every terminal this tool targets
const (
	clearAll   = "\x1b[2J"
	cursorHome = "\x1b[H"
)

// markerGlyph highlights the selected row.
const markerGlyph = ">"

// RawMode switches the controlling terminal between raw input (each
// keystroke delivered immediately) and cooked input (line-buffered, echoing).
type RawMode interface {
	Suspend() error
	Resume() error
}

// termRawMode drives the real terminal via golang.org/x/term.
type termRawMode struct {
	fd     int
	cooked *term.State
}

func (r *termRawMode) Suspend() error {
	if r.cooked == nil {
		return nil
	}
	return term.Restore(r.fd, r.cooked)
}

func (r *termRawMode) Resume() error {
	st, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}
	// The first entry into raw mode captures the cooked state every later
	// Suspend (and the final Stop) restores.
	if r.cooked == nil {
		r.cooked = st
	}
	return nil
}

// TTY is the terminal surface the interactive session draws on. All drawing
// assumes the terminal is in raw mode between calls; operations that need
// cooked output suspend raw mode for their own duration only.
type TTY struct {
	out io.Writer
	raw RawMode
}

// NewTTY binds the surface to the process stdin/stdout. It fails when either
// is not an interactive terminal, so escape sequences never end up in a pipe.
func NewTTY() (*TTY, error) {
	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("wifi-cli requires an interactive terminal on stdin and stdout")
	}
	return &TTY{out: os.Stdout, raw: &termRawMode{fd: inFd}}, nil
}

// New builds a surface over explicit collaborators.
func New(out io.Writer, raw RawMode) *TTY {
	return &TTY{out: out, raw: raw}
}

// Start puts the terminal into raw mode for the interactive session.
func (t *TTY) Start() error {
	return t.raw.Resume()
}

// Stop restores the terminal to its original state. Callers defer it at
// session start so no exit path leaves the terminal raw.
func (t *TTY) Stop() error {
	return t.raw.Suspend()
}

// ClearAndRender replaces the entire visible screen with text, written from
// the top-left origin.
//
// The write happens in cooked mode so newlines translate properly; raw mode
// is re-entered on every path out of this function, including write failure.
func (t *TTY) ClearAndRender(text string) (err error) {
	if err = t.raw.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend raw mode: %w", err)
	}
	defer func() {
		if rerr := t.raw.Resume(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to resume raw mode: %w", rerr)
		}
	}()

	if _, err = fmt.Fprintf(t.out, "%s%s%s", clearAll, cursorHome, text); err != nil {
		return fmt.Errorf("failed to render screen: %w", err)
	}
	return nil
}

// PlaceMarker draws the selection marker in column 1 of the given 1-indexed
// row without clearing the rest of the screen.
func (t *TTY) PlaceMarker(row int) error {
	if _, err := fmt.Fprintf(t.out, "\x1b[%d;1H%s", row, markerGlyph); err != nil {
		return fmt.Errorf("failed to place marker: %w", err)
	}
	return nil
}

// EnterLineEdit switches the terminal to cooked input so the user gets
// echoing and basic line editing, e.g. while typing a password.
func (t *TTY) EnterLineEdit() error {
	return t.raw.Suspend()
}

// ResumeInteractive returns the terminal to raw input after a line-edit
// phase.
func (t *TTY) ResumeInteractive() error {
	return t.raw.Resume()
}
