// Package term adapts the controlling terminal for the interactive session.
//
// It provides two pieces: the TTY surface, and the key event decoder.
//
// # Surface
//
// TTY exposes full-screen rendering, selection marker placement, and
// explicit raw/cooked input toggles over a raw output stream. The session
// runs in raw mode so single keystrokes (including arrow keys) arrive
// immediately; anything that needs cooked output, like a full-screen repaint
// or password line entry, suspends raw mode for exactly its own duration.
//
// The invariant the whole package is built around: every suspension of raw
// mode is paired with a resumption on the same path, success or failure, and
// Stop restores the terminal's original state before the process exits. No
// code path may leave the terminal raw.
//
// # Key events
//
// EventReader turns the raw byte stream from stdin into discrete Event
// values: arrows, Enter, Escape, printable runes, and an ignorable
// KeyUnknown for everything else. Arrow keys are decoded from their CSI
// sequences; a lone ESC byte with no buffered follow-up is a standalone
// Escape press.
package term
