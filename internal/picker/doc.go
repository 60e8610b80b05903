// Package picker implements the interactive network selection session.
//
// The Controller is a single-threaded state machine over four phases:
// browsing the scanned list, entering a password for the chosen network,
// running the connection attempt, and showing its outcome. Each phase is a
// distinct state value carrying exactly the data that phase needs; the
// Controller owns the state and the selection index for their whole
// lifetime, while the terminal surface, key event source, and scanner
// client are borrowed behind interfaces.
//
// Every entry into the browsing phase performs a fresh scan and a full
// render before the next keystroke is read, so the displayed list is never
// stale. Keys with no binding in the current phase are dropped without a
// repaint.
package picker
