package term

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Key identifies a decoded keystroke.
type Key int

const (
	// KeyRune is a printable character; Event.Rune carries it.
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
	// KeyUnknown covers control bytes and escape sequences this tool does
	// not bind. Callers treat it as a no-op.
	KeyUnknown
)

// Event is one decoded keystroke.
type Event struct {
	Key  Key
	Rune rune
}

// EventReader decodes a raw-mode terminal byte stream into key events.
type EventReader struct {
	r *bufio.Reader
}

// NewEventReader wraps an input stream, normally os.Stdin.
func NewEventReader(r io.Reader) *EventReader {
	return &EventReader{r: bufio.NewReader(r)}
}

// ReadEvent blocks until the next keystroke and decodes it. Both CR and LF
// count as Enter, since raw mode delivers CR and cooked mode LF.
func (er *EventReader) ReadEvent() (Event, error) {
	b, err := er.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == '\r' || b == '\n':
		return Event{Key: KeyEnter}, nil
	case b == 0x1b:
		return er.readEscape()
	case b < 0x20 || b == 0x7f:
		return Event{Key: KeyUnknown}, nil
	case b >= utf8.RuneSelf:
		if err := er.r.UnreadByte(); err != nil {
			return Event{}, err
		}
		r, _, err := er.r.ReadRune()
		if err != nil {
			return Event{}, err
		}
		return Event{Key: KeyRune, Rune: r}, nil
	}

	return Event{Key: KeyRune, Rune: rune(b)}, nil
}

// readEscape distinguishes a standalone Escape press from a CSI sequence
// such as an arrow key. A sequence arrives in the same input burst as its
// leading ESC, so if nothing is buffered behind the ESC it was a lone press.
func (er *EventReader) readEscape() (Event, error) {
	if er.r.Buffered() == 0 {
		return Event{Key: KeyEsc}, nil
	}

	b, err := er.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if b != '[' {
		// Esc followed by ordinary input: report the Esc, replay the byte
		_ = er.r.UnreadByte()
		return Event{Key: KeyEsc}, nil
	}

	final, err := er.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	switch final {
	case 'A':
		return Event{Key: KeyUp}, nil
	case 'B':
		return Event{Key: KeyDown}, nil
	}
	return Event{Key: KeyUnknown}, nil
}
