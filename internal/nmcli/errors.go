package nmcli

import "fmt"

// ErrorKind classifies client failures into a closed set so callers can
// handle each case exhaustively.
type ErrorKind int

const (
	// KindLaunch means the external command could not be started at all
	// (binary missing, permissions).
	KindLaunch ErrorKind = iota
	// KindDecode means the command produced output that is not valid UTF-8.
	KindDecode
	// KindParse means a listing line did not match the expected column
	// layout.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindLaunch:
		return "launch"
	case KindDecode:
		return "decode"
	case KindParse:
		return "parse"
	}
	return "unknown"
}

// Error is a structured client failure.
type Error struct {
	Kind ErrorKind
	Op   string // "list" or "connect"
	Line string // offending listing line, parse failures only
	Err  error  // underlying cause, launch failures only
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLaunch:
		return fmt.Sprintf("nmcli %s: failed to launch command: %v", e.Op, e.Err)
	case KindDecode:
		return fmt.Sprintf("nmcli %s: command output is not valid UTF-8", e.Op)
	case KindParse:
		return fmt.Sprintf("nmcli %s: cannot parse listing line %q", e.Op, e.Line)
	}
	return fmt.Sprintf("nmcli %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
