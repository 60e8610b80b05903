package picker

import (
	"errors"

	"github.com/lorenzo-frittoli/wifi-cli/internal/logging"
	"github.com/lorenzo-frittoli/wifi-cli/internal/nmcli"
	"github.com/lorenzo-frittoli/wifi-cli/internal/term"
)

// Surface is the terminal the session draws on.
type Surface interface {
	ClearAndRender(text string) error
	PlaceMarker(row int) error
	EnterLineEdit() error
	ResumeInteractive() error
}

// EventSource delivers decoded keystrokes, blocking until one arrives.
type EventSource interface {
	ReadEvent() (term.Event, error)
}

// Client scans for networks and attempts connections.
type Client interface {
	ListNetworks() (nmcli.Scan, error)
	Connect(ssid, password string) (nmcli.Outcome, error)
}

// state is the session's tagged variant. Exactly one is active at a time,
// and each carries only the data that applies to its phase.
type state interface {
	name() string
}

type browsing struct{}

type enteringPassword struct {
	ssid    string
	partial []rune
}

type connecting struct {
	ssid     string
	password string
}

type finished struct {
	ssid    string
	outcome nmcli.Outcome
	err     error // set instead of outcome when the attempt never launched
}

func (browsing) name() string         { return "browsing" }
func (enteringPassword) name() string { return "entering_password" }
func (connecting) name() string       { return "connecting" }
func (finished) name() string         { return "finished" }

// Controller owns the session state and the selection, and drives the
// browse -> password -> connect -> outcome flow over borrowed collaborators.
// Everything runs on the caller's goroutine: one blocking event read, then
// rendering, transitions, and external commands in response.
type Controller struct {
	surface Surface
	events  EventSource
	client  Client

	state state
	scan  nmcli.Scan
	sel   Selection
}

// NewController builds a session starting in the browsing phase.
func NewController(surface Surface, events EventSource, client Client) *Controller {
	return &Controller{
		surface: surface,
		events:  events,
		client:  client,
		state:   browsing{},
	}
}

// Run drives the session until the user quits or a connection attempt has
// been reported on the final screen. A returned error is a terminal,
// scanner, or decoding failure the session could not recover from.
func (c *Controller) Run() error {
	// Entering the browsing phase always starts with a fresh scan and a
	// full render, so the first screen is never stale.
	if err := c.refresh(); err != nil {
		return err
	}

	for {
		switch s := c.state.(type) {
		case browsing:
			quit, err := c.browse()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case enteringPassword:
			quit, err := c.editPassword(s)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case connecting:
			if err := c.connect(s); err != nil {
				return err
			}

		case finished:
			return c.renderOutcome(s)
		}
	}
}

// browse consumes one keystroke in the browsing phase. Recognized
// navigation keys re-enter browsing through a fresh scan and render;
// anything unbound is a no-op without a repaint.
func (c *Controller) browse() (quit bool, err error) {
	evt, err := c.events.ReadEvent()
	if err != nil {
		return false, err
	}

	switch {
	case evt.Key == term.KeyUp:
		if len(c.scan.Networks) == 0 {
			return false, nil
		}
		c.sel.MoveUp()
		return false, c.refresh()

	case evt.Key == term.KeyDown:
		if len(c.scan.Networks) == 0 {
			return false, nil
		}
		c.sel.MoveDown(len(c.scan.Networks))
		return false, c.refresh()

	case evt.Key == term.KeyRune && evt.Rune == 'r':
		return false, c.refresh()

	case evt.Key == term.KeyRune && evt.Rune == 'q':
		return true, nil

	case evt.Key == term.KeyEnter:
		if len(c.scan.Networks) == 0 {
			// nothing to select
			return false, nil
		}
		ssid := c.sel.Current(c.scan.Networks).SSID
		return false, c.toPasswordEntry(ssid)
	}

	return false, nil
}

// refresh re-enters the browsing phase: one fresh scan, one full render,
// then the selection marker. The previous list is replaced wholesale and the
// selection re-bounded against the new one.
func (c *Controller) refresh() error {
	scan, err := c.client.ListNetworks()
	if err != nil {
		return err
	}
	c.scan = scan
	c.sel.Clamp(len(scan.Networks))

	if err := c.surface.ClearAndRender(browseView(scan)); err != nil {
		return err
	}
	if len(scan.Networks) == 0 {
		return nil
	}
	// row 1 is the listing header; entries start on row 2
	return c.surface.PlaceMarker(c.sel.Index() + 2)
}

// toPasswordEntry renders the prompt for the chosen network and hands the
// terminal over to line editing.
func (c *Controller) toPasswordEntry(ssid string) error {
	c.setState(enteringPassword{ssid: ssid})
	if err := c.surface.ClearAndRender(passwordView(ssid)); err != nil {
		return err
	}
	return c.surface.EnterLineEdit()
}

// editPassword consumes one keystroke in the password phase. Escape quits
// and discards whatever was typed; Enter moves on to the connection attempt.
func (c *Controller) editPassword(s enteringPassword) (quit bool, err error) {
	evt, err := c.events.ReadEvent()
	if err != nil {
		return false, err
	}

	switch evt.Key {
	case term.KeyEsc:
		return true, nil

	case term.KeyEnter:
		if err := c.surface.ResumeInteractive(); err != nil {
			return false, err
		}
		c.setState(connecting{ssid: s.ssid, password: string(s.partial)})
		return false, nil

	case term.KeyRune:
		s.partial = append(s.partial, evt.Rune)
		c.state = s
		return false, nil
	}

	return false, nil
}

// connect performs the attempt synchronously; the session blocks until the
// external command finishes. No event is read in this phase.
func (c *Controller) connect(s connecting) error {
	outcome, err := c.client.Connect(s.ssid, s.password)
	if err != nil {
		var cerr *nmcli.Error
		if errors.As(err, &cerr) && cerr.Kind == nmcli.KindLaunch {
			// the attempt never started; report it on the final screen
			c.setState(finished{ssid: s.ssid, err: err})
			return nil
		}
		return err
	}
	c.setState(finished{ssid: s.ssid, outcome: outcome})
	return nil
}

// renderOutcome paints the final screen. The session ends here; no further
// input is read.
func (c *Controller) renderOutcome(s finished) error {
	if s.err != nil {
		return c.surface.ClearAndRender(errorView(s.err))
	}
	return c.surface.ClearAndRender(outcomeView(s.ssid, s.outcome))
}

func (c *Controller) setState(next state) {
	logging.LogTransition(c.state.name(), next.name())
	c.state = next
}
