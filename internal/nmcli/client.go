package nmcli

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lorenzo-frittoli/wifi-cli/internal/logging"
)

// Command is the external network-management binary this client drives.
const Command = "nmcli"

// Outcome is the result of one connection attempt.
type Outcome struct {
	Connected bool
	// Message is the command's stdout on success and stderr on failure,
	// relayed verbatim.
	Message string
}

// Client invokes the external scanner/connector and interprets its output.
// It holds no state of its own; every call is one synchronous subprocess
// invocation.
type Client struct {
	runner Runner
}

// NewClient returns a client that shells out to the nmcli binary.
func NewClient() *Client {
	return &Client{runner: execRunner{}}
}

// NewClientWithRunner returns a client over a custom runner.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// ListNetworks runs one scan and returns the visible networks in scan order.
func (c *Client) ListNetworks() (Scan, error) {
	args := []string{"device", "wifi", "list"}
	res, err := c.runner.Run(Command, args...)
	if err != nil {
		return Scan{}, &Error{Kind: KindLaunch, Op: "list", Err: err}
	}
	logging.LogCommand(Command, args, res.ExitCode)

	out, err := decode(res.Stdout, "list")
	if err != nil {
		return Scan{}, err
	}
	scan, err := ParseScan(out)
	if err != nil {
		return Scan{}, err
	}
	logging.Debug("Scan finished", zap.Int("networks", len(scan.Networks)))
	return scan, nil
}

// Connect attempts to join ssid with the given password and classifies the
// result by exit status: zero is a successful Outcome carrying stdout,
// non-zero an unsuccessful one carrying stderr. An error means the command
// could not be launched or produced undecodable output.
func (c *Client) Connect(ssid, password string) (Outcome, error) {
	args := []string{"device", "wifi", "connect", ssid, "password", password}
	res, err := c.runner.Run(Command, args...)
	if err != nil {
		return Outcome{}, &Error{Kind: KindLaunch, Op: "connect", Err: err}
	}
	// password elided from the log
	logging.LogCommand(Command, args[:4], res.ExitCode)

	if res.ExitCode == 0 {
		msg, err := decode(res.Stdout, "connect")
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Connected: true, Message: msg}, nil
	}

	msg, err := decode(res.Stderr, "connect")
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Connected: false, Message: msg}, nil
}

func decode(b []byte, op string) (string, error) {
	if !utf8.Valid(b) {
		return "", &Error{Kind: KindDecode, Op: op}
	}
	return string(b), nil
}
