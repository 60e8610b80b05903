package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lorenzo-frittoli/wifi-cli/internal/nmcli"
)

// Color palette for the three screens
var (
	successColor = lipgloss.Color("#43BF6D")
	errorColor   = lipgloss.Color("#FF5555")
	mutedColor   = lipgloss.Color("#626262")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	successTitleStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	failureTitleStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

const helpLine = "up/down move | enter connect | r refresh | q quit"

// browseView shows the scanner's own listing verbatim, header first, with
// the key bindings underneath. The listing lines stay unstyled and
// unreflowed: the marker is drawn over column 1 of these exact rows.
func browseView(scan nmcli.Scan) string {
	var b strings.Builder
	b.WriteString(scan.Header)
	b.WriteString("\n")
	for _, n := range scan.Networks {
		b.WriteString(n.Raw)
		b.WriteString("\n")
	}
	if len(scan.Networks) == 0 {
		b.WriteString(helpStyle.Render("no networks found"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

// passwordView is the prompt for the chosen network. The password itself is
// echoed by the terminal's line-edit mode, not drawn here.
func passwordView(ssid string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CONNECTING"))
	b.WriteString("\nSSID: ")
	b.WriteString(ssid)
	b.WriteString("\nPassword: ")
	return b.String()
}

// outcomeView is the final screen for a completed connection attempt.
func outcomeView(ssid string, outcome nmcli.Outcome) string {
	var b strings.Builder
	if outcome.Connected {
		b.WriteString(successTitleStyle.Render("You are connected to " + ssid))
		b.WriteString("\nCommand Output:\n")
	} else {
		b.WriteString(failureTitleStyle.Render("Failed to connect to " + ssid))
		b.WriteString("\n")
	}
	b.WriteString(outcome.Message)
	return b.String()
}

// errorView is the final screen for an attempt that never ran, e.g. when the
// connect command could not be launched.
func errorView(err error) string {
	var b strings.Builder
	b.WriteString(failureTitleStyle.Render("Connection attempt failed"))
	b.WriteString("\n")
	b.WriteString(err.Error())
	b.WriteString("\n")
	return b.String()
}
