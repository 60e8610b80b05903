package nmcli

import (
	"strings"
	"unicode"
)

// SSIDOffset is the width of the fixed status/security prefix that precedes
// the SSID token on every data line of the listing output.
const SSIDOffset = 6

// Network is one entry from a scan. Raw keeps the full listing line so the
// display can show the scanner's own columns unmodified.
type Network struct {
	SSID string
	Raw  string
}

// Scan is the result of one listing invocation: the scanner's column header
// plus the networks in scan order. A fresh scan replaces the previous one
// wholesale.
type Scan struct {
	Header   string
	Networks []Network
}

// ParseScan parses listing output: one header line followed by one data line
// per network. The SSID is the whitespace-delimited token starting at
// SSIDOffset.
//
// A data line shorter than the offset, or with no token at it, is a parse
// failure carrying the offending line; malformed lines are never skipped
// silently.
func ParseScan(output string) (Scan, error) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	scan := Scan{Header: lines[0]}
	if len(lines) == 1 {
		// header only: an empty scan, not an error
		return scan, nil
	}

	scan.Networks = make([]Network, 0, len(lines)-1)
	for _, line := range lines[1:] {
		ssid, ok := ssidFromLine(line)
		if !ok {
			return Scan{}, &Error{Kind: KindParse, Op: "list", Line: line}
		}
		scan.Networks = append(scan.Networks, Network{SSID: ssid, Raw: line})
	}
	return scan, nil
}

func ssidFromLine(line string) (string, bool) {
	if len(line) < SSIDOffset {
		return "", false
	}
	ssid := line[SSIDOffset:]
	if i := strings.IndexFunc(ssid, unicode.IsSpace); i >= 0 {
		ssid = ssid[:i]
	}
	if ssid == "" {
		return "", false
	}
	return ssid, true
}
