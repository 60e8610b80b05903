// Package nmcli is the client for the external network-management utility.
//
// wifi-cli owns no network stack; scanning and connecting both happen by
// invoking the nmcli binary and interpreting what it prints. This package
// holds that boundary: subprocess execution (behind the Runner interface so
// tests can script command results), listing output parsing, and the closed
// error taxonomy the rest of the tool switches on.
//
// # Listing format
//
// The listing command prints a column header followed by one line per
// network. Each data line carries a fixed-width status/security prefix of
// SSIDOffset columns, then the SSID, terminated by the next whitespace run:
//
//	HEADER
//	AA:BB SSID_ONE more cols
//	CC:DD SSID_TWO
//
// Lines that do not fit this shape produce a parse-kind *Error naming the
// line; they are never skipped silently.
//
// # Error kinds
//
// Failures are a closed enumeration on *Error: KindLaunch (the binary could
// not be started), KindDecode (output was not valid UTF-8), and KindParse
// (a malformed listing line). A connect command that launches and then exits
// non-zero is not an error at all; it is an unsuccessful Outcome carrying
// the command's diagnostic output.
package nmcli
