// Wifi-cli is an interactive picker for wireless networks.
//
// It lists the networks visible to NetworkManager, lets the user choose one
// with the arrow keys, prompts for the network password, and hands the
// connection attempt to nmcli. The tool owns no network stack itself; it is
// a thin interactive front-end over the nmcli binary.
//
// Usage:
//
//	wifi-cli
//
// The program takes no flags or arguments. Key bindings are shown on the
// in-program help line: up/down to move, enter to connect, r to refresh,
// q to quit (Esc while typing a password).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorenzo-frittoli/wifi-cli/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wifi-cli",
	Short: "Interactive wireless network picker",
	Long: `An interactive terminal picker for wireless networks.

Scans for visible networks via nmcli, lets you select one with the arrow
keys, prompts for its password, and reports the connection outcome.`,
	Args:    cobra.NoArgs,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wifi-cli %s (commit: %s)\n", version.Version, version.Commit)
	},
}
