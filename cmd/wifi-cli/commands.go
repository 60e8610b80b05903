package main

import (
	"os"

	"github.com/lorenzo-frittoli/wifi-cli/internal/logging"
	"github.com/lorenzo-frittoli/wifi-cli/internal/nmcli"
	"github.com/lorenzo-frittoli/wifi-cli/internal/picker"
	"github.com/lorenzo-frittoli/wifi-cli/internal/term"
)

// runPicker wires the terminal surface, the nmcli client, and the
// interactive controller, and runs the session to completion.
func runPicker() (err error) {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	tty, err := term.NewTTY()
	if err != nil {
		return err
	}
	if err := tty.Start(); err != nil {
		return err
	}
	// the terminal must never stay raw, whichever way the session ends
	defer func() {
		if serr := tty.Stop(); serr != nil && err == nil {
			err = serr
		}
	}()

	controller := picker.NewController(tty, term.NewEventReader(os.Stdin), nmcli.NewClient())
	return controller.Run()
}
