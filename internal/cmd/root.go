package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hoppxi/osdctl/internal/lock"
	"github.com/hoppxi/osdctl/internal/settings"
	"github.com/hoppxi/osdctl/pkg/backlight"
	"github.com/hoppxi/osdctl/pkg/indicator"
	"github.com/hoppxi/osdctl/pkg/mixer"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

// Swappable constructors so tests can run the commands against fakes.
var (
	newMixer = func() mixer.Mixer { return mixer.Pulse{} }

	newBacklight = backlight.Detect

	newBackend = func() indicator.Backend {
		s := settings.Load()
		return indicator.Detect(s.GetInt("bar_width"), int32(s.GetInt("notify_timeout_ms")))
	}
)

var instanceLock *lock.Handle

var rootCmd = &cobra.Command{
	Use:     "osdctl",
	Version: Version,
	Short:   "Adjust volume or brightness and flash an on-screen indicator",
	Long: "Osdctl changes the system volume or screen brightness and shows\n" +
		"a transient progress-bar notification through the running daemon.\n" +
		"Meant to be bound to media and brightness keys.",
	// Backlight writes can be slow; without the lock, rapid key taps
	// interleave their mutations and the bar flickers out of order.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		h, err := lock.Acquire(programName())
		if err != nil {
			return err
		}
		instanceLock = h
		return nil
	},
}

func programName() string {
	return filepath.Base(os.Args[0])
}

func Execute() {
	err := rootCmd.Execute()
	instanceLock.Release()
	if err != nil {
		os.Exit(1)
	}
}

// show sends an update through the detected backend, degrading to a
// stderr warning when no supported daemon is running.
func show(be indicator.Backend, u indicator.Update) {
	if be == nil {
		log.Println("warning: no supported notification daemon detected, nothing displayed")
		return
	}
	if err := be.Show(u); err != nil {
		log.Println("failed to display indicator:", err)
	}
}

// action is the second positional token, already resolved.
type action int

const (
	actionIncrease action = iota
	actionDecrease
	actionMute
)

func parseAction(tok string) (action, error) {
	switch tok {
	case "up", "u", "inc", "i":
		return actionIncrease, nil
	case "down", "dec", "d":
		return actionDecrease, nil
	case "mute", "m":
		return actionMute, nil
	}
	return 0, fmt.Errorf("unknown action %q", tok)
}

// validActions builds a cobra positional-argument validator that
// rejects anything outside the allowed set before any lock or
// mutation happens.
func validActions(allowed ...action) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		act, err := parseAction(args[0])
		if err != nil {
			return err
		}
		for _, a := range allowed {
			if act == a {
				return nil
			}
		}
		return fmt.Errorf("action %q is not valid for %s", args[0], cmd.Name())
	}
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(brightnessCmd)
}
