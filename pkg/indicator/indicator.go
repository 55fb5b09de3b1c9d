// Package indicator shows a transient level bar through whichever
// supported notification daemon is running.
package indicator

import (
	"os/exec"

	"github.com/godbus/dbus/v5"
)

const appName = "osdctl"

// Kind scopes notification replacement so that e.g. a brightness
// indicator never replaces a volume one.
type Kind string

const (
	Volume     Kind = "volume"
	Brightness Kind = "brightness"
)

// Update is one indicator refresh.
type Update struct {
	Kind  Kind
	Level int
	Muted bool
	// Icon is the themed icon name chosen by the caller.
	Icon string
}

// Backend displays an Update through a running notification daemon.
type Backend interface {
	Name() string
	Show(u Update) error
}

// notifyFunc matches org.freedesktop.Notifications.Notify and exists
// so backends can be exercised without a session bus.
type notifyFunc func(appName string, replacesID uint32, appIcon, summary, body string,
	actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error)

// processRunning reports whether a process with the exact name
// exists, using pgrep like the keybinding scripts this tool replaces.
func processRunning(name string) bool {
	return exec.Command("pgrep", "-x", name).Run() == nil
}

// Detect probes for a supported notification daemon and returns the
// matching backend, or nil when none is running. Dunst is checked
// first and wins if both daemons are somehow up at once.
func Detect(barWidth int, timeoutMS int32) Backend {
	if processRunning("dunst") {
		return NewDunst(timeoutMS)
	}
	if processRunning("mako") {
		return NewMako(barWidth, timeoutMS)
	}
	return nil
}
