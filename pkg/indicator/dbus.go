package indicator

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyBus  = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
)

// sessionNotify sends one Notify call over the session bus.
func sessionNotify(appName string, replacesID uint32, appIcon, summary, body string,
	actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error) {

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	if actions == nil {
		actions = []string{}
	}
	if hints == nil {
		hints = map[string]dbus.Variant{}
	}

	obj := conn.Object(notifyBus, notifyPath)
	var id uint32
	err = obj.Call(notifyBus+".Notify", 0,
		appName, replacesID, appIcon, summary, body, actions, hints, expireTimeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to send notification: %w", err)
	}
	return id, nil
}
