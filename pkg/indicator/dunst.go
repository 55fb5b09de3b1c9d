package indicator

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Dunst lets the daemon render the progress bar itself through the
// "value" hint. The stack tag makes consecutive indicators of the
// same kind replace each other instead of stacking.
type Dunst struct {
	timeout int32
	notify  notifyFunc
}

// NewDunst returns a backend for a running dunst instance.
func NewDunst(timeoutMS int32) *Dunst {
	return &Dunst{timeout: timeoutMS, notify: sessionNotify}
}

func (d *Dunst) Name() string { return "dunst" }

func (d *Dunst) Show(u Update) error {
	hints := map[string]dbus.Variant{
		"x-dunst-stack-tag": dbus.MakeVariant("osd-" + string(u.Kind)),
	}

	summary := fmt.Sprintf("%d%%", u.Level)
	icon := u.Icon
	if u.Kind == Volume && u.Muted {
		summary = "Muted"
		icon = IconMuted
	} else {
		hints["value"] = dbus.MakeVariant(int32(u.Level))
	}

	_, err := d.notify(appName, 0, icon, summary, "", nil, hints, d.timeout)
	return err
}
