package indicator

import "fmt"

// makoReplacesID is the fixed replacement id shared by every
// invocation, so repeated key taps update one on-screen notification.
const makoReplacesID uint32 = 5522

// Mako renders the bar client-side for daemons that only display
// text, reusing a fixed replaces-id.
type Mako struct {
	width   int
	timeout int32
	notify  notifyFunc
}

// NewMako returns a backend for a running mako instance.
func NewMako(barWidth int, timeoutMS int32) *Mako {
	return &Mako{width: barWidth, timeout: timeoutMS, notify: sessionNotify}
}

func (m *Mako) Name() string { return "mako" }

func (m *Mako) Show(u Update) error {
	summary := fmt.Sprintf("%d%%", u.Level)
	body := Bar(u.Level, m.width)
	icon := u.Icon
	if u.Kind == Volume && u.Muted {
		summary = "Muted"
		body = ""
		icon = IconMuted
	}

	_, err := m.notify(appName, makoReplacesID, icon, summary, body, nil, nil, m.timeout)
	return err
}
