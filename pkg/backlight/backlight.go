// Package backlight reports and mutates screen brightness through
// whichever supported control utility is installed.
package backlight

import (
	"os/exec"
)

// Backlight is the brightness side of the tool.
type Backlight interface {
	// Name identifies the selected control utility.
	Name() string
	// Level returns the current brightness as a percentage 0-100.
	Level() (int, error)
	// ChangeLevel adjusts brightness by delta percentage points
	// (negative to lower).
	ChangeLevel(delta int) error
}

// Detect probes the candidate utilities in preference order and
// returns the first one installed. When none is found the returned
// Backlight skips mutations and answers queries from sysfs (0 when
// even that is unavailable).
func Detect() Backlight {
	if _, err := exec.LookPath("brightnessctl"); err == nil {
		return Brightnessctl{}
	}
	if _, err := exec.LookPath("light"); err == nil {
		return Light{}
	}
	return Sysfs{}
}
