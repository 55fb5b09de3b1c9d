package backlight

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Brightnessctl drives the brightnessctl utility.
type Brightnessctl struct{}

func (Brightnessctl) Name() string { return "brightnessctl" }

// parseMachineReadable extracts the percentage field from
// `brightnessctl -m` output, e.g.
// "intel_backlight,backlight,48000,50%,96000".
func parseMachineReadable(out string) (int, error) {
	fields := strings.Split(strings.TrimSpace(out), ",")
	if len(fields) < 4 {
		return 0, fmt.Errorf("unexpected brightnessctl output: %q", out)
	}
	pct := strings.TrimSuffix(fields[3], "%")
	lvl, err := strconv.Atoi(pct)
	if err != nil {
		return 0, fmt.Errorf("unexpected brightnessctl percentage %q: %w", fields[3], err)
	}
	return lvl, nil
}

func (Brightnessctl) Level() (int, error) {
	out, err := exec.Command("brightnessctl", "-m").Output()
	if err != nil {
		return 0, fmt.Errorf("failed to query brightness: %w", err)
	}
	return parseMachineReadable(string(out))
}

func (Brightnessctl) ChangeLevel(delta int) error {
	// brightnessctl spells lowering as "N%-" rather than "-N%".
	arg := "+" + strconv.Itoa(delta) + "%"
	if delta < 0 {
		arg = strconv.Itoa(-delta) + "%-"
	}

	cmd := exec.Command("brightnessctl", "set", arg)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to set brightness: %w", err)
	}
	return nil
}
