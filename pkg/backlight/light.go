package backlight

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Light drives the light utility.
type Light struct{}

func (Light) Name() string { return "light" }

// parseLightOutput parses `light -G` output, a float percentage like
// "50.00".
func parseLightOutput(out string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected light output %q: %w", out, err)
	}
	lvl := int(f + 0.5)
	if lvl < 0 {
		lvl = 0
	}
	if lvl > 100 {
		lvl = 100
	}
	return lvl, nil
}

func (Light) Level() (int, error) {
	out, err := exec.Command("light", "-G").Output()
	if err != nil {
		return 0, fmt.Errorf("failed to query brightness: %w", err)
	}
	return parseLightOutput(string(out))
}

func (Light) ChangeLevel(delta int) error {
	flag := "-A"
	if delta < 0 {
		flag = "-U"
		delta = -delta
	}

	cmd := exec.Command("light", flag, strconv.Itoa(delta))
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to set brightness: %w", err)
	}
	return nil
}
