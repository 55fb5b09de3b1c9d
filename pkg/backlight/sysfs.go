package backlight

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sysfsRoot = "/sys/class/backlight"

// Sysfs is the fallback used when no control utility is installed:
// mutations are silently skipped, queries read the kernel's backlight
// class directly.
type Sysfs struct {
	// Root overrides the backlight class directory; empty means the
	// real sysfs path.
	Root string
}

func (Sysfs) Name() string { return "sysfs" }

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func (s Sysfs) Level() (int, error) {
	root := s.Root
	if root == "" {
		root = sysfsRoot
	}

	devices, err := filepath.Glob(filepath.Join(root, "*"))
	if err != nil || len(devices) == 0 {
		return 0, errors.New("no backlight devices found")
	}

	device := devices[0]
	current, err := readInt(filepath.Join(device, "brightness"))
	if err != nil {
		return 0, err
	}
	maxVal, err := readInt(filepath.Join(device, "max_brightness"))
	if err != nil {
		return 0, err
	}
	if maxVal <= 0 {
		return 0, errors.New("invalid max_brightness value")
	}

	percent := int(float64(current) / float64(maxVal) * 100.0)
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	return percent, nil
}

// ChangeLevel is a no-op: without a control utility there is nothing
// safe to write.
func (Sysfs) ChangeLevel(delta int) error { return nil }
