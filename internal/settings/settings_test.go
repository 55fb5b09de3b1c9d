package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Set before the first Load: the instance is process-wide.
	t.Setenv("OSDCTL_BAR_WIDTH", "20")

	s := Load()

	assert.Equal(t, 4, s.GetInt("volume_step"))
	assert.Equal(t, 8, s.GetInt("brightness_step"))
	assert.Equal(t, 5000, s.GetInt("notify_timeout_ms"))
	assert.Equal(t, 20, s.GetInt("bar_width"), "environment must override the default")

	assert.Same(t, s, Load())
}
