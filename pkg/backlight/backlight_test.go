package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMachineReadable(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{"typical", "intel_backlight,backlight,48000,50%,96000\n", 50, false},
		{"full", "amdgpu_bl0,backlight,255,100%,255", 100, false},
		{"zero", "intel_backlight,backlight,0,0%,96000\n", 0, false},
		{"missing fields", "intel_backlight,backlight\n", 0, true},
		{"garbage percent", "a,b,c,notanumber,e", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMachineReadable(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLightOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{"integer", "50\n", 50, false},
		{"fractional rounds", "49.60\n", 50, false},
		{"clamped high", "120.0", 100, false},
		{"garbage", "bright\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLightOutput(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeSysfsDevice(t *testing.T, root, name, brightness, max string) {
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte(brightness), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(max), 0o644))
}

func TestSysfsLevel(t *testing.T) {
	root := t.TempDir()
	writeSysfsDevice(t, root, "intel_backlight", "48000\n", "96000\n")

	lvl, err := Sysfs{Root: root}.Level()
	require.NoError(t, err)
	assert.Equal(t, 50, lvl)
}

func TestSysfsLevelNoDevices(t *testing.T) {
	_, err := Sysfs{Root: t.TempDir()}.Level()
	assert.Error(t, err)
}

func TestSysfsChangeLevelIsNoop(t *testing.T) {
	assert.NoError(t, Sysfs{Root: t.TempDir()}.ChangeLevel(8))
}
