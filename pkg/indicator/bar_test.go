package indicator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countFilled(bar string) int {
	return strings.Count(bar, filledGlyph)
}

func TestBar(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		width      int
		wantFilled int
	}{
		{"empty", 0, 25, 0},
		{"full", 100, 25, 25},
		{"54 percent", 54, 25, 13},
		{"just below a column", 3, 25, 0},
		{"exactly one column", 4, 25, 1},
		{"negative clamps to empty", -10, 25, 0},
		{"above 100 clamps to full", 130, 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.level, tt.width)
			assert.Equal(t, tt.wantFilled, countFilled(bar))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(bar, emptyGlyph))
		})
	}
}

func TestBarMonotonic(t *testing.T) {
	prev := 0
	for level := 0; level <= 100; level++ {
		filled := countFilled(Bar(level, 25))
		assert.GreaterOrEqual(t, filled, prev, "level %d", level)
		prev = filled
	}
}

func TestBarZeroWidth(t *testing.T) {
	assert.Equal(t, "", Bar(50, 0))
}

func TestVolumeIcon(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, IconMuted},
		{-3, IconMuted},
		{1, IconLow},
		{29, IconLow},
		{30, IconMedium},
		{79, IconMedium},
		{80, IconHigh},
		{100, IconHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VolumeIcon(tt.level), "level %d", tt.level)
	}
}
