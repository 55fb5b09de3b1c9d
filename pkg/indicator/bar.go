package indicator

import "strings"

const (
	filledGlyph = "█"
	emptyGlyph  = "░"
)

// Bar renders a fixed-width progress bar: level/(100/width) filled
// columns, the remainder empty.
func Bar(level, width int) string {
	if width <= 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	filled := level / (100 / width)
	if filled > width {
		filled = width
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(filledGlyph, filled))
	b.WriteString(strings.Repeat(emptyGlyph, width-filled))
	return b.String()
}
