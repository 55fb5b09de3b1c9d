package indicator

// Themed icon names, as understood by both daemons.
const (
	IconMuted      = "audio-volume-muted"
	IconLow        = "audio-volume-low"
	IconMedium     = "audio-volume-medium"
	IconHigh       = "audio-volume-high"
	IconBrightness = "display-brightness-symbolic"
)

// VolumeIcon picks the icon for a volume level.
func VolumeIcon(level int) string {
	switch {
	case level <= 0:
		return IconMuted
	case level < 30:
		return IconLow
	case level < 80:
		return IconMedium
	default:
		return IconHigh
	}
}
