// Package mixer reports and mutates the level and mute state of the
// default audio output.
package mixer

// Mixer is the audio side of the tool. Level and Muted are queries;
// the rest mutate the default sink.
type Mixer interface {
	// Level returns the current output volume as a percentage 0-100.
	Level() (int, error)
	// Muted reports whether the output is currently muted.
	Muted() (bool, error)
	// ChangeLevel adjusts the volume by delta percentage points
	// (negative to lower).
	ChangeLevel(delta int) error
	// SetMuted forces the mute state.
	SetMuted(mute bool) error
	// ToggleMuted flips the mute state.
	ToggleMuted() error
}
