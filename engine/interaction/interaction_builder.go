package interaction

import (
	"github.com/Carmen-Shannon/mood-space/engine/audio"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
)

// MachineBuilderOption is a functional option for configuring a Machine.
type MachineBuilderOption func(*machine)

// WithOverlay sets the overlay that is opened on select and closed on deselect.
//
// Parameters:
//   - o: the overlay
//
// Returns:
//   - MachineBuilderOption: option function to apply
func WithOverlay(o overlay.Overlay) MachineBuilderOption {
	return func(m *machine) {
		m.overlay = o
	}
}

// WithCue sets the sound played on every select. Playback errors are logged and dropped.
//
// Parameters:
//   - cue: the selection cue; nil keeps audio.Silent
//
// Returns:
//   - MachineBuilderOption: option function to apply
func WithCue(cue audio.Cue) MachineBuilderOption {
	return func(m *machine) {
		if cue != nil {
			m.cue = cue
		}
	}
}

// WithUnlockHandler registers the function notified when the final body is unlocked.
// The handler runs after the machine's lock is released and may call back into it.
//
// Parameters:
//   - h: the unlock handler
//
// Returns:
//   - MachineBuilderOption: option function to apply
func WithUnlockHandler(h UnlockHandler) MachineBuilderOption {
	return func(m *machine) {
		m.onUnlock = h
	}
}
