package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// PlayerBuilderOption is a functional option for configuring a Player.
type PlayerBuilderOption func(*playerImpl)

// WithSampleRate sets the speaker sample rate.
//
// Parameters:
//   - sr: samples per second
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithSampleRate(sr int) PlayerBuilderOption {
	return func(p *playerImpl) {
		if sr > 0 {
			p.sampleRate = beep.SampleRate(sr)
		}
	}
}

// WithTone sets the cue's pitch and length.
//
// Parameters:
//   - frequency: tone frequency in Hz
//   - duration: how long the tone plays
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithTone(frequency float64, duration time.Duration) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.frequency = frequency
		p.duration = duration
	}
}

// WithVolume sets the linear gain applied to the tone. 0 mutes it.
func WithVolume(gain float64) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.volume = gain
	}
}

// WithQueueSize caps how many cues may wait for playback before Play starts returning ErrBusy.
func WithQueueSize(n int) PlayerBuilderOption {
	return func(p *playerImpl) {
		if n > 0 {
			p.queueSize = n
		}
	}
}
