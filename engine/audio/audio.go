// Package audio plays the short notification tone that accompanies a selection.
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

var (
	// ErrUnavailable is returned by Play when the audio device could not be opened.
	ErrUnavailable = errors.New("audio unavailable")
	// ErrBusy is returned by Play when too many cues are already queued.
	ErrBusy = errors.New("audio queue full")
	// ErrClosed is returned by Play after Close.
	ErrClosed = errors.New("audio player closed")
)

// Cue is a fire-and-forget sound. Play must not block the caller.
type Cue interface {
	// Play requests playback of the cue.
	//
	// Returns:
	//   - error: non-nil if the request was dropped; callers are free to ignore it
	Play() error
}

type silent struct{}

func (silent) Play() error { return nil }

// Silent is a Cue that does nothing.
var Silent Cue = silent{}

// Player is a Cue backed by the system speaker. Tones are synthesized and handed to the speaker
// on a small worker pool so the frame loop never waits on the audio device.
type Player interface {
	Cue

	// Ready reports whether the speaker was opened successfully.
	//
	// Returns:
	//   - bool: false when playback is disabled
	Ready() bool

	// Close stops the worker pool. Subsequent Play calls return ErrClosed.
	Close()
}

type playerImpl struct {
	mu *sync.Mutex

	sampleRate beep.SampleRate
	frequency  float64
	duration   time.Duration
	volume     float64
	workers    int
	queueSize  int

	pool    worker.DynamicWorkerPool
	pending atomic.Int32
	nextID  int
	ready   bool
	closed  bool

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s beep.Streamer)
}

var _ Player = &playerImpl{}

// NewPlayer opens the speaker and starts the playback pool. A speaker that cannot be opened is
// logged and leaves the player in a disabled state rather than failing construction.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the player, possibly disabled
func NewPlayer(options ...PlayerBuilderOption) Player {
	p := &playerImpl{
		mu:          &sync.Mutex{},
		sampleRate:  beep.SampleRate(44100),
		frequency:   880,
		duration:    120 * time.Millisecond,
		volume:      0.35,
		workers:     1,
		queueSize:   8,
		initSpeaker: speaker.Init,
		play:        func(s beep.Streamer) { speaker.Play(s) },
	}
	for _, option := range options {
		option(p)
	}

	if err := p.initSpeaker(p.sampleRate, p.sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("[Audio] speaker init failed, cues disabled: %v", err)
		return p
	}
	p.ready = true
	p.pool = worker.NewDynamicWorkerPool(p.workers, p.queueSize, time.Second)
	return p
}

func (p *playerImpl) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *playerImpl) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if !p.ready {
		return ErrUnavailable
	}
	if int(p.pending.Load()) >= p.queueSize {
		return ErrBusy
	}

	p.pending.Add(1)
	id := p.nextID
	p.nextID++
	p.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer p.pending.Add(-1)
			s, err := p.tone()
			if err != nil {
				log.Printf("[Audio] cue %d dropped: %v", id, err)
				return nil, err
			}
			p.play(s)
			return nil, nil
		},
	})
	return nil
}

func (p *playerImpl) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.pool != nil {
		p.pool.Stop()
	}
}

// tone builds the cue: a sine at the configured frequency, cut to the configured duration.
func (p *playerImpl) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(p.sampleRate, p.frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", p.frequency, err)
	}
	return withVolume(beep.Take(p.sampleRate.N(p.duration), sine), p.volume), nil
}

// withVolume scales s by a linear gain. A gain of zero or less silences it.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
