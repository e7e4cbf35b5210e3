// Package overlay is the detail card shown while a body is focused.
package overlay

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
)

// Card is the content most recently shown on an overlay.
type Card struct {
	Title  string
	Body   string
	Accent common.RGB
}

// Overlay receives open and close decisions from the interaction layer. It owns presentation only.
type Overlay interface {
	// Show opens the overlay with the given content, replacing anything already shown.
	//
	// Parameters:
	//   - title: card heading
	//   - body: card text
	//   - accent: heading color
	Show(title, body string, accent common.RGB)

	// Close hides the overlay. No-op if already closed.
	Close()

	// Active reports whether the overlay is currently shown.
	//
	// Returns:
	//   - bool: true between Show and Close
	Active() bool

	// Card returns the content of the last Show call.
	//
	// Returns:
	//   - Card: the last card shown, zero if none
	Card() Card
}

type overlayImpl struct {
	mu *sync.Mutex

	card   Card
	active bool
	logf   func(format string, args ...any)
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates an overlay that records its card and writes open/close events to the log.
//
// Parameters:
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the overlay, initially closed
func NewOverlay(options ...OverlayBuilderOption) Overlay {
	o := &overlayImpl{
		mu:   &sync.Mutex{},
		logf: log.Printf,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *overlayImpl) Show(title, body string, accent common.RGB) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.card = Card{Title: title, Body: body, Accent: accent}
	o.active = true
	if o.logf != nil {
		o.logf("[Overlay] %s (%s): %s", title, accent, body)
	}
}

func (o *overlayImpl) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.active {
		return
	}
	o.active = false
	if o.logf != nil {
		o.logf("[Overlay] closed %s", o.card.Title)
	}
}

func (o *overlayImpl) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

func (o *overlayImpl) Card() Card {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.card
}
