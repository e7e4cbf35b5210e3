// Package body holds the ordered set of selectable bodies and the rules that grow it.
package body

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/content"
)

// ErrUnknownBody is returned when an ID does not name a registered body.
var ErrUnknownBody = errors.New("unknown body")

// FinalPosition is where the final body appears once unlocked.
var FinalPosition = common.V3(0, 0, -2)

type registry struct {
	mu *sync.Mutex

	bodies []*Body
	final  *Body

	finalMood content.Mood
	nextID    ID
}

// Registry owns every Body record. The first four bodies are fixed at construction;
// UnlockFinal appends a fifth exactly once. Bodies are never removed.
type Registry interface {
	// Bodies returns the bodies in their fixed order. The final body, if unlocked, is last.
	//
	// Returns:
	//   - []*Body: a copy of the ordered body slice
	Bodies() []*Body

	// Len returns the number of registered bodies.
	//
	// Returns:
	//   - int: 4 before unlock, 5 after
	Len() int

	// Get looks up a body by ID.
	//
	// Parameters:
	//   - id: the body ID
	//
	// Returns:
	//   - *Body: the body, or nil if unknown
	Get(id ID) *Body

	// MarkOpened sets the body's Opened flag. Idempotent.
	//
	// Parameters:
	//   - id: the body ID
	//
	// Returns:
	//   - bool: true only on the call that flipped Opened from false to true
	//   - error: ErrUnknownBody if id is not registered
	MarkOpened(id ID) (bool, error)

	// UnlockFinal appends the final body at FinalPosition. Calling it again returns the
	// same instance without growing the registry.
	//
	// Returns:
	//   - *Body: the final body
	UnlockFinal() *Body

	// Unlocked reports whether the final body has been appended.
	//
	// Returns:
	//   - bool: true after the first UnlockFinal
	Unlocked() bool
}

var _ Registry = &registry{}

// NewRegistry lays out one body per catalog mood along a horizontal line with alternating
// vertical offsets: x = -4 + i*2.7, y = +1.8 for even i and -1.8 for odd i, z = 0.
//
// Parameters:
//   - catalog: the mood catalog supplying display data
//
// Returns:
//   - Registry: the populated registry
//   - error: error if the catalog does not hold exactly content.MoodCount moods
func NewRegistry(catalog content.Catalog) (Registry, error) {
	if len(catalog.Moods) != content.MoodCount {
		return nil, fmt.Errorf("new registry: %w: got %d", content.ErrMoodCount, len(catalog.Moods))
	}

	r := &registry{
		mu:        &sync.Mutex{},
		finalMood: catalog.Final,
		nextID:    1,
	}
	for i, m := range catalog.Moods {
		y := float32(1.8)
		if i%2 == 1 {
			y = -1.8
		}
		r.bodies = append(r.bodies, r.newBody(m, common.V3(-4+float32(i)*2.7, y, 0), MoodRadius, RestEmissive))
	}
	return r, nil
}

// newBody allocates the next ID and builds a labeled body at rest.
// Caller must hold the mutex or own r exclusively.
func (r *registry) newBody(m content.Mood, pos common.Vec3, radius, emissive float32) *Body {
	b := &Body{
		ID:              r.nextID,
		Title:           m.Title,
		Text:            m.Text,
		DisplayColor:    m.Color,
		BackgroundColor: m.Background,
		Position:        pos,
		BaseScale:       1,
		Radius:          radius,
		Label: &Label{
			Text:   m.Title,
			Offset: common.V3(0, 1.5, 0),
			Size:   [2]float32{3.6, 0.9},
		},
		Glow: &Glow{Scale: GlowScale, Opacity: GlowOpacity},
		Pose: Pose{Scale: 1, Emissive: emissive},
	}
	r.nextID++
	return b
}

func (r *registry) Bodies() []*Body {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Body, len(r.bodies))
	copy(out, r.bodies)
	return out
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bodies)
}

func (r *registry) Get(id ID) *Body {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(id)
}

func (r *registry) MarkOpened(id ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.lookup(id)
	if b == nil {
		return false, fmt.Errorf("mark opened %d: %w", id, ErrUnknownBody)
	}
	if b.Opened {
		return false, nil
	}
	b.Opened = true
	return true, nil
}

func (r *registry) UnlockFinal() *Body {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.final != nil {
		return r.final
	}
	f := r.newBody(r.finalMood, FinalPosition, FinalRadius, FinalEmissive)
	f.Final = true
	f.Glow = nil
	r.final = f
	r.bodies = append(r.bodies, f)
	if len(r.bodies) != content.MoodCount+1 {
		panic(fmt.Sprintf("body registry: final body appended at index %d", len(r.bodies)-1))
	}
	return f
}

func (r *registry) Unlocked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.final != nil
}

// lookup finds a body by ID. Caller must hold the mutex.
func (r *registry) lookup(id ID) *Body {
	for _, b := range r.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}
