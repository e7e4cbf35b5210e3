// Package interaction owns focus and opened-count state and turns selections into animation targets.
package interaction

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/audio"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/camera"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
	"github.com/Carmen-Shannon/mood-space/engine/picker"
)

// Phase is the machine's coarse state.
type Phase int

const (
	// Idle means nothing is focused and the overlay is closed.
	Idle Phase = iota
	// Focused means one body is focused and the overlay is open.
	Focused
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Focused:
		return "FOCUSED"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// FocusZ is the camera depth used when framing a focused body.
const FocusZ float32 = 6

// FocusPull scales a body's x/y position into the camera target while it is focused.
const FocusPull float32 = 0.3

// DefaultCameraTarget is where the camera rests when nothing is focused.
var DefaultCameraTarget = camera.DefaultHome

// State is the snapshot the animation controller reads every tick.
type State struct {
	// FocusedID is meaningful only when HasFocus is true.
	FocusedID body.ID
	HasFocus  bool
	// OpenedCount counts opened bodies among the original moods only.
	OpenedCount      int
	CameraTarget     common.Vec3
	BackgroundTarget common.RGB
}

// Phase derives the coarse state from the snapshot.
func (s State) Phase() Phase {
	if s.HasFocus {
		return Focused
	}
	return Idle
}

// UnlockHandler is notified once, when the final body joins the registry.
type UnlockHandler func(final *body.Body)

// Machine mediates every transition of the interaction State.
type Machine interface {
	// State returns a copy of the current state.
	//
	// Returns:
	//   - State: the current snapshot
	State() State

	// Select focuses a body, opens the overlay for it and retargets camera and background.
	// Re-selecting the body that is already focused is a no-op.
	//
	// Parameters:
	//   - id: the body to focus
	//
	// Returns:
	//   - error: body.ErrUnknownBody if id is not registered
	Select(id body.ID) error

	// Deselect clears focus, closes the overlay and restores the default targets.
	// No-op while Idle.
	Deselect()

	// HandlePointerDown resolves a pointer press into a selection. Ignored while Focused.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	//   - viewport: the drawable area
	//
	// Returns:
	//   - body.ID: the body that was selected
	//   - bool: false if the press was ignored or hit nothing
	HandlePointerDown(x, y float32, viewport picker.Viewport) (body.ID, bool)

	// HandleKeyDown handles keyboard input. Escape closes the overlay.
	//
	// Parameters:
	//   - key: the key code
	HandleKeyDown(key int)
}

type machine struct {
	mu *sync.Mutex

	registry body.Registry
	camera   camera.Camera
	overlay  overlay.Overlay
	cue      audio.Cue
	onUnlock UnlockHandler

	state State
}

var _ Machine = &machine{}

// NewMachine creates a machine in the Idle phase with default targets.
//
// Parameters:
//   - registry: the bodies that can be selected
//   - cam: the camera pointer presses are resolved through
//   - options: functional options to attach collaborators
//
// Returns:
//   - Machine: the new machine
func NewMachine(registry body.Registry, cam camera.Camera, options ...MachineBuilderOption) Machine {
	m := &machine{
		mu:       &sync.Mutex{},
		registry: registry,
		camera:   cam,
		cue:      audio.Silent,
		state: State{
			CameraTarget:     DefaultCameraTarget,
			BackgroundTarget: common.DefaultBackground,
		},
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *machine) Select(id body.ID) error {
	final, err := m.lockedSelect(id)
	m.notifyUnlock(final)
	return err
}

func (m *machine) lockedSelect(id body.ID) (*body.Body, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectLocked(id)
}

// notifyUnlock runs the unlock handler outside the lock.
func (m *machine) notifyUnlock(final *body.Body) {
	if final != nil && m.onUnlock != nil {
		m.onUnlock(final)
	}
}

// selectLocked performs the select transition. Caller must hold the mutex.
// The returned body is non-nil only when this selection unlocked the final body.
func (m *machine) selectLocked(id body.ID) (*body.Body, error) {
	b := m.registry.Get(id)
	if b == nil {
		return nil, fmt.Errorf("select %d: %w", id, body.ErrUnknownBody)
	}
	if m.state.HasFocus && m.state.FocusedID == id {
		return nil, nil
	}

	m.state.FocusedID = id
	m.state.HasFocus = true
	m.state.BackgroundTarget = b.BackgroundColor
	m.state.CameraTarget = common.V3(b.Position.X()*FocusPull, b.Position.Y()*FocusPull, FocusZ)
	if m.overlay != nil {
		m.overlay.Show(b.Title, b.Text, b.DisplayColor)
	}

	var unlocked *body.Body
	first, err := m.registry.MarkOpened(id)
	if err != nil {
		return nil, fmt.Errorf("select %d: %w", id, err)
	}
	if first && !b.Final {
		m.state.OpenedCount++
		if m.state.OpenedCount > content.MoodCount {
			panic(fmt.Sprintf("interaction: opened count %d exceeds %d moods", m.state.OpenedCount, content.MoodCount))
		}
		if m.state.OpenedCount == content.MoodCount {
			if m.registry.Unlocked() {
				panic("interaction: final body already unlocked before every mood was opened")
			}
			unlocked = m.registry.UnlockFinal()
			log.Printf("[Interaction] all %d moods opened, unlocked %q", content.MoodCount, unlocked.Title)
		}
	}

	if err := m.cue.Play(); err != nil {
		log.Printf("[Interaction] selection cue skipped: %v", err)
	}
	return unlocked, nil
}

func (m *machine) Deselect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deselectLocked()
}

func (m *machine) deselectLocked() {
	if !m.state.HasFocus {
		return
	}
	m.state.FocusedID = 0
	m.state.HasFocus = false
	m.state.CameraTarget = DefaultCameraTarget
	m.state.BackgroundTarget = common.DefaultBackground
	if m.overlay != nil {
		m.overlay.Close()
	}
}

func (m *machine) HandlePointerDown(x, y float32, viewport picker.Viewport) (body.ID, bool) {
	id, final, ok := m.pointerSelect(x, y, viewport)
	m.notifyUnlock(final)
	return id, ok
}

func (m *machine) pointerSelect(x, y float32, viewport picker.Viewport) (body.ID, *body.Body, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// the overlay is modal
	if m.state.HasFocus {
		return 0, nil, false
	}
	id, ok := picker.Pick(x, y, viewport, m.camera, m.registry.Bodies())
	if !ok {
		return 0, nil, false
	}
	final, err := m.selectLocked(id)
	if err != nil {
		log.Printf("[Interaction] pointer select: %v", err)
		return 0, nil, false
	}
	return id, final, true
}

func (m *machine) HandleKeyDown(key int) {
	if key != common.KeyEsc {
		return
	}
	m.Deselect()
}
