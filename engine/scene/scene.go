// Package scene composes the mood bodies, their interaction rules and their animation into one
// object a host can drive with input events, ticks and render calls.
package scene

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Carmen-Shannon/mood-space/engine/animation"
	"github.com/Carmen-Shannon/mood-space/engine/audio"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/camera"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/interaction"
	"github.com/Carmen-Shannon/mood-space/engine/light"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
	"github.com/Carmen-Shannon/mood-space/engine/picker"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
	"github.com/Carmen-Shannon/mood-space/engine/starfield"
)

// Scene owns the body registry, interaction machine, animation controller, camera and starfields.
// Input, Resize, Tick, Frame, Render and Close serialize on one mutex, so a host may call those
// from any goroutine. The accessors (Registry, Machine, Camera, Renderer, Overlay, Lights) hand out
// collaborators that bypass that mutex; Tick writes body poses through them, so use them only
// from the goroutine driving Tick. The usual host drives everything from a single loop: input,
// then Tick, then Render.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is currently ticked and rendered.
	Active() bool

	// SetActive sets whether this scene is ticked and rendered.
	SetActive(active bool)

	// Registry returns the scene's bodies. Not safe to use concurrently with Tick.
	Registry() body.Registry

	// Machine returns the interaction machine. Calls made through it bypass the scene mutex.
	Machine() interaction.Machine

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Overlay returns the detail overlay.
	Overlay() overlay.Overlay

	// Lights returns the scene's light sources.
	Lights() []light.Light

	// Viewport returns the current drawable size.
	Viewport() picker.Viewport

	// OnPointerDown resolves a pointer press. Ignored while a body is focused.
	//
	// Parameters:
	//   - x, y: pointer position in pixels from the top-left corner
	//
	// Returns:
	//   - body.ID: the selected body
	//   - bool: false if nothing was selected
	OnPointerDown(x, y float32) (body.ID, bool)

	// OnKeyDown forwards a key press to the interaction machine.
	//
	// Parameters:
	//   - key: the key code
	OnKeyDown(key int)

	// Resize updates the camera aspect, the viewport and the renderer surface. Nothing else changes.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width, height: the new size in pixels
	Resize(width, height int)

	// Tick advances animation by dt seconds and refreshes the camera matrices.
	//
	// Parameters:
	//   - dt: frame time in seconds
	Tick(dt float32)

	// Frame snapshots the current render state.
	//
	// Returns:
	//   - renderer.Frame: the snapshot
	Frame() renderer.Frame

	// Render hands the current Frame to the renderer.
	//
	// Returns:
	//   - error: the renderer's error, if any
	Render() error

	// Close closes the overlay and releases the renderer. Safe to call more than once.
	Close()
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	catalog  content.Catalog
	rng      *rand.Rand
	viewport picker.Viewport

	registry body.Registry
	rig      camera.CameraController
	camera   camera.Camera
	machine  interaction.Machine
	animator animation.Controller
	near     *starfield.PointCloud
	far      *starfield.PointCloud
	lights   []light.Light

	renderer renderer.Renderer
	overlay  overlay.Overlay
	cue      audio.Cue
	onUnlock interaction.UnlockHandler

	frameIndex uint64
	closed     bool
}

var _ Scene = &scene{}

// NewScene builds the initial four-body scene. Without options it uses the embedded catalog,
// a headless renderer, a logging overlay, no audio and a time-seeded random source.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
//   - error: error if the catalog cannot populate the registry
func NewScene(options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		mu:       &sync.Mutex{},
		name:     "moods",
		active:   true,
		catalog:  content.Default(),
		viewport: picker.Viewport{Width: 1280, Height: 720},
		cue:      audio.Silent,
	}
	for _, option := range options {
		option(s)
	}

	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if s.overlay == nil {
		s.overlay = overlay.NewOverlay()
	}
	if s.renderer == nil {
		s.renderer = renderer.NewRenderer(renderer.BackendTypeHeadless, nil)
	}
	if s.lights == nil {
		s.lights = light.DefaultRig()
	}

	reg, err := body.NewRegistry(s.catalog)
	if err != nil {
		return nil, fmt.Errorf("new scene %q: %w", s.name, err)
	}
	s.registry = reg

	s.near = starfield.NewLayer(starfield.LayerNear, s.rng)
	s.far = starfield.NewLayer(starfield.LayerFar, s.rng)

	s.rig = camera.NewCameraController()
	s.camera = camera.NewCamera(
		camera.WithAspect(s.viewport.Width/s.viewport.Height),
		camera.WithController(s.rig),
	)

	s.machine = interaction.NewMachine(reg, s.camera,
		interaction.WithOverlay(s.overlay),
		interaction.WithCue(s.cue),
		interaction.WithUnlockHandler(s.unlocked),
	)
	s.animator = animation.NewController(reg, s.rig, animation.WithStarfields(s.near, s.far))

	return s, nil
}

// unlocked runs inside OnPointerDown, with the scene mutex held.
func (s *scene) unlocked(final *body.Body) {
	log.Printf("[Scene] %s: %q joined the scene", s.name, final.Title)
	if s.onUnlock != nil {
		s.onUnlock(final)
	}
}

func (s *scene) Lights() []light.Light {
	return s.lights
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Registry() body.Registry {
	return s.registry
}

func (s *scene) Machine() interaction.Machine {
	return s.machine
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Renderer() renderer.Renderer {
	return s.renderer
}

func (s *scene) Overlay() overlay.Overlay {
	return s.overlay
}

func (s *scene) Viewport() picker.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

func (s *scene) OnPointerDown(x, y float32) (body.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}
	return s.machine.HandlePointerDown(x, y, s.viewport)
}

func (s *scene) OnKeyDown(key int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.machine.HandleKeyDown(key)
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = picker.Viewport{Width: float32(width), Height: float32(height)}
	s.camera.SetAspect(float32(width) / float32(height))
	s.renderer.Resize(width, height)
}

func (s *scene) Tick(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.animator.Tick(dt, s.machine.State())
	s.camera.Update()
}

func (s *scene) Frame() renderer.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// frameLocked builds the snapshot. Caller must hold the mutex.
func (s *scene) frameLocked() renderer.Frame {
	bodies := s.registry.Bodies()
	f := renderer.Frame{
		Index:          s.frameIndex,
		CameraPosition: s.camera.Position(),
		CameraTarget:   s.camera.Target(),
		ViewProjection: s.camera.ViewProjectionMatrix(),
		Background:     s.animator.Background(),
		Bodies:         make([]renderer.BodyInstance, 0, len(bodies)),
		Lights:         light.Pack(s.lights),
	}
	for _, b := range bodies {
		f.Bodies = append(f.Bodies, renderer.NewBodyInstance(b))
	}
	for _, pc := range []*starfield.PointCloud{s.near, s.far} {
		f.Stars = append(f.Stars, renderer.StarLayer{
			Positions: pc.Points(),
			Points:    pc.Len(),
			Rotation:  pc.Rotation(),
			Opacity:   pc.Opacity(),
			PointSize: starfield.PointSize,
		})
	}
	return f
}

func (s *scene) Render() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrReleased
	}
	f := s.frameLocked()
	if err := s.renderer.RenderFrame(f); err != nil {
		return err
	}
	s.frameIndex++
	return nil
}

func (s *scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.overlay.Close()
	s.renderer.Release()
}
