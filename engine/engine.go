// Package engine drives scenes from a host window: poll input, tick, render, repeat.
package engine

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/mood-space/engine/profiler"
	"github.com/Carmen-Shannon/mood-space/engine/scene"
	"github.com/Carmen-Shannon/mood-space/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine has no window")

// MaxFrameDelta caps the dt handed to scenes after a stall such as a window drag,
// so easing resumes smoothly instead of jumping.
const MaxFrameDelta float32 = 0.1

// engine implements the Engine interface.
// Everything runs on the goroutine that calls Run: input callbacks fire inside PollEvents,
// before the frame's tick, so a tick always sees the targets set by that frame's input.
type engine struct {
	mu *sync.Mutex

	running     bool
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine is the main entry point for the engine.
// It owns the frame loop and routes window events to its scenes.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers a function called each frame after the scenes have ticked.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers a function called each frame after the scenes have rendered.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are ticked and rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining order (lower goes first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run runs the frame loop on the calling goroutine until the window closes, Quit is called
	// or ctx is cancelled.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: ctx.Err() on cancellation, ErrNoWindow without a window, nil otherwise
	Run(ctx context.Context) error

	// Running reports whether Run is executing.
	Running() bool

	// Quit stops the frame loop after the current frame.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options and wires the window's
// resize, pointer and key events to the registered scenes.
//
// Parameters:
//   - options: functional options for engine configuration (window, scenes, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:          &sync.Mutex{},
		quitChannel: make(chan struct{}),
		scenes:      make(map[int]scene.Scene),
		profiler:    profiler.NewProfiler(),
		now:         time.Now,
		sleep:       time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			for _, s := range e.orderedScenes(false) {
				s.Resize(width, height)
			}
		})
		e.window.SetPointerDownCallback(func(x, y float32) {
			for _, s := range e.orderedScenes(true) {
				if _, ok := s.OnPointerDown(x, y); ok {
					return
				}
			}
		})
		e.window.SetKeyDownCallback(func(keyCode int) {
			for _, s := range e.orderedScenes(true) {
				s.OnKeyDown(keyCode)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run(ctx context.Context) error {
	if e.window == nil {
		return ErrNoWindow
	}
	e.setRunning(true)
	defer e.setRunning(false)

	last := e.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.quitChannel:
			return nil
		default:
		}

		frameStart := e.now()
		if !e.window.PollEvents() {
			return nil
		}

		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}
		e.step(dt)

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()
		if limit > 0 {
			if remaining := limit - e.now().Sub(frameStart); remaining > 0 {
				e.sleep(remaining)
			}
		}
	}
}

// step runs one frame: tick every active scene, then render every active scene.
func (e *engine) step(dt float32) {
	active := e.orderedScenes(true)
	for _, s := range active {
		s.Tick(dt)
	}

	e.mu.Lock()
	tick, render, profiling := e.tickCallback, e.renderCallback, e.profilingEnabled
	e.mu.Unlock()

	if tick != nil {
		tick(dt)
	}
	for _, s := range active {
		if err := s.Render(); err != nil {
			log.Printf("[Engine] render scene %q: %v", s.Name(), err)
		}
	}
	if render != nil {
		render(dt)
	}
	if profiling && e.profiler != nil {
		e.profiler.Tick()
	}
}

// orderedScenes returns the scenes in ascending key order, optionally only the active ones.
func (e *engine) orderedScenes(activeOnly bool) []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		s := e.scenes[k]
		if activeOnly && !s.Active() {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (e *engine) setRunning(running bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = running
}

func (e *engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Quit signals the loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

// frameDuration converts a frame rate into a minimum frame duration. 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
