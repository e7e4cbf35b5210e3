// Package renderer draws Frame snapshots to a surface.
package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/mood-space/engine/light"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrReleased is returned by RenderFrame after Release.
var ErrReleased = errors.New("renderer released")

// Surface is what a window must provide for the WGPU backend to present into it.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode

	width, height int
	frameCount    uint64
	history       []Frame
	historySize   int
	released      bool
}

// Renderer consumes one Frame per display refresh. It does not own the window it draws into:
// the host creates and destroys that.
type Renderer interface {
	// RenderFrame uploads the frame's lights, clears the surface to its background, submits
	// and presents.
	//
	// Parameters:
	//   - frame: the snapshot to draw
	//
	// Returns:
	//   - error: ErrReleased after Release, or the backend's frame acquisition error
	RenderFrame(frame Frame) error

	// Resize configures the underlying backend to handle a new surface size.
	// Non-positive sizes (a minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the last configured surface size.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode sets the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// FrameCount returns how many frames have been presented.
	//
	// Returns:
	//   - uint64: the presented frame count
	FrameCount() uint64

	// LastFrame returns the most recently presented frame.
	//
	// Returns:
	//   - Frame: the last frame
	//   - bool: false if nothing has been presented
	LastFrame() (Frame, bool)

	// Frames returns the retained frame history, oldest first.
	//
	// Returns:
	//   - []Frame: a copy of the history
	Frames() []Frame

	// Release frees the backend. Safe to call more than once.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given backend type. The WGPU backend panics when the
// GPU cannot be initialized or no surface is given.
//
// Parameters:
//   - backendType: which backend to create
//   - surface: the window to present into; may be nil for BackendTypeHeadless
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		historySize: 1,
	}

	for _, opt := range options {
		opt(r)
	}

	if surface != nil {
		r.width, r.height = surface.Width(), surface.Height()
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeHeadless:
			r.backend = newHeadlessRendererBackend()
		case BackendTypeWGPU:
			fallthrough
		default:
			if surface == nil {
				panic("renderer: WGPU backend requires a surface")
			}
			r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
		}
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	if r.width > 0 && r.height > 0 {
		r.backend.ConfigureSurface(r.width, r.height)
	}
	return r
}

func (r *renderer) RenderFrame(frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return ErrReleased
	}
	if err := r.backend.WriteLights(light.MarshalBuffer(frame.Lights)); err != nil {
		return fmt.Errorf("render frame %d: lights: %w", frame.Index, err)
	}
	if err := r.backend.BeginFrame(frame.Background); err != nil {
		return fmt.Errorf("render frame %d: %w", frame.Index, err)
	}
	r.backend.EndFrame()
	r.backend.Present()

	r.frameCount++
	r.history = append(r.history, frame)
	if over := len(r.history) - r.historySize; over > 0 {
		r.history = append(r.history[:0], r.history[over:]...)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.SetPresentMode(mode)
	if r.width > 0 && r.height > 0 && !r.released {
		r.backend.ConfigureSurface(r.width, r.height)
	}
}

func (r *renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

func (r *renderer) LastFrame() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Frame{}, false
	}
	return r.history[len(r.history)-1], true
}

func (r *renderer) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.history))
	copy(out, r.history)
	return out
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
}
