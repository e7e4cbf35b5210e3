// Package window hosts the scene in a native window and turns platform input into scene events.
package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window defines the interface for a native window the scene renders into.
// Callbacks run synchronously on the thread that calls PollEvents.
type Window interface {
	// SetResizeCallback sets the callback invoked when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback invoked when a key is pressed or repeats.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode int))

	// SetPointerDownCallback sets the callback invoked when the primary mouse button is pressed.
	// Coordinates are framebuffer pixels with the origin at the top-left corner.
	//
	// Parameters:
	//   - callback: function receiving the pointer position
	SetPointerDownCallback(callback func(x, y float32))

	// SurfaceDescriptor returns the platform surface descriptor the renderer presents into.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once the user closed the window or Close was called
	IsRunning() bool

	// PollEvents dispatches pending platform events to the registered callbacks without blocking.
	//
	// Returns:
	//   - bool: IsRunning after the events were processed
	PollEvents() bool

	// Close destroys the native window.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height track the framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window state.
	internalWindow any

	onResize      func(width, height int)
	onKeyDown     func(keyCode int)
	onPointerDown func(x, y float32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new native window with the given options. Panics if the platform window
// cannot be created.
//
// Parameters:
//   - options: variadic list of WindowBuilderOption functions to configure the window
//
// Returns:
//   - Window: the newly created window instance
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Mood Space",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode int)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(x, y float32)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// toFramebuffer converts a cursor position in screen coordinates into framebuffer pixels.
// The two differ on high-DPI displays.
func toFramebuffer(x, y float64, winW, winH, fbW, fbH int) (float32, float32) {
	sx, sy := 1.0, 1.0
	if winW > 0 && fbW > 0 {
		sx = float64(fbW) / float64(winW)
	}
	if winH > 0 && fbH > 0 {
		sy = float64(fbH) / float64(winH)
	}
	return float32(x * sx), float32(y * sy)
}
