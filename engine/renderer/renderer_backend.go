package renderer

import (
	"github.com/Carmen-Shannon/mood-space/common"
)

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend. It requires a Surface.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeHeadless selects a backend that draws nothing. Frames are still recorded.
	BackendTypeHeadless
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the per-API half of the Renderer. A frame is BeginFrame, EndFrame, Present.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain at the given size.
	ConfigureSurface(width, height int)

	// SetPresentMode changes the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// WriteLights uploads a packed light buffer (header plus records) for the next frame.
	WriteLights(data []byte) error

	// BeginFrame acquires the next target and opens a pass cleared to clear.
	BeginFrame(clear common.RGB) error

	// EndFrame closes the pass and submits it.
	EndFrame()

	// Present shows the submitted frame.
	Present()

	// Release frees every GPU object the backend owns.
	Release()
}
