package renderer

import (
	"github.com/Carmen-Shannon/mood-space/common"
)

// headlessRendererBackend satisfies RendererBackend without a GPU. It remembers the last
// configuration and clear color so tests and offscreen runs can inspect them.
type headlessRendererBackend struct {
	width, height int
	presentMode   PresentMode
	clear         common.RGB
	lights        []byte
	presented     int
}

var _ RendererBackend = &headlessRendererBackend{}

func newHeadlessRendererBackend() *headlessRendererBackend {
	return &headlessRendererBackend{}
}

func (b *headlessRendererBackend) ConfigureSurface(width, height int) {
	b.width, b.height = width, height
}

func (b *headlessRendererBackend) SetPresentMode(mode PresentMode) {
	b.presentMode = mode
}

func (b *headlessRendererBackend) WriteLights(data []byte) error {
	b.lights = append(b.lights[:0], data...)
	return nil
}

func (b *headlessRendererBackend) BeginFrame(clear common.RGB) error {
	b.clear = clear
	return nil
}

func (b *headlessRendererBackend) EndFrame() {}

func (b *headlessRendererBackend) Present() {
	b.presented++
}

func (b *headlessRendererBackend) Release() {}
