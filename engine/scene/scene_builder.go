package scene

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/mood-space/engine/audio"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/interaction"
	"github.com/Carmen-Shannon/mood-space/engine/light"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier used in log lines.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for ticking and rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCatalog replaces the embedded mood catalog.
//
// Parameters:
//   - c: the catalog to populate the registry from
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCatalog(c content.Catalog) SceneBuilderOption {
	return func(s *scene) {
		s.catalog = c
	}
}

// WithRand sets the random source the starfields are generated from.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRand(rng *rand.Rand) SceneBuilderOption {
	return func(s *scene) {
		s.rng = rng
	}
}

// WithViewport sets the initial drawable size. Non-positive sizes are ignored.
//
// Parameters:
//   - width, height: the size in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewport(width, height int) SceneBuilderOption {
	return func(s *scene) {
		if width > 0 && height > 0 {
			s.viewport.Width = float32(width)
			s.viewport.Height = float32(height)
		}
	}
}

// WithRenderer sets the renderer frames are handed to.
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.renderer = r
	}
}

// WithOverlay sets the overlay opened on selection.
func WithOverlay(o overlay.Overlay) SceneBuilderOption {
	return func(s *scene) {
		s.overlay = o
	}
}

// WithCue sets the sound played on selection.
func WithCue(cue audio.Cue) SceneBuilderOption {
	return func(s *scene) {
		if cue != nil {
			s.cue = cue
		}
	}
}

// WithUnlockHandler registers a function notified when the final body appears.
// It runs with the scene locked and must not call back into the scene.
func WithUnlockHandler(h interaction.UnlockHandler) SceneBuilderOption {
	return func(s *scene) {
		s.onUnlock = h
	}
}

// WithLights replaces the default ambient, key and rim lights.
//
// Parameters:
//   - lights: the scene's light sources
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = lights
	}
}
