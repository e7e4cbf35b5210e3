// Package picker resolves a pointer position into the body under it.
package picker

import (
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/camera"
)

// Viewport is the drawable area in pixels that pointer coordinates are relative to.
type Viewport struct {
	Width  float32
	Height float32
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// NDC converts a pixel position with a top-left origin into normalized device coordinates,
// with +Y pointing up.
//
// Parameters:
//   - x, y: pointer position in pixels
//
// Returns:
//   - float32: ndc x in [-1, 1]
//   - float32: ndc y in [-1, 1]
func (v Viewport) NDC(x, y float32) (float32, float32) {
	return x/v.Width*2 - 1, -(y/v.Height)*2 + 1
}

// Pick casts a ray from cam through the pointer position and returns the nearest candidate whose
// bounding sphere it hits. Each sphere sits at the body's animated position with its animated
// radius. Candidates are never mutated.
//
// Parameters:
//   - x, y: pointer position in pixels relative to the viewport's top-left corner
//   - viewport: the drawable area
//   - cam: the camera the scene is viewed through
//   - candidates: the bodies that may be hit
//
// Returns:
//   - body.ID: the nearest hit body
//   - bool: false when nothing was hit or the viewport is empty
func Pick(x, y float32, viewport Viewport, cam camera.Camera, candidates []*body.Body) (body.ID, bool) {
	if viewport.Empty() || cam == nil {
		return 0, false
	}
	ray, ok := cam.Ray(viewport.NDC(x, y))
	if !ok {
		return 0, false
	}

	var (
		hitID   body.ID
		hitDist float32
		found   bool
	)
	for _, b := range candidates {
		if b == nil {
			continue
		}
		t, ok := ray.IntersectSphere(b.WorldPosition(), b.WorldRadius())
		if !ok {
			continue
		}
		if !found || t < hitDist {
			hitID, hitDist, found = b.ID, t, true
		}
	}
	return hitID, found
}
