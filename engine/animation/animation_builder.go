package animation

import (
	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/starfield"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithStarfields sets the near and far point clouds to rotate. Either may be nil.
//
// Parameters:
//   - near: the near star layer
//   - far: the far star layer
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithStarfields(near, far *starfield.PointCloud) ControllerBuilderOption {
	return func(c *controller) {
		c.near = near
		c.far = far
	}
}

// WithBackground sets the initial background color.
//
// Parameters:
//   - bg: the starting color
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithBackground(bg common.RGB) ControllerBuilderOption {
	return func(c *controller) {
		c.background = bg
	}
}
