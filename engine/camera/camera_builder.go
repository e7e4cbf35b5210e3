package camera

import "github.com/chewxy/math32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithFovDegrees sets the vertical field of view. Values outside (0, 180) are ignored.
//
// Parameters:
//   - degrees: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovDegrees(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if degrees > 0 && degrees < 180 {
			c.fov = degrees * math32.Pi / 180
		}
	}
}

// WithAspect sets the camera's aspect ratio (width / height). Non-positive values are ignored.
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithClipPlanes sets the near and far plane distances. The pair is ignored unless
// 0 < near < far.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets both planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 && far > near {
			c.near, c.far = near, far
		}
	}
}

// WithController attaches the controller the camera reads its position and target from.
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
