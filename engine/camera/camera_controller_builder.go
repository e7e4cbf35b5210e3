package camera

import (
	"github.com/Carmen-Shannon/mood-space/common"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithHome sets the resting eye position. The drift starts here.
//
// Parameters:
//   - home: the resting world-space position
//
// Returns:
//   - CameraControllerOption: functional option to set the home position
func WithHome(home common.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.home = home
		cc.drift = home
	}
}

// WithTarget sets the look-at point.
//
// Parameters:
//   - target: the world-space look-at point
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(target common.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = target
	}
}
