package camera

import (
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
)

// DefaultHome is the resting eye position looking down -Z at the origin.
var DefaultHome = common.V3(0, 0, 12)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	home   common.Vec3
	target common.Vec3

	drift  common.Vec3
	offset common.Vec3
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller resting at DefaultHome and looking at the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		home:  DefaultHome,
		drift: DefaultHome,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Position() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.drift.Add(cc.offset)
}

func (cc *cameraControllerImpl) Target() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(target common.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = target
}

func (cc *cameraControllerImpl) Home() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.home
}

func (cc *cameraControllerImpl) Drift() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.drift
}

func (cc *cameraControllerImpl) SetDrift(drift common.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.drift = drift
}

func (cc *cameraControllerImpl) FocusOffset() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.offset
}

func (cc *cameraControllerImpl) SetFocusOffset(offset common.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.offset = offset
}
