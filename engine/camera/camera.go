package camera

import (
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/chewxy/math32"
)

type cameraImpl struct {
	mu *sync.Mutex

	up common.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           common.Mat4
	projectionMatrix     common.Mat4
	viewProjectionMatrix common.Mat4

	controller CameraController
}

// Camera defines the interface for the perspective camera.
// The camera holds perspective settings and computes view/projection matrices
// from an attached CameraController each frame via Update().
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - common.Vec3: the up vector
	Up() common.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Position returns the controller's eye position, or the origin without a controller.
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// Target returns the controller's look-at point, or the origin without a controller.
	//
	// Returns:
	//   - common.Vec3: world-space look-at point
	Target() common.Vec3

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the view matrix
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	ProjectionMatrix() common.Mat4

	// ViewProjectionMatrix returns the combined view-projection matrix computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the combined matrix
	ViewProjectionMatrix() common.Mat4

	// Ray returns the world-space ray leaving the eye through the given normalized device
	// coordinate. It reads the controller's current pose and does not touch the cached matrices.
	//
	// Parameters:
	//   - ndcX, ndcY: coordinates in [-1, 1], y pointing up
	//
	// Returns:
	//   - common.Ray: the pick ray
	//   - bool: false if the camera has no controller or its matrices are degenerate
	Ray(ndcX, ndcY float32) (common.Ray, bool)

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update reads position/target from the controller and recomputes matrices.
	// Should be called once per frame after the controller has been moved.
	// If no controller is attached, this method does nothing.
	Update()

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the up vector
	SetUp(up common.Vec3)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the scene's default perspective: 60 degree vertical
// field of view, near plane 0.1 and far plane 100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		up:                   common.V3(0, 1, 0),
		fov:                  60 * (math32.Pi / 180),
		aspect:               1,
		near:                 0.1,
		far:                  100,
		viewMatrix:           common.Identity4(),
		projectionMatrix:     common.Identity4(),
		viewProjectionMatrix: common.Identity4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return common.Vec3{}
	}
	return c.controller.Position()
}

func (c *cameraImpl) Target() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return common.Vec3{}
	}
	return c.controller.Target()
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Ray(ndcX, ndcY float32) (common.Ray, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return common.Ray{}, false
	}

	eye := c.controller.Position()
	view := common.LookAt(eye, c.controller.Target(), c.up)
	proj := common.Perspective(c.fov, c.aspect, c.near, c.far)
	inv, ok := proj.Mul(view).Inverse()
	if !ok {
		return common.Ray{}, false
	}

	// WebGPU clip depth runs 0 (near) to 1 (far)
	nearPt, ok := inv.Project(common.V3(ndcX, ndcY, 0))
	if !ok {
		return common.Ray{}, false
	}
	farPt, ok := inv.Project(common.V3(ndcX, ndcY, 1))
	if !ok {
		return common.Ray{}, false
	}
	dir := farPt.Sub(nearPt)
	if dir.Len() == 0 {
		return common.Ray{}, false
	}
	return common.Ray{Origin: eye, Direction: dir.Normalize()}, true
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(up common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection and view-projection matrices from the
// controller's pose. This is a no-op when the controller is nil.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller == nil {
		return
	}
	c.viewMatrix = common.LookAt(c.controller.Position(), c.controller.Target(), c.up)
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul(c.viewMatrix)
}
