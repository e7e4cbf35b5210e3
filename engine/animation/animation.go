// Package animation eases every animated value in the scene toward the targets set by interaction.
//
// All rates are expressed per frame at common.ReferenceFrameRate and scaled by the real frame
// time, so the scene moves at the same wall-clock speed on any display.
package animation

import (
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/camera"
	"github.com/Carmen-Shannon/mood-space/engine/interaction"
	"github.com/Carmen-Shannon/mood-space/engine/starfield"
)

// Per-reference-frame rates.
const (
	OrbitStep      float32 = 0.0005
	OrbitRadiusX   float32 = 1.2
	OrbitRadiusZ   float32 = 0.6
	DriftEase      float32 = 0.02
	FocusEase      float32 = 0.05
	BackgroundEase float32 = 0.03

	NearStarsIdle    float32 = 0.00025
	NearStarsFocused float32 = 0.0001
	FarStars         float32 = 0.00008

	BodySpin     float32 = 0.002
	BobAmplitude float32 = 0.001
	PoseEase     float32 = 0.08

	FocusedScale    float32 = 1.45
	RestScale       float32 = 1
	FocusedEmissive float32 = 0.6
)

// Controller advances the scene's animated state once per frame.
type Controller interface {
	// Tick advances every animated value by dt seconds toward the targets in state.
	// Non-positive dt is ignored.
	//
	// Parameters:
	//   - dt: frame time in seconds
	//   - state: the interaction snapshot to ease toward
	Tick(dt float32, state interaction.State)

	// Elapsed returns the total animated time.
	//
	// Returns:
	//   - time.Duration: the sum of every accepted dt
	Elapsed() time.Duration

	// Background returns the current, eased background color.
	//
	// Returns:
	//   - common.RGB: the background color
	Background() common.RGB

	// OrbitAngle returns the current idle orbit angle in radians.
	//
	// Returns:
	//   - float32: the orbit angle
	OrbitAngle() float32
}

type controller struct {
	mu *sync.Mutex

	registry body.Registry
	rig      camera.CameraController
	near     *starfield.PointCloud
	far      *starfield.PointCloud

	elapsed    float32
	orbit      float32
	background common.RGB
}

var _ Controller = &controller{}

// NewController creates a controller that writes body poses into registry and camera
// contributions into rig.
//
// Parameters:
//   - registry: the bodies to animate
//   - rig: the camera controller whose drift and focus offset are eased
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the new controller
func NewController(registry body.Registry, rig camera.CameraController, options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:         &sync.Mutex{},
		registry:   registry,
		rig:        rig,
		background: common.DefaultBackground,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Tick(dt float32, state interaction.State) {
	if dt <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	frames := common.Frames(dt)
	c.elapsed += dt
	c.orbit += OrbitStep * frames

	c.tickCamera(dt, state)
	c.background = c.background.Lerp(state.BackgroundTarget, common.Smoothing(BackgroundEase, dt))
	c.tickStars(frames, state.HasFocus)
	c.tickBodies(dt, frames, state)
}

// tickCamera eases the two camera contributions independently: the idle drift follows the orbit
// around home and the focus offset follows the interaction's camera target.
func (c *controller) tickCamera(dt float32, state interaction.State) {
	if c.rig == nil {
		return
	}
	home := c.rig.Home()
	sin, cos := math32.Sincos(c.orbit)

	drift := c.rig.Drift()
	k := common.Smoothing(DriftEase, dt)
	drift[0] = common.Approach(drift[0], home.X()+sin*OrbitRadiusX, k)
	drift[2] = common.Approach(drift[2], home.Z()+cos*OrbitRadiusZ, k)
	c.rig.SetDrift(drift)

	offset := c.rig.FocusOffset()
	c.rig.SetFocusOffset(common.ApproachVec3(offset, state.CameraTarget.Sub(home), common.Smoothing(FocusEase, dt)))
}

func (c *controller) tickStars(frames float32, focused bool) {
	if c.near != nil {
		rate := NearStarsIdle
		if focused {
			rate = NearStarsFocused
		}
		c.near.Rotate(rate * frames)
	}
	if c.far != nil {
		c.far.Rotate(FarStars * frames)
	}
}

func (c *controller) tickBodies(dt, frames float32, state interaction.State) {
	if c.registry == nil {
		return
	}
	k := common.Smoothing(PoseEase, dt)
	// seconds, which is elapsed ms * 0.001
	phase := c.elapsed
	for i, b := range c.registry.Bodies() {
		focused := state.HasFocus && state.FocusedID == b.ID
		scale, emissive := RestScale, body.RestEmissive
		if focused {
			scale, emissive = FocusedScale, FocusedEmissive
		}

		b.Pose.RotationY += BodySpin * frames
		b.Pose.Bob += math32.Sin(phase+float32(i)) * BobAmplitude * frames
		b.Pose.Scale = common.Approach(b.Pose.Scale, scale, k)
		b.Pose.Emissive = common.Approach(b.Pose.Emissive, emissive, k)
	}
}

func (c *controller) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Duration(float64(c.elapsed) * float64(time.Second))
}

func (c *controller) Background() common.RGB {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.background
}

func (c *controller) OrbitAngle() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbit
}
