package animation

import (
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/camera"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/interaction"
	"github.com/Carmen-Shannon/mood-space/engine/starfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1) / 60

type rig struct {
	registry body.Registry
	camera   camera.CameraController
	near     *starfield.PointCloud
	far      *starfield.PointCloud
	ctrl     Controller
}

func newRig(t *testing.T) *rig {
	t.Helper()
	reg, err := body.NewRegistry(content.Default())
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(3, 4))
	r := &rig{
		registry: reg,
		camera:   camera.NewCameraController(),
		near:     starfield.NewLayer(starfield.LayerNear, rng),
		far:      starfield.NewLayer(starfield.LayerFar, rng),
	}
	r.ctrl = NewController(reg, r.camera, WithStarfields(r.near, r.far))
	return r
}

func idle() interaction.State {
	return interaction.State{
		CameraTarget:     interaction.DefaultCameraTarget,
		BackgroundTarget: common.DefaultBackground,
	}
}

func focusedOn(b *body.Body) interaction.State {
	return interaction.State{
		FocusedID:        b.ID,
		HasFocus:         true,
		CameraTarget:     common.V3(b.Position.X()*0.3, b.Position.Y()*0.3, 6),
		BackgroundTarget: b.BackgroundColor,
	}
}

func TestNonPositiveDtIsNoop(t *testing.T) {
	r := newRig(t)
	b := r.registry.Bodies()[0]
	pose := b.Pose

	r.ctrl.Tick(0, focusedOn(b))
	r.ctrl.Tick(-1, focusedOn(b))

	assert.Equal(t, pose, b.Pose)
	assert.Zero(t, r.ctrl.Elapsed())
	assert.Zero(t, r.ctrl.OrbitAngle())
	assert.Zero(t, r.near.Rotation())
	assert.Equal(t, camera.DefaultHome, r.camera.Position())
}

func TestSingleFrameIncrements(t *testing.T) {
	r := newRig(t)
	r.ctrl.Tick(frame, idle())

	assert.InDelta(t, OrbitStep, r.ctrl.OrbitAngle(), 1e-7)
	assert.InDelta(t, NearStarsIdle, r.near.Rotation(), 1e-7)
	assert.InDelta(t, FarStars, r.far.Rotation(), 1e-7)
	for _, b := range r.registry.Bodies() {
		assert.InDelta(t, BodySpin, b.Pose.RotationY, 1e-6)
	}

	r2 := newRig(t)
	r2.ctrl.Tick(frame, focusedOn(r2.registry.Bodies()[0]))
	assert.InDelta(t, NearStarsFocused, r2.near.Rotation(), 1e-7)
}

func TestPoseConvergesWithoutOvershoot(t *testing.T) {
	r := newRig(t)
	b := r.registry.Bodies()[2]
	state := focusedOn(b)

	prevScale := FocusedScale - b.Pose.Scale
	prevEmissive := FocusedEmissive - b.Pose.Emissive
	for i := 0; i < 120; i++ {
		r.ctrl.Tick(frame, state)
		gapScale := FocusedScale - b.Pose.Scale
		gapEmissive := FocusedEmissive - b.Pose.Emissive
		require.GreaterOrEqual(t, gapScale, float32(-1e-6))
		require.GreaterOrEqual(t, gapEmissive, float32(-1e-6))
		if prevScale > 1e-4 {
			require.Less(t, gapScale, prevScale)
		}
		if prevEmissive > 1e-4 {
			require.Less(t, gapEmissive, prevEmissive)
		}
		prevScale, prevEmissive = gapScale, gapEmissive
	}
	assert.InDelta(t, FocusedScale, b.Pose.Scale, 1e-3)
	assert.InDelta(t, FocusedEmissive, b.Pose.Emissive, 1e-3)

	// unfocused bodies stay at rest
	other := r.registry.Bodies()[0]
	assert.InDelta(t, RestScale, other.Pose.Scale, 1e-6)
	assert.InDelta(t, body.RestEmissive, other.Pose.Emissive, 1e-6)
}

func TestPoseReturnsToRest(t *testing.T) {
	r := newRig(t)
	b := r.registry.Bodies()[1]
	for i := 0; i < 60; i++ {
		r.ctrl.Tick(frame, focusedOn(b))
	}
	for i := 0; i < 240; i++ {
		r.ctrl.Tick(frame, idle())
		require.GreaterOrEqual(t, b.Pose.Scale, RestScale-1e-6)
	}
	assert.InDelta(t, RestScale, b.Pose.Scale, 1e-3)
}

func TestBackgroundConverges(t *testing.T) {
	r := newRig(t)
	target := r.registry.Bodies()[0].BackgroundColor
	state := focusedOn(r.registry.Bodies()[0])

	prev := r.ctrl.Background().Distance(target)
	for i := 0; i < 300; i++ {
		r.ctrl.Tick(frame, state)
		d := r.ctrl.Background().Distance(target)
		if prev > 1e-6 {
			require.Less(t, d, prev)
		}
		prev = d
	}
	assert.Less(t, prev, 1e-3)
}

func TestFrameRateIndependence(t *testing.T) {
	coarse := newRig(t)
	fine := newRig(t)
	state := focusedOn(coarse.registry.Bodies()[3])

	for i := 0; i < 30; i++ {
		coarse.ctrl.Tick(frame*2, state)
	}
	for i := 0; i < 60; i++ {
		fine.ctrl.Tick(frame, state)
	}

	c := coarse.registry.Bodies()[3].Pose
	f := fine.registry.Bodies()[3].Pose
	assert.InDelta(t, f.Scale, c.Scale, 1e-4)
	assert.InDelta(t, f.Emissive, c.Emissive, 1e-4)
	assert.InDelta(t, f.RotationY, c.RotationY, 1e-4)
	assert.InDelta(t, fine.ctrl.OrbitAngle(), coarse.ctrl.OrbitAngle(), 1e-5)
	assert.InDelta(t, fine.camera.FocusOffset().Z(), coarse.camera.FocusOffset().Z(), 1e-3)
}

func TestCameraFocusOffsetTracksTarget(t *testing.T) {
	r := newRig(t)
	b := r.registry.Bodies()[0]
	state := focusedOn(b)

	for i := 0; i < 600; i++ {
		r.ctrl.Tick(frame, state)
	}
	want := state.CameraTarget.Sub(camera.DefaultHome)
	got := r.camera.FocusOffset()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-3)
	}
	// drift stays on its orbit and the eye sits near the focus target
	assert.InDelta(t, 6, r.camera.Position().Z(), float64(OrbitRadiusZ+0.05))
	assert.Equal(t, float32(0), r.camera.Drift().Y())

	for i := 0; i < 600; i++ {
		r.ctrl.Tick(frame, idle())
	}
	assert.InDelta(t, 0, r.camera.FocusOffset().Len(), 1e-3)
}

func TestBobStaysSmall(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 600; i++ {
		r.ctrl.Tick(frame, idle())
	}
	for _, b := range r.registry.Bodies() {
		assert.Less(t, b.Pose.Bob, float32(0.5))
		assert.Greater(t, b.Pose.Bob, float32(-0.5))
	}
	assert.InDelta(t, 10, r.ctrl.Elapsed().Seconds(), 1e-2)
}

func TestFinalBodyEasesToRest(t *testing.T) {
	r := newRig(t)
	final := r.registry.UnlockFinal()
	require.Equal(t, body.FinalEmissive, final.Pose.Emissive)
	for i := 0; i < 300; i++ {
		r.ctrl.Tick(frame, idle())
	}
	assert.InDelta(t, body.RestEmissive, final.Pose.Emissive, 1e-3)
}
