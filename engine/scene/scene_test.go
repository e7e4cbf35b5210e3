package scene

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/interaction"
	"github.com/Carmen-Shannon/mood-space/engine/light"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1) / 60

func newScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	base := []SceneBuilderOption{
		WithRand(rand.New(rand.NewPCG(1, 1))),
		WithViewport(1280, 720),
		WithOverlay(overlay.NewOverlay(overlay.WithLogger(nil))),
		WithRenderer(renderer.NewRenderer(renderer.BackendTypeHeadless, nil)),
	}
	s, err := NewScene(append(base, options...)...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// pointerAt returns the pixel position of b's center on screen.
func pointerAt(t *testing.T, s Scene, b *body.Body) (float32, float32) {
	t.Helper()
	s.Camera().Update()
	ndc, ok := s.Camera().ViewProjectionMatrix().Project(b.WorldPosition())
	require.True(t, ok)
	vp := s.Viewport()
	return (ndc.X() + 1) / 2 * vp.Width, (1 - ndc.Y()) / 2 * vp.Height
}

func TestNewSceneLayout(t *testing.T) {
	s := newScene(t)
	bodies := s.Registry().Bodies()
	require.Len(t, bodies, content.MoodCount)
	for i, b := range bodies {
		assert.InDelta(t, -4+float32(i)*2.7, b.Position.X(), 1e-5)
	}
	assert.Equal(t, interaction.Idle, s.Machine().State().Phase())
}

func TestNewSceneBadCatalog(t *testing.T) {
	_, err := NewScene(WithCatalog(content.Catalog{}))
	assert.ErrorIs(t, err, content.ErrMoodCount)
}

func TestFrameSnapshot(t *testing.T) {
	s := newScene(t)
	s.Tick(frame)
	f := s.Frame()

	assert.Len(t, f.Bodies, content.MoodCount)
	require.Len(t, f.Stars, 2)
	assert.Equal(t, 400, f.Stars[0].Points)
	assert.Equal(t, 600, f.Stars[1].Points)
	assert.Len(t, f.Stars[0].Positions, 400)
	assert.Len(t, f.Stars[1].Positions, 600)
	for _, p := range f.Stars[1].Positions {
		assert.LessOrEqual(t, p.Z(), float32(0))
		assert.GreaterOrEqual(t, p.Z(), float32(-50))
	}
	assert.NotNil(t, f.Bodies[0].Glow)
	assert.Greater(t, f.Stars[0].Rotation, float32(0))
	assert.Equal(t, common.V3(0, 0, 0), f.CameraTarget)
	assert.Equal(t, s.Camera().ViewProjectionMatrix(), f.ViewProjection)
	assert.NotNil(t, f.Bodies[0].Label)
	assert.Len(t, f.Lights, 3)
}

func TestCustomLights(t *testing.T) {
	key := light.NewLight(light.LightTypePoint, light.WithPosition(0, 5, 0))
	off := light.NewLight(light.LightTypeAmbient, light.WithEnabled(false))
	s := newScene(t, WithLights(key, off))

	assert.Len(t, s.Lights(), 2)
	f := s.Frame()
	require.Len(t, f.Lights, 1)
	assert.Equal(t, [3]float32{0, 5, 0}, f.Lights[0].Position)
}

func TestPointerSelectFocusesAndRenders(t *testing.T) {
	s := newScene(t)
	happy := s.Registry().Bodies()[0]

	id, ok := s.OnPointerDown(pointerAt(t, s, happy))
	require.True(t, ok)
	assert.Equal(t, happy.ID, id)
	assert.True(t, s.Overlay().Active())

	for i := 0; i < 240; i++ {
		s.Tick(frame)
		require.NoError(t, s.Render())
	}
	f, ok := s.Renderer().LastFrame()
	require.True(t, ok)
	assert.Equal(t, uint64(239), f.Index)
	assert.Less(t, f.Background.Distance(happy.BackgroundColor), 0.01)
	assert.InDelta(t, 1.45, f.Bodies[0].Scale, 1e-2)
	assert.Less(t, f.CameraPosition.Z(), float32(8))
}

func TestPointerIgnoredWhileFocused(t *testing.T) {
	s := newScene(t)
	bodies := s.Registry().Bodies()
	x, y := pointerAt(t, s, bodies[2])
	_, ok := s.OnPointerDown(pointerAt(t, s, bodies[1]))
	require.True(t, ok)

	_, ok = s.OnPointerDown(x, y)
	assert.False(t, ok)
	assert.Equal(t, bodies[1].ID, s.Machine().State().FocusedID)

	s.OnKeyDown(common.KeyEsc)
	_, ok = s.OnPointerDown(x, y)
	assert.True(t, ok)
}

func TestResizeOnlyTouchesViewport(t *testing.T) {
	s := newScene(t)
	before := s.Machine().State()

	s.Resize(800, 800)
	assert.Equal(t, float32(1), s.Camera().Aspect())
	w, h := s.Renderer().Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, before, s.Machine().State())

	s.Resize(0, 600)
	assert.Equal(t, float32(800), s.Viewport().Width)
}

func TestUnlockHandlerFiresOnce(t *testing.T) {
	var unlocked []*body.Body
	s := newScene(t, WithUnlockHandler(func(b *body.Body) { unlocked = append(unlocked, b) }))

	for round := 0; round < 2; round++ {
		for _, b := range s.Registry().Bodies() {
			_, ok := s.OnPointerDown(pointerAt(t, s, b))
			require.True(t, ok, "body %s", b.Title)
			s.OnKeyDown(common.KeyEsc)
		}
	}
	require.Len(t, unlocked, 1)
	assert.Equal(t, "YOU", unlocked[0].Title)
	assert.Equal(t, content.MoodCount+1, s.Registry().Len())
	assert.Len(t, s.Frame().Bodies, content.MoodCount+1)
}

func TestClosedSceneIgnoresInput(t *testing.T) {
	s := newScene(t)
	s.Close()
	s.Close()

	_, ok := s.OnPointerDown(pointerAt(t, s, s.Registry().Bodies()[0]))
	assert.False(t, ok)
	assert.ErrorIs(t, s.Render(), renderer.ErrReleased)
}

func TestSceneMethodsSerialize(t *testing.T) {
	s := newScene(t)
	bodies := s.Registry().Bodies()
	x, y := pointerAt(t, s, bodies[0])

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Tick(frame)
				s.OnPointerDown(x, y)
				_ = s.Frame()
				s.OnKeyDown(common.KeyEsc)
				assert.NoError(t, s.Render())
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(200), s.Renderer().FrameCount())
}
