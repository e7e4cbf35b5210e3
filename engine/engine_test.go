package engine

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/overlay"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
	"github.com/Carmen-Shannon/mood-space/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs a scripted event per poll and closes after the script runs out.
type fakeWindow struct {
	width, height int
	script        []func(w *fakeWindow)
	polls         int
	closed        bool

	onResize      func(width, height int)
	onKeyDown     func(keyCode int)
	onPointerDown func(x, y float32)
}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode int)) { w.onKeyDown = cb }
func (w *fakeWindow) SetPointerDownCallback(cb func(x, y float32)) { w.onPointerDown = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool { return !w.closed }
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }
func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

func (w *fakeWindow) PollEvents() bool {
	if w.polls >= len(w.script) {
		w.closed = true
		return false
	}
	if ev := w.script[w.polls]; ev != nil {
		ev(w)
	}
	w.polls++
	return true
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Second / 60)
	return c.t
}

func newScene(t *testing.T) scene.Scene {
	t.Helper()
	s, err := scene.NewScene(
		scene.WithRand(rand.New(rand.NewPCG(5, 6))),
		scene.WithOverlay(overlay.NewOverlay(overlay.WithLogger(nil))),
		scene.WithRenderer(renderer.NewRenderer(renderer.BackendTypeHeadless, nil, renderer.WithHistory(64))),
	)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func newEngine(w *fakeWindow, s scene.Scene, options ...EngineBuilderOption) *engine {
	e := NewEngine(append([]EngineBuilderOption{WithWindow(w), WithScene(0, s)}, options...)...).(*engine)
	clock := &fakeClock{t: time.Unix(0, 0)}
	e.now = clock.now
	e.sleep = func(time.Duration) {}
	return e
}

func TestRunWithoutWindow(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(context.Background()), ErrNoWindow)
}

func TestRunTicksAndRendersUntilWindowCloses(t *testing.T) {
	s := newScene(t)
	w := &fakeWindow{script: make([]func(*fakeWindow), 10)}
	e := newEngine(w, s)

	var ticks, renders int
	e.SetTickCallback(func(float32) { ticks++ })
	e.SetRenderCallback(func(float32) { renders++ })

	require.NoError(t, e.Run(context.Background()))
	assert.False(t, e.Running())
	assert.Equal(t, 10, ticks)
	assert.Equal(t, 10, renders)
	assert.Equal(t, uint64(10), s.Renderer().FrameCount())
}

func TestInputIsRoutedBeforeTick(t *testing.T) {
	s := newScene(t)
	calm := s.Registry().Bodies()[1]

	s.Camera().Update()
	ndc, ok := s.Camera().ViewProjectionMatrix().Project(calm.WorldPosition())
	require.True(t, ok)
	vp := s.Viewport()
	px, py := (ndc.X()+1)/2*vp.Width, (1-ndc.Y())/2*vp.Height

	w := &fakeWindow{script: []func(*fakeWindow){
		func(w *fakeWindow) { w.onPointerDown(px, py) },
		nil,
		func(w *fakeWindow) { w.onKeyDown(common.KeyEsc) },
		func(w *fakeWindow) { w.onResize(640, 640) },
	}}
	e := newEngine(w, s)

	var focusedAtFirstTick bool
	first := true
	e.SetTickCallback(func(float32) {
		if first {
			focusedAtFirstTick = s.Machine().State().HasFocus
			first = false
		}
	})

	require.NoError(t, e.Run(context.Background()))
	assert.True(t, focusedAtFirstTick)
	assert.True(t, calm.Opened)
	assert.False(t, s.Machine().State().HasFocus)
	assert.Equal(t, float32(1), s.Camera().Aspect())

	frames := s.Renderer().Frames()
	require.Len(t, frames, 4)
	assert.Greater(t, frames[1].Background.Distance(common.DefaultBackground), 0.0)
}

func TestQuitStopsLoop(t *testing.T) {
	s := newScene(t)
	w := &fakeWindow{script: make([]func(*fakeWindow), 100)}
	e := newEngine(w, s)
	e.SetTickCallback(func(float32) {
		if w.polls == 3 {
			e.Quit()
			e.Quit()
		}
	})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 3, w.polls)
}

func TestContextCancelStopsLoop(t *testing.T) {
	s := newScene(t)
	w := &fakeWindow{script: make([]func(*fakeWindow), 100)}
	e := newEngine(w, s)

	ctx, cancel := context.WithCancel(context.Background())
	e.SetRenderCallback(func(float32) {
		if w.polls == 5 {
			cancel()
		}
	})

	assert.ErrorIs(t, e.Run(ctx), context.Canceled)
	assert.Equal(t, 5, w.polls)
}

func TestInactiveScenesAreSkipped(t *testing.T) {
	s := newScene(t)
	s.SetActive(false)
	w := &fakeWindow{script: make([]func(*fakeWindow), 3)}
	e := newEngine(w, s)

	require.NoError(t, e.Run(context.Background()))
	assert.Zero(t, s.Renderer().FrameCount())
}

func TestFrameDeltaIsClamped(t *testing.T) {
	s := newScene(t)
	w := &fakeWindow{script: make([]func(*fakeWindow), 2)}
	e := newEngine(w, s)
	start := time.Unix(0, 0)
	calls := 0
	e.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls) * 5 * time.Second)
	}

	var dts []float32
	e.SetTickCallback(func(dt float32) { dts = append(dts, dt) })
	require.NoError(t, e.Run(context.Background()))
	require.Len(t, dts, 2)
	for _, dt := range dts {
		assert.LessOrEqual(t, dt, MaxFrameDelta)
	}
}

func TestFrameLimitSleeps(t *testing.T) {
	s := newScene(t)
	w := &fakeWindow{script: make([]func(*fakeWindow), 3)}
	e := newEngine(w, s, WithRenderFrameLimit(30))

	var slept []time.Duration
	e.now = func() time.Time { return time.Unix(0, 0) }
	e.sleep = func(d time.Duration) { slept = append(slept, d) }

	require.NoError(t, e.Run(context.Background()))
	require.Len(t, slept, 3)
	assert.Equal(t, frameDuration(30), slept[0])
}

func TestSceneRegistry(t *testing.T) {
	a, b := newScene(t), newScene(t)
	e := NewEngine(WithScene(2, a))
	e.AddScene(1, b)
	assert.Same(t, b, e.Scene(1))
	assert.Len(t, e.Scenes(), 2)
	e.RemoveScene(1)
	assert.Nil(t, e.Scene(1))
}
