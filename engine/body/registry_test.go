package body

import (
	"testing"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) Registry {
	t.Helper()
	r, err := NewRegistry(content.Default())
	require.NoError(t, err)
	return r
}

func TestInitialLayout(t *testing.T) {
	r := newTestRegistry(t)
	bodies := r.Bodies()
	require.Len(t, bodies, 4)

	want := []common.Vec3{
		{-4, 1.8, 0},
		{-1.3, -1.8, 0},
		{1.4, 1.8, 0},
		{4.1, -1.8, 0},
	}
	for i, b := range bodies {
		assert.InDelta(t, want[i].X(), b.Position.X(), 1e-5, "body %d x", i)
		assert.Equal(t, want[i].Y(), b.Position.Y(), "body %d y", i)
		assert.Zero(t, b.Position.Z())
		assert.False(t, b.Opened)
		assert.False(t, b.Final)
		assert.Equal(t, MoodRadius, b.Radius)
		require.NotNil(t, b.Label)
		assert.Equal(t, b.Title, b.Label.Text)
		assert.Equal(t, common.V3(0, 1.5, 0), b.Label.Offset)
		require.NotNil(t, b.Glow)
		assert.Equal(t, Glow{Scale: GlowScale, Opacity: GlowOpacity}, *b.Glow)
	}
	assert.Equal(t, "HAPPY", bodies[0].Title)
}

func TestIDsAreStableAndUnique(t *testing.T) {
	r := newTestRegistry(t)
	seen := map[ID]bool{}
	for _, b := range r.Bodies() {
		assert.False(t, seen[b.ID])
		seen[b.ID] = true
		assert.Same(t, b, r.Get(b.ID))
	}
	assert.Nil(t, r.Get(999))
}

func TestMarkOpenedIsIdempotent(t *testing.T) {
	r := newTestRegistry(t)
	id := r.Bodies()[0].ID

	first, err := r.MarkOpened(id)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := r.MarkOpened(id)
	require.NoError(t, err)
	assert.False(t, again)
	assert.True(t, r.Get(id).Opened)

	_, err = r.MarkOpened(999)
	assert.ErrorIs(t, err, ErrUnknownBody)
}

func TestUnlockFinalOnce(t *testing.T) {
	r := newTestRegistry(t)
	assert.False(t, r.Unlocked())

	f := r.UnlockFinal()
	require.NotNil(t, f)
	assert.True(t, f.Final)
	assert.Equal(t, "YOU", f.Title)
	assert.Equal(t, FinalPosition, f.Position)
	assert.Equal(t, FinalRadius, f.Radius)
	assert.Nil(t, f.Glow)
	assert.Equal(t, 5, r.Len())

	assert.Same(t, f, r.UnlockFinal())
	assert.Equal(t, 5, r.Len())
	assert.Same(t, f, r.Bodies()[4])
	assert.True(t, r.Unlocked())
}

func TestBodiesReturnsCopy(t *testing.T) {
	r := newTestRegistry(t)
	bodies := r.Bodies()
	bodies[0] = nil
	assert.NotNil(t, r.Bodies()[0])
}

func TestNewRegistryRejectsShortCatalog(t *testing.T) {
	c := content.Default()
	c.Moods = c.Moods[:2]
	_, err := NewRegistry(c)
	assert.ErrorIs(t, err, content.ErrMoodCount)
}

func TestWorldTransform(t *testing.T) {
	r := newTestRegistry(t)
	b := r.Bodies()[0]
	b.Pose.Bob = 0.25
	b.Pose.Scale = 1.45

	pos := b.WorldPosition()
	assert.InDelta(t, -4, pos.X(), 1e-6)
	assert.InDelta(t, 2.05, pos.Y(), 1e-6)
	assert.Zero(t, pos.Z())
	assert.InDelta(t, 0.9*1.45, b.WorldRadius(), 1e-6)

	m := b.ModelMatrix()
	assert.InDelta(t, -4, m[12], 1e-6)
	assert.InDelta(t, 2.05, m[13], 1e-6)
}
