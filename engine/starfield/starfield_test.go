package starfield

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerateBounds(t *testing.T) {
	pc, err := Generate(500, 20, 0.8, seeded())
	require.NoError(t, err)
	require.Equal(t, 500, pc.Len())

	for _, p := range pc.Points() {
		assert.GreaterOrEqual(t, p.X(), -Extent)
		assert.LessOrEqual(t, p.X(), Extent)
		assert.GreaterOrEqual(t, p.Y(), -Extent)
		assert.LessOrEqual(t, p.Y(), Extent)
		assert.GreaterOrEqual(t, p.Z(), float32(-20))
		assert.LessOrEqual(t, p.Z(), float32(0))
	}
	assert.Equal(t, float32(0.8), pc.Opacity())
	assert.Equal(t, float32(20), pc.Depth())
}

func TestGenerateIsReproducibleWithSameSeed(t *testing.T) {
	a, err := Generate(50, 10, 1, seeded())
	require.NoError(t, err)
	b, err := Generate(50, 10, 1, seeded())
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate(0, 10, 1, seeded())
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Generate(10, 0, 1, seeded())
	assert.ErrorIs(t, err, ErrInvalidDepth)
}

func TestLayers(t *testing.T) {
	near := NewLayer(LayerNear, seeded())
	far := NewLayer(LayerFar, seeded())
	assert.Equal(t, 400, near.Len())
	assert.Equal(t, 600, far.Len())
	assert.Equal(t, float32(50), far.Depth())
}

func TestRotate(t *testing.T) {
	pc := NewLayer(LayerNear, seeded())
	pc.Rotate(0.25)
	pc.Rotate(0.25)
	assert.Equal(t, float32(0.5), pc.Rotation())

	pts := pc.Points()
	pts[0][0] = 999
	assert.NotEqual(t, float32(999), pc.Points()[0].X())
}
