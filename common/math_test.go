package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestMat4InverseRoundTrip(t *testing.T) {
	m := ModelMatrix(V3(1, -2, 3), V3(0.3, 0.7, -0.2), V3(2, 2, 2))
	inv, ok := m.Inverse()
	require.True(t, ok)

	id := m.Mul(inv)
	for i, v := range Identity4() {
		assert.InDelta(t, v, id[i], tol, "element %d", i)
	}
}

func TestMat4InverseSingular(t *testing.T) {
	_, ok := Mat4{}.Inverse()
	assert.False(t, ok)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, 12)
	view := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	p, ok := view.Project(eye)
	require.True(t, ok)
	assert.InDelta(t, 0, p.Len(), tol)

	// the look-at target sits straight ahead on -Z in view space
	c, ok := view.Project(V3(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 0, c.X(), tol)
	assert.InDelta(t, 0, c.Y(), tol)
	assert.InDelta(t, -12, c.Z(), tol)
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(math32.Pi/3, 1.5, 0.1, 100)

	near, ok := proj.Project(V3(0, 0, -0.1))
	require.True(t, ok)
	assert.InDelta(t, 0, near.Z(), tol)

	far, ok := proj.Project(V3(0, 0, -100))
	require.True(t, ok)
	assert.InDelta(t, 1, far.Z(), tol)
}

func TestModelMatrixTranslatesAndScales(t *testing.T) {
	m := ModelMatrix(V3(5, 0, -1), V3(0, 0, 0), V3(2, 3, 4))
	p, ok := m.Project(V3(1, 1, 1))
	require.True(t, ok)
	assert.InDelta(t, 7, p.X(), tol)
	assert.InDelta(t, 3, p.Y(), tol)
	assert.InDelta(t, 3, p.Z(), tol)
}

func TestVec3Normalize(t *testing.T) {
	assert.InDelta(t, 1, V3(3, 4, 12).Normalize().Len(), tol)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
