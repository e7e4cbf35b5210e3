package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectSphereHitFront(t *testing.T) {
	r := Ray{Origin: V3(0, 0, 12), Direction: V3(0, 0, -1)}
	d, ok := r.IntersectSphere(V3(0, 0, 0), 1)
	assert.True(t, ok)
	assert.InDelta(t, 11, d, tol)
	assert.InDelta(t, 1, r.At(d).Z(), tol)
}

func TestIntersectSphereMiss(t *testing.T) {
	r := Ray{Origin: V3(0, 0, 12), Direction: V3(0, 0, -1)}
	_, ok := r.IntersectSphere(V3(3, 0, 0), 1)
	assert.False(t, ok)
}

func TestIntersectSphereBehindOrigin(t *testing.T) {
	r := Ray{Origin: V3(0, 0, 12), Direction: V3(0, 0, 1)}
	_, ok := r.IntersectSphere(V3(0, 0, 0), 1)
	assert.False(t, ok)
}

func TestIntersectSphereFromInside(t *testing.T) {
	r := Ray{Origin: V3(0, 0, 0), Direction: V3(1, 0, 0)}
	d, ok := r.IntersectSphere(V3(0, 0, 0), 2)
	assert.True(t, ok)
	assert.InDelta(t, 2, d, tol)
}

func TestIntersectSphereZeroRadius(t *testing.T) {
	r := Ray{Origin: V3(0, 0, 5), Direction: V3(0, 0, -1)}
	_, ok := r.IntersectSphere(V3(0, 0, 0), 0)
	assert.False(t, ok)
}
