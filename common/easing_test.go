package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestSmoothingMatchesReferenceFrame(t *testing.T) {
	assert.InDelta(t, 0.08, Smoothing(0.08, 1.0/ReferenceFrameRate), 1e-5)
	assert.Zero(t, Smoothing(0.08, 0))
	assert.Zero(t, Smoothing(0.08, -1))
}

func TestSmoothingIsFrameRateIndependent(t *testing.T) {
	// two half-length steps land where one full step does
	const dt = 1.0 / ReferenceFrameRate
	one := Approach(0, 1, Smoothing(0.03, dt))

	half := Smoothing(0.03, dt/2)
	two := Approach(Approach(0, 1, half), 1, half)

	assert.InDelta(t, one, two, 1e-5)
}

func TestApproachConvergesWithoutOvershoot(t *testing.T) {
	for _, factor := range []float32{0.02, 0.03, 0.08} {
		for _, dt := range []float32{1.0 / 144, 1.0 / 60, 1.0 / 30, 0.5} {
			current, target := float32(10), float32(-2)
			prev := math32.Abs(target - current)
			for i := 0; i < 40 && prev > 1e-3; i++ {
				current = Approach(current, target, Smoothing(factor, dt))
				gap := math32.Abs(target - current)
				assert.Less(t, gap, prev, "factor %v dt %v step %d", factor, dt, i)
				assert.GreaterOrEqual(t, current, target, "overshoot at factor %v dt %v", factor, dt)
				prev = gap
			}
		}
	}
}

func TestApproachVec3(t *testing.T) {
	got := ApproachVec3(V3(0, 0, 0), V3(2, 4, -8), 0.5)
	assert.Equal(t, V3(1, 2, -4), got)
}
