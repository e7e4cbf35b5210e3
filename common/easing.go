package common

import (
	"github.com/chewxy/math32"
)

// ReferenceFrameRate is the display rate the per-frame animation constants are tuned for.
const ReferenceFrameRate = 60

// Frames converts a delta time in seconds into the equivalent number of reference frames.
//
// Parameters:
//   - dt: elapsed time in seconds
//
// Returns:
//   - float32: dt expressed in frames at ReferenceFrameRate (0 for non-positive dt)
func Frames(dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	return dt * ReferenceFrameRate
}

// Smoothing converts a per-reference-frame exponential smoothing factor into the factor to apply
// over dt seconds, so that easing converges at the same wall-clock speed at any frame rate.
// The result always lies in [0, 1) for factor in [0, 1), which rules out overshoot.
//
// Parameters:
//   - factor: per-frame smoothing factor at ReferenceFrameRate
//   - dt: elapsed time in seconds
//
// Returns:
//   - float32: the smoothing factor for this step
func Smoothing(factor, dt float32) float32 {
	n := Frames(dt)
	if n == 0 || factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return 1
	}
	return 1 - math32.Pow(1-factor, n)
}

// Approach moves current toward target by the fraction t of the remaining distance.
//
// Parameters:
//   - current: the current value
//   - target: the value being approached
//   - t: the fraction of the gap to close, in [0, 1]
//
// Returns:
//   - float32: the eased value
func Approach(current, target, t float32) float32 {
	return current + (target-current)*t
}

// ApproachVec3 applies Approach to every component of current.
func ApproachVec3(current, target Vec3, t float32) Vec3 {
	return Vec3{
		Approach(current[0], target[0], t),
		Approach(current[1], target[1], t),
		Approach(current[2], target[2], t),
	}
}
