// Package common contains the plain value types shared across the engine: vectors, matrices and colors.
// They are not interface-wrapped; every package passes them by value.
package common

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3-component float32 vector used for positions, directions, scales and Euler rotations.
type Vec3 [3]float32

// V3 builds a Vec3 from its components.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// X returns the x component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v[2] }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Len returns the euclidean length of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Dist returns the euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float32 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length.
// A zero-length vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}
