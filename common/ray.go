package common

import (
	"github.com/chewxy/math32"
)

// Ray is a half-line starting at Origin and extending along the unit vector Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectSphere returns the distance along the ray to the first surface hit of the sphere.
// When the origin lies inside the sphere the exit point is returned. Hits behind the origin
// are ignored.
//
// Parameters:
//   - center: sphere center
//   - radius: sphere radius (must be > 0)
//
// Returns:
//   - float32: distance to the hit along Direction
//   - bool: false if the ray misses
func (r Ray) IntersectSphere(center Vec3, radius float32) (float32, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}
