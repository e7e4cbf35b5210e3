package common

import (
	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 float32 matrix stored in column-major order (OpenGL/WebGPU convention).
// Element (row r, column c) lives at index c*4 + r.
type Mat4 [16]float32

// Identity4 returns the 4x4 identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func Identity4() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Mul returns the matrix product m * b.
//
// Parameters:
//   - b: right-hand matrix
//
// Returns:
//   - Mat4: the product m * b
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ { // column of b
		for r := 0; r < 4; r++ { // row of m
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 multiplies m by the homogeneous column vector (x, y, z, w).
//
// Parameters:
//   - x, y, z, w: homogeneous vector components
//
// Returns:
//   - [4]float32: the transformed vector
func (m Mat4) MulVec4(x, y, z, w float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

// Project transforms the point p by m and performs the perspective divide.
// Returns false when the resulting w component is zero.
//
// Parameters:
//   - p: the point to transform
//
// Returns:
//   - Vec3: the transformed point
//   - bool: false if the point could not be divided by w
func (m Mat4) Project(p Vec3) (Vec3, bool) {
	h := m.MulVec4(p[0], p[1], p[2], 1)
	if h[3] == 0 {
		return Vec3{}, false
	}
	inv := 1 / h[3]
	return Vec3{h[0] * inv, h[1] * inv, h[2] * inv}, true
}

// Perspective creates a perspective projection matrix mapping view-space depth to the
// WebGPU clip range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	var out Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = (near * far) / (near - far)
	return out
}

// LookAt creates a view matrix placing the eye at eye and facing center.
//
// Parameters:
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: up vector defining camera roll (typically 0,1,0)
//
// Returns:
//   - Mat4: the world-to-view matrix
func LookAt(eye, center, up Vec3) Mat4 {
	z := eye.Sub(center)
	if z.Len() == 0 {
		z = Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		x = Vec3{1, 0, 0}
	}
	x = x.Normalize()
	y := z.Cross(x)

	return Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// ModelMatrix constructs a model matrix from position, Euler rotation and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll).
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - Mat4: the model matrix
func ModelMatrix(pos, rot, scale Vec3) Mat4 {
	sx, cx := math32.Sincos(rot[0])
	sy, cy := math32.Sincos(rot[1])
	sz, cz := math32.Sincos(rot[2])

	// R = Ry * Rx * Rz
	return Mat4{
		(cy*cz + sy*sx*sz) * scale[0], (cx * sz) * scale[0], (-sy*cz + cy*sx*sz) * scale[0], 0,
		(cy*-sz + sy*sx*cz) * scale[1], (cx * cz) * scale[1], (sy*sz + cy*sx*cz) * scale[1], 0,
		(sy * cx) * scale[2], (-sx) * scale[2], (cy * cx) * scale[2], 0,
		pos[0], pos[1], pos[2], 1,
	}
}

// Inverse computes the inverse of m using cofactor expansion.
// Returns false and the zero matrix if m is singular.
//
// Returns:
//   - Mat4: the inverse matrix
//   - bool: false if m is singular
func (m Mat4) Inverse() (Mat4, bool) {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Mat4{}, false
	}
	inv := 1 / det

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * inv,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * inv,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * inv,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * inv,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * inv,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * inv,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * inv,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * inv,
	}, true
}
