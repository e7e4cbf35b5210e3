// Package starfield generates the decorative background point clouds.
package starfield

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Carmen-Shannon/mood-space/common"
)

// Extent is the half-width of the square the points are scattered across on X and Y.
const Extent float32 = 30

// PointSize is the rendered size of every star.
const PointSize float32 = 0.06

var (
	// ErrInvalidCount is returned when a field is requested with no points.
	ErrInvalidCount = errors.New("star count must be positive")
	// ErrInvalidDepth is returned when a field is requested with no depth.
	ErrInvalidDepth = errors.New("star depth must be positive")
)

// Layer distinguishes the two parallax layers.
type Layer int

const (
	// LayerNear is the closer, denser-looking layer that slows while a body is focused.
	LayerNear Layer = iota
	// LayerFar is the distant layer with a constant drift.
	LayerFar
)

// PointCloud is an immutable set of star positions plus the Y rotation applied to it each frame.
type PointCloud struct {
	points   []common.Vec3
	depth    float32
	opacity  float32
	rotation float32
}

// Generate scatters count points with x and y uniform in [-Extent, Extent] and z uniform in [-depth, 0].
//
// Parameters:
//   - count: number of points (must be > 0)
//   - depth: how far the field extends behind the origin (must be > 0)
//   - opacity: point opacity in [0, 1]
//   - rng: the random source; pass a seeded generator for reproducible fields
//
// Returns:
//   - *PointCloud: the generated field
//   - error: ErrInvalidCount or ErrInvalidDepth on bad input
func Generate(count int, depth, opacity float32, rng *rand.Rand) (*PointCloud, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate starfield: %w: %d", ErrInvalidCount, count)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("generate starfield: %w: %v", ErrInvalidDepth, depth)
	}

	points := make([]common.Vec3, count)
	for i := range points {
		points[i] = common.V3(
			(rng.Float32()-0.5)*2*Extent,
			(rng.Float32()-0.5)*2*Extent,
			-rng.Float32()*depth,
		)
	}
	return &PointCloud{points: points, depth: depth, opacity: opacity}, nil
}

// NewLayer builds one of the two standard layers: near is 400 points 20 deep at 0.8 opacity,
// far is 600 points 50 deep at 0.5 opacity.
//
// Parameters:
//   - layer: which layer to build
//   - rng: the random source
//
// Returns:
//   - *PointCloud: the generated field
func NewLayer(layer Layer, rng *rand.Rand) *PointCloud {
	var (
		pc  *PointCloud
		err error
	)
	switch layer {
	case LayerNear:
		pc, err = Generate(400, 20, 0.8, rng)
	default:
		pc, err = Generate(600, 50, 0.5, rng)
	}
	if err != nil {
		panic(err)
	}
	return pc
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.points)
}

// Points returns a copy of the point positions.
func (pc *PointCloud) Points() []common.Vec3 {
	out := make([]common.Vec3, len(pc.points))
	copy(out, pc.points)
	return out
}

// Depth returns the configured field depth.
func (pc *PointCloud) Depth() float32 {
	return pc.depth
}

// Opacity returns the point opacity.
func (pc *PointCloud) Opacity() float32 {
	return pc.opacity
}

// Rotation returns the accumulated Y rotation in radians.
func (pc *PointCloud) Rotation() float32 {
	return pc.rotation
}

// Rotate advances the Y rotation by delta radians.
func (pc *PointCloud) Rotate(delta float32) {
	pc.rotation += delta
}
