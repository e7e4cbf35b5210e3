package renderer

import (
	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/Carmen-Shannon/mood-space/engine/body"
	"github.com/Carmen-Shannon/mood-space/engine/light"
)

// Frame is everything the render surface needs to draw one image. It is a value snapshot:
// nothing in it aliases scene state.
type Frame struct {
	// Index counts frames from 0.
	Index uint64

	CameraPosition common.Vec3
	CameraTarget   common.Vec3
	ViewProjection common.Mat4

	Background common.RGB

	Bodies []BodyInstance
	Stars  []StarLayer
	Lights []light.GPULight
}

// BodyInstance is the per-frame transform and material of one body.
type BodyInstance struct {
	ID       body.ID
	Position common.Vec3
	Rotation float32
	Scale    float32
	Model    common.Mat4
	Color    common.RGB
	Emissive float32
	Final    bool

	// Label is nil for bodies without a caption.
	Label *LabelInstance
	// Glow is nil for bodies without a halo.
	Glow *GlowInstance
}

// GlowInstance is a translucent sphere around a body, tinted with the body's color.
type GlowInstance struct {
	Scale   float32
	Model   common.Mat4
	Color   common.RGB
	Opacity float32
}

// LabelInstance is a caption billboard positioned in world space.
type LabelInstance struct {
	Text     string
	Position common.Vec3
	Size     [2]float32
}

// StarLayer describes one rotating point cloud. Positions are unrotated; Rotation is applied
// around Y at draw time.
type StarLayer struct {
	Positions []common.Vec3
	Points    int
	Rotation  float32
	Opacity   float32
	PointSize float32
}

// NewBodyInstance snapshots b's current pose.
//
// Parameters:
//   - b: the body to snapshot
//
// Returns:
//   - BodyInstance: the body's render state
func NewBodyInstance(b *body.Body) BodyInstance {
	pos := b.WorldPosition()
	inst := BodyInstance{
		ID:       b.ID,
		Position: pos,
		Rotation: b.Pose.RotationY,
		Scale:    b.BaseScale * b.Pose.Scale,
		Model:    b.ModelMatrix(),
		Color:    b.DisplayColor,
		Emissive: b.Pose.Emissive,
		Final:    b.Final,
	}
	if b.Glow != nil {
		glowScale := inst.Scale * b.Glow.Scale
		inst.Glow = &GlowInstance{
			Scale:   glowScale,
			Model:   common.ModelMatrix(pos, common.V3(0, b.Pose.RotationY, 0), common.V3(glowScale, glowScale, glowScale)),
			Color:   b.DisplayColor,
			Opacity: b.Glow.Opacity,
		}
	}
	if b.Label != nil {
		inst.Label = &LabelInstance{
			Text:     b.Label.Text,
			Position: pos.Add(b.Label.Offset),
			Size:     b.Label.Size,
		}
	}
	return inst
}
