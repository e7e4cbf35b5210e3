package body

import (
	"github.com/Carmen-Shannon/mood-space/common"
)

// ID identifies a body for the lifetime of the program.
type ID uint64

const (
	// MoodRadius is the bounding sphere radius of a mood body's mesh.
	MoodRadius float32 = 0.9
	// FinalRadius is the bounding sphere radius of the unlockable final body.
	FinalRadius float32 = 1.2

	// RestEmissive is the emissive intensity of an unfocused body.
	RestEmissive float32 = 0.2
	// FinalEmissive is the emissive intensity the final body appears with.
	FinalEmissive float32 = 0.35

	// GlowScale is the halo's size relative to its body.
	GlowScale float32 = 1.15
	// GlowOpacity is the halo's alpha.
	GlowOpacity float32 = 0.15
)

// Label is a text annotation displayed at a fixed offset from its body.
type Label struct {
	// Text is the label caption.
	Text string
	// Offset is the label position relative to the body's center.
	Offset common.Vec3
	// Size is the billboard width and height in world units.
	Size [2]float32
}

// Glow is a translucent halo drawn around a body in its display color.
type Glow struct {
	// Scale multiplies the body's rendered scale.
	Scale   float32
	Opacity float32
}

// Pose is the per-frame animated state of a body.
// Only the animation controller writes it; everything else reads.
type Pose struct {
	// Scale is the uniform scale multiplier applied on top of the body's BaseScale.
	Scale float32
	// Emissive is the current emissive intensity.
	Emissive float32
	// RotationY is the accumulated self-rotation around the Y axis in radians.
	RotationY float32
	// Bob is the accumulated vertical offset from the body's resting position.
	Bob float32
}

// Body is one interactive, selectable sphere in the scene.
type Body struct {
	ID              ID
	Title           string
	Text            string
	DisplayColor    common.RGB
	BackgroundColor common.RGB

	// Opened flips to true the first time the body is selected and never flips back.
	Opened bool
	// Final marks the unlockable body that is appended once every mood has been opened.
	Final bool

	// Position is the resting position; the rendered position adds Pose.Bob on Y.
	Position  common.Vec3
	BaseScale float32
	Radius    float32

	Label *Label
	// Glow is nil for the final body.
	Glow *Glow
	Pose Pose
}

// WorldPosition returns the body's animated position including the vertical bob.
//
// Returns:
//   - common.Vec3: the rendered world-space position
func (b *Body) WorldPosition() common.Vec3 {
	return b.Position.Add(common.V3(0, b.Pose.Bob, 0))
}

// WorldRadius returns the bounding sphere radius at the current animated scale.
//
// Returns:
//   - float32: the scaled bounding radius
func (b *Body) WorldRadius() float32 {
	return b.Radius * b.BaseScale * b.Pose.Scale
}

// ModelMatrix builds the body's current model matrix from its animated pose.
//
// Returns:
//   - common.Mat4: the column-major model matrix
func (b *Body) ModelMatrix() common.Mat4 {
	s := b.BaseScale * b.Pose.Scale
	return common.ModelMatrix(
		b.WorldPosition(),
		common.V3(0, b.Pose.RotationY, 0),
		common.V3(s, s, s),
	)
}
