package camera

import (
	"github.com/Carmen-Shannon/mood-space/common"
)

// CameraController owns the camera's positional state. The eye position is the sum of two
// independently driven contributions: an idle drift around the home position and a focus
// offset that frames the selected body. Camera reads from the controller and computes
// view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space eye position: Drift() + FocusOffset().
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - common.Vec3: world-space target position
	Target() common.Vec3

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target common.Vec3)

	// Home returns the resting eye position the drift orbits around.
	//
	// Returns:
	//   - common.Vec3: the home position
	Home() common.Vec3

	// Drift returns the idle drift contribution.
	//
	// Returns:
	//   - common.Vec3: the drift position
	Drift() common.Vec3

	// SetDrift replaces the idle drift contribution.
	//
	// Parameters:
	//   - drift: the new drift position
	SetDrift(drift common.Vec3)

	// FocusOffset returns the focus framing contribution.
	//
	// Returns:
	//   - common.Vec3: the offset added to the drift
	FocusOffset() common.Vec3

	// SetFocusOffset replaces the focus framing contribution.
	//
	// Parameters:
	//   - offset: the new offset
	SetFocusOffset(offset common.Vec3)
}
