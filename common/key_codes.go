package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace     = 32  // Spacebar (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyEnter     = 257 // Enter key (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)
)
