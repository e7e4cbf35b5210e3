package overlay

// OverlayBuilderOption is a functional option for configuring an Overlay.
type OverlayBuilderOption func(*overlayImpl)

// WithLogger replaces the function used to report open and close events. nil disables reporting.
//
// Parameters:
//   - logf: a Printf-style function
//
// Returns:
//   - OverlayBuilderOption: option function to apply
func WithLogger(logf func(format string, args ...any)) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.logf = logf
	}
}
