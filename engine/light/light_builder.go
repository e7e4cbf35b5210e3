package light

import "github.com/Carmen-Shannon/mood-space/common"

// LightBuilderOption configures a Light during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition places a point light. Ambient lights ignore it.
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = common.V3(x, y, z)
	}
}

// WithColor tints the light.
func WithColor(c common.RGB) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = c
	}
}

// WithIntensity scales the light's contribution. Negative values clamp to 0.
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled sets whether the light starts enabled.
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
