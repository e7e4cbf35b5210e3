// Package light describes the scene's light sources and packs them for GPU upload.
package light

import (
	"sync"

	"github.com/Carmen-Shannon/mood-space/common"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every fragment uniformly. Position is ignored.
	LightTypeAmbient LightType = iota

	// LightTypePoint emits in all directions from a position.
	LightTypePoint
)

// String returns a readable name for t.
func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypePoint:
		return "point"
	}
	return "unknown"
}

type lightImpl struct {
	mu        *sync.Mutex
	lightType LightType
	position  common.Vec3
	color     common.RGB
	intensity float32
	enabled   bool
}

// Light is a single light source.
type Light interface {
	// Type returns the kind of light source.
	Type() LightType

	// Position returns the world-space position. Meaningless for ambient lights.
	Position() common.Vec3

	// Color returns the light color.
	Color() common.RGB

	// Intensity returns the scalar intensity multiplier.
	Intensity() float32

	// Enabled reports whether the light contributes to rendering.
	Enabled() bool

	// SetPosition moves the light.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p common.Vec3)

	// SetIntensity sets the intensity. Negative values are clamped to 0.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetIntensity(intensity float32)

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: whether the light contributes
	SetEnabled(enabled bool)

	// GPU returns the packed representation of the light.
	//
	// Returns:
	//   - GPULight: the GPU-aligned light
	GPU() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a Light of the given type. Lights default to white, intensity 1 and enabled.
//
// Parameters:
//   - lightType: the kind of light
//   - options: builder options
//
// Returns:
//   - Light: the new light
func NewLight(lightType LightType, options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		lightType: lightType,
		color:     common.White,
		intensity: 1,
		enabled:   true,
	}
	for _, opt := range options {
		opt(l)
	}
	if l.intensity < 0 {
		l.intensity = 0
	}
	return l
}

// DefaultRig returns the scene's standard lighting: a soft white ambient, a bright key light
// above and in front of the bodies, and a cool rim light behind them.
//
// Returns:
//   - []Light: ambient, key and rim lights in that order
func DefaultRig() []Light {
	return []Light{
		NewLight(LightTypeAmbient, WithIntensity(0.45)),
		NewLight(LightTypePoint,
			WithPosition(6, 6, 8),
			WithIntensity(1.4),
		),
		NewLight(LightTypePoint,
			WithPosition(-6, -6, -6),
			WithColor(common.MustHex("#88aaff")),
			WithIntensity(0.6),
		),
	}
}

// Pack returns the GPU form of every enabled light, preserving order.
//
// Parameters:
//   - lights: the lights to pack
//
// Returns:
//   - []GPULight: packed enabled lights, at most MaxGPULights
func Pack(lights []Light) []GPULight {
	out := make([]GPULight, 0, len(lights))
	for _, l := range lights {
		if len(out) == MaxGPULights {
			break
		}
		if l.Enabled() {
			out = append(out, l.GPU())
		}
	}
	return out
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() common.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Color() common.RGB {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetPosition(p common.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = p
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if intensity < 0 {
		intensity = 0
	}
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) GPU() GPULight {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, g, b, _ := l.color.Channels()
	return GPULight{
		Position:  l.position,
		LightType: uint32(l.lightType),
		Color:     [3]float32{float32(r), float32(g), float32(b)},
		Intensity: l.intensity,
	}
}
