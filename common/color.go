package common

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a linear-interpolatable color with channels in [0, 1].
type RGB struct {
	colorful.Color
}

// DefaultBackground is the deep-space background shown when nothing is focused.
var DefaultBackground = MustHex("#04040a")

// White is used as the accent for bodies that carry no display color.
var White = RGB{colorful.Color{R: 1, G: 1, B: 1}}

// Hex parses a "#rrggbb" or "#rgb" color string.
//
// Parameters:
//   - s: the hex color string
//
// Returns:
//   - RGB: the parsed color
//   - error: error if the string is not a valid hex color
func Hex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{c}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for package-level constants.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp returns the linear RGB interpolation from c toward o by t.
func (c RGB) Lerp(o RGB, t float32) RGB {
	return RGB{c.BlendRgb(o.Color, float64(t))}
}

// Distance returns the euclidean RGB distance between c and o.
func (c RGB) Distance(o RGB) float64 {
	return c.DistanceRgb(o.Color)
}

// Channels returns the channels as float64 with opaque alpha, the layout the GPU clear color expects.
func (c RGB) Channels() (r, g, b, a float64) {
	return c.R, c.G, c.B, 1
}

// String renders the color as a hex string.
func (c RGB) String() string {
	return c.Hex()
}
