// Package config reads runtime settings from MOODSPACE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
)

// ErrInvalid is wrapped by Load when a value parses but is out of range.
var ErrInvalid = errors.New("invalid config")

// Config controls the window, renderer, audio and content of a run.
type Config struct {
	Title  string `env:"MOODSPACE_TITLE"  envDefault:"Mood Space"`
	Width  int    `env:"MOODSPACE_WIDTH"  envDefault:"1280"`
	Height int    `env:"MOODSPACE_HEIGHT" envDefault:"720"`

	// FrameLimit caps frames per second; 0 leaves the loop uncapped.
	FrameLimit       float64 `env:"MOODSPACE_FRAME_LIMIT"       envDefault:"0"`
	PresentMode      string  `env:"MOODSPACE_PRESENT_MODE"      envDefault:"vsync"`
	SoftwareRenderer bool    `env:"MOODSPACE_SOFTWARE_RENDERER" envDefault:"false"`
	Profiling        bool    `env:"MOODSPACE_PROFILING"         envDefault:"false"`

	Audio       bool    `env:"MOODSPACE_AUDIO"        envDefault:"true"`
	AudioVolume float64 `env:"MOODSPACE_AUDIO_VOLUME" envDefault:"0.35"`

	// Seed fixes the starfield layout; 0 seeds from the clock.
	Seed uint64 `env:"MOODSPACE_SEED" envDefault:"0"`
	// ContentPath points at a moods TOML file; empty uses the embedded catalog.
	ContentPath string `env:"MOODSPACE_CONTENT"`
}

// Load parses the environment and validates the result.
//
// Returns:
//   - Config: the parsed configuration
//   - error: a parse error, or ErrInvalid for out-of-range values
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FrameLimit < 0:
		return fmt.Errorf("%w: frame limit %v", ErrInvalid, c.FrameLimit)
	case c.AudioVolume < 0 || c.AudioVolume > 1:
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.AudioVolume)
	}
	if _, err := c.RendererPresentMode(); err != nil {
		return err
	}
	return nil
}

// RendererPresentMode maps PresentMode onto the renderer's present modes.
//
// Returns:
//   - renderer.PresentMode: the parsed mode
//   - error: ErrInvalid for anything but "vsync" or "uncapped"
func (c Config) RendererPresentMode() (renderer.PresentMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.PresentMode)) {
	case "", "vsync":
		return renderer.PresentModeVSync, nil
	case "uncapped":
		return renderer.PresentModeUncapped, nil
	}
	return 0, fmt.Errorf("%w: present mode %q", ErrInvalid, c.PresentMode)
}

// Catalog loads the mood catalog named by ContentPath, or the embedded one.
//
// Returns:
//   - content.Catalog: the catalog
//   - error: error if the file cannot be read or decoded
func (c Config) Catalog() (content.Catalog, error) {
	if c.ContentPath == "" {
		return content.Default(), nil
	}
	return content.Load(c.ContentPath)
}
