package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/mood-space/engine/content"
	"github.com/Carmen-Shannon/mood-space/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Mood Space", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.True(t, cfg.Audio)
	assert.Zero(t, cfg.Seed)

	mode, err := cfg.RendererPresentMode()
	require.NoError(t, err)
	assert.Equal(t, renderer.PresentModeVSync, mode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MOODSPACE_WIDTH", "800")
	t.Setenv("MOODSPACE_PRESENT_MODE", "Uncapped")
	t.Setenv("MOODSPACE_AUDIO", "false")
	t.Setenv("MOODSPACE_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.False(t, cfg.Audio)
	assert.Equal(t, uint64(42), cfg.Seed)

	mode, err := cfg.RendererPresentMode()
	require.NoError(t, err)
	assert.Equal(t, renderer.PresentModeUncapped, mode)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("MOODSPACE_HEIGHT", "tall")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	cases := map[string]string{
		"MOODSPACE_WIDTH":        "0",
		"MOODSPACE_FRAME_LIMIT":  "-1",
		"MOODSPACE_AUDIO_VOLUME": "3",
		"MOODSPACE_PRESENT_MODE": "mailbox",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCatalog(t *testing.T) {
	cfg := Config{}
	c, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Len(t, c.Moods, content.MoodCount)

	cfg.ContentPath = filepath.Join(t.TempDir(), "missing.toml")
	_, err = cfg.Catalog()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "moods.toml")
	data := `
[[mood]]
title = "A"
text = "a"
[[mood]]
title = "B"
text = "b"
[[mood]]
title = "C"
text = "c"
[[mood]]
title = "D"
text = "d"
[final]
title = "ME"
text = "end"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	cfg.ContentPath = path
	c, err = cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "ME", c.Final.Title)
}
