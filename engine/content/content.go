// Package content loads the static mood catalog that populates the body registry.
// The catalog ships embedded in the binary and may be replaced by a TOML file on disk.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/mood-space/common"
	"github.com/pelletier/go-toml/v2"
)

//go:embed moods.toml
var defaultCatalog []byte

// MoodCount is the number of moods a catalog must declare before the final body unlocks.
const MoodCount = 4

var (
	// ErrMoodCount is returned when a catalog does not declare exactly MoodCount moods.
	ErrMoodCount = errors.New("catalog must declare exactly 4 moods")
	// ErrMissingFinal is returned when a catalog has no [final] entry.
	ErrMissingFinal = errors.New("catalog has no final entry")
)

// Mood is one decoded catalog entry.
type Mood struct {
	Title      string
	Text       string
	Color      common.RGB
	Background common.RGB
}

// Catalog holds the ordered moods and the hidden final entry.
type Catalog struct {
	Moods []Mood
	Final Mood
}

type rawMood struct {
	Title      string `toml:"title"`
	Color      string `toml:"color"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

type rawCatalog struct {
	Mood  []rawMood `toml:"mood"`
	Final *rawMood  `toml:"final"`
}

// Default returns the embedded catalog. It panics if the embedded file is malformed,
// which can only happen at build time.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded mood catalog: %v", err))
	}
	return c
}

// Load reads and parses a catalog from path.
//
// Parameters:
//   - path: filesystem path of a TOML catalog
//
// Returns:
//   - Catalog: the parsed catalog
//   - error: error if the file cannot be read or parsed
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML catalog.
//
// Parameters:
//   - data: raw TOML bytes
//
// Returns:
//   - Catalog: the parsed catalog
//   - error: error if decoding fails, colors are malformed, or the entry counts are wrong
func Parse(data []byte) (Catalog, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw.Mood) != MoodCount {
		return Catalog{}, fmt.Errorf("%w: got %d", ErrMoodCount, len(raw.Mood))
	}
	if raw.Final == nil {
		return Catalog{}, ErrMissingFinal
	}

	var c Catalog
	for i, rm := range raw.Mood {
		m, err := rm.decode()
		if err != nil {
			return Catalog{}, fmt.Errorf("mood %d: %w", i, err)
		}
		c.Moods = append(c.Moods, m)
	}
	final, err := raw.Final.decode()
	if err != nil {
		return Catalog{}, fmt.Errorf("final: %w", err)
	}
	c.Final = final
	return c, nil
}

func (r rawMood) decode() (Mood, error) {
	if r.Title == "" {
		return Mood{}, errors.New("missing title")
	}
	color := common.White
	if r.Color != "" {
		c, err := common.Hex(r.Color)
		if err != nil {
			return Mood{}, err
		}
		color = c
	}
	background := common.DefaultBackground
	if r.Background != "" {
		c, err := common.Hex(r.Background)
		if err != nil {
			return Mood{}, err
		}
		background = c
	}
	return Mood{
		Title:      r.Title,
		Text:       r.Text,
		Color:      color,
		Background: background,
	}, nil
}
