// Package loader reads the initial poem collection from the embedded default
// or from a user-supplied TOML or YAML file.
package loader

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"poemdeck/internal/domain"
	"poemdeck/internal/logic"
)

// DefaultSource names the embedded collection in logs and events
const DefaultSource = "embedded"

var ErrUnsupportedFormat = errors.New("unsupported collection format")

//go:embed poems.toml
var defaultCollection []byte

// document is the on-disk shape shared by the TOML and YAML formats
type document struct {
	Poems []domain.Poem `toml:"poems" yaml:"poems"`
}

// Load reads poems from path, or the embedded default when path is empty
func Load(path string) ([]domain.Poem, error) {
	if path == "" {
		return Decode(defaultCollection, ".toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read poems file: %w", err)
	}

	poems, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Info("loaded poems", slog.String("path", path), slog.Int("count", len(poems)))
	return poems, nil
}

// Decode parses a collection document. ext selects the format (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) ([]domain.Poem, error) {
	var doc document
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc.Poems, nil
}

// LoadCollection loads poems and builds a validated in-memory collection
func LoadCollection(path string) (*logic.MemoryCollection, error) {
	poems, err := Load(path)
	if err != nil {
		return nil, err
	}
	c, err := logic.NewMemoryCollection(poems)
	if err != nil {
		return nil, fmt.Errorf("failed to build collection: %w", err)
	}
	return c, nil
}

// SourceName returns a display name for the collection source
func SourceName(path string) string {
	if path == "" {
		return DefaultSource
	}
	return path
}
