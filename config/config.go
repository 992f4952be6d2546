// Package config loads toon settings files.
//
// Settings may be written in TOML or YAML; the format is chosen by file
// extension. Insertion points are written by name:
//
//	[outline]
//	event = "BeforeRenderingTransparents"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/toon/outline"
	"github.com/gogpu/toon/pipeline"
)

// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown settings format")

// Format is a settings file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DefaultEvent is the outline insertion point used when a file omits it.
const DefaultEvent = pipeline.AfterRenderingOpaques

// Settings is the root of a settings file.
type Settings struct {
	Outline outline.Settings `toml:"outline" yaml:"outline"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{Outline: outline.Settings{Event: DefaultEvent}}
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and parses the settings file at path.
func Load(path string) (Settings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings from data. Fields absent from data keep their
// Default values.
func Parse(data []byte, format Format) (Settings, error) {
	s := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Marshal encodes settings in the given format.
func Marshal(s Settings, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(s)
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
