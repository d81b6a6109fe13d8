package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MoodFM/model"
)

// file is the on-disk catalog layout. JSON files decode through the same
// YAML decoder.
type file struct {
	Moods []model.MoodCategory `yaml:"moods"`
	Songs []model.Song         `yaml:"songs"`
}

// Parse decodes a YAML or JSON catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	return New(f.Moods, f.Songs)
}

// LoadFile reads a catalog file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
