// loader.go — Load a manifest JSON file describing which images to render.
package mockup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest replaces the built-in catalogue and tweaks the configuration.
// Zero fields keep the defaults.
type Manifest struct {
	BaseFontSize float64       `json:"baseFontSize,omitempty"`
	Fonts        []string      `json:"fonts,omitempty"`
	Theme        ThemeOverride `json:"theme"`
	Specs        []Spec        `json:"specs"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses manifest JSON.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest JSON: %w", err)
	}
	if len(m.Specs) == 0 {
		return nil, fmt.Errorf("manifest has no specs")
	}
	return &m, nil
}

// Apply returns cfg with the manifest's overrides applied.
func (m *Manifest) Apply(cfg Config) (Config, error) {
	theme, err := MergeTheme(cfg.Theme, m.Theme)
	if err != nil {
		return cfg, err
	}
	cfg.Theme = theme

	if m.BaseFontSize != 0 {
		// The description size is base-4 and must stay positive.
		if m.BaseFontSize <= 4 {
			return cfg, fmt.Errorf("baseFontSize %v: must be greater than 4", m.BaseFontSize)
		}
		cfg.BaseFontSize = m.BaseFontSize
	}

	if len(m.Fonts) > 0 {
		fonts := make([]FontSource, 0, len(m.Fonts))
		for _, name := range m.Fonts {
			fonts = append(fonts, FontSourceFor(name))
		}
		cfg.Fonts = fonts
	}

	return cfg, nil
}

// FontSourceFor maps a manifest font entry to a source: "go" is the
// embedded Go font, "default" the built-in bitmap face, anything with a
// directory part a file, and a bare name is searched for.
func FontSourceFor(name string) FontSource {
	switch strings.ToLower(name) {
	case "go", "go-regular":
		return EmbeddedFont{}
	case "default":
		return DefaultFont{}
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return FileFont{Path: name}
	}
	return NamedFont{File: name}
}
