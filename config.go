package tokenlayer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the host settings consulted when layers are built.
//
// The YAML keys match the setting names of the token editor that hosts the
// engine, so an exported settings file can be loaded directly.
type Config struct {
	// CropToFit scales images to cover the canvas instead of fitting inside it.
	CropToFit bool `yaml:"default-crop-image"`

	// UseRayCastMask selects ray-cast mask generation over contour tracing.
	UseRayCastMask bool `yaml:"default-algorithm"`

	// MaskPreviewFill is an optional hex color drawn behind the mask preview.
	// Empty means no backdrop.
	MaskPreviewFill string `yaml:"default-color"`
}

// DefaultConfig returns the defaults: fit scaling, contour masks and no
// preview backdrop.
func DefaultConfig() Config {
	return Config{}
}

// PreviewFill returns the parsed mask preview backdrop, if one is set.
func (c Config) PreviewFill() (Color, bool) {
	s := strings.TrimSpace(c.MaskPreviewFill)
	if s == "" {
		return Color{}, false
	}
	col, err := ParseHex(s)
	if err != nil {
		return Color{}, false
	}
	return col, true
}

// Validate reports a malformed MaskPreviewFill.
func (c Config) Validate() error {
	s := strings.TrimSpace(c.MaskPreviewFill)
	if s == "" {
		return nil
	}
	if _, err := ParseHex(s); err != nil {
		return fmt.Errorf("default-color: %w", err)
	}
	return nil
}

// ParseConfig decodes a YAML settings document on top of the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadConfig reads a YAML settings file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
