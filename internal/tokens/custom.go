package tokens

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrPresetNameRequired is returned when a preset file has no name.
var ErrPresetNameRequired = errors.New("preset name is required")

// PresetValidationError describes an invalid style key in a preset file.
type PresetValidationError struct {
	Field string
	Value string
}

func (e *PresetValidationError) Error() string {
	return fmt.Sprintf("preset %s: unknown value %q", e.Field, e.Value)
}

// CustomPreset is a user-supplied preset document. It selects among the
// builtin palettes and style scales; it cannot introduce new ones.
type CustomPreset struct {
	Name   string `yaml:"name"`
	Preset `yaml:",inline"`
}

// LoadPresetFile reads a custom preset from disk. Empty style fields fall
// back to the default preset's choices before validation.
func LoadPresetFile(path string) (*CustomPreset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("preset path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := parsePresetFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return preset, nil
}

func parsePresetFile(data []byte) (*CustomPreset, error) {
	var preset CustomPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}

	preset.Name = strings.TrimSpace(preset.Name)
	preset.applyDefaults()
	if err := preset.Validate(); err != nil {
		return nil, err
	}

	return &preset, nil
}

func (p *CustomPreset) applyDefaults() {
	defaults := Presets[DefaultProductType]
	if p.PrimaryColor == "" {
		p.PrimaryColor = defaults.PrimaryColor
	}
	if p.AccentColor == "" {
		p.AccentColor = defaults.AccentColor
	}
	if p.BorderRadius == "" {
		p.BorderRadius = defaults.BorderRadius
	}
	if p.Typography == "" {
		p.Typography = defaults.Typography
	}
	if p.Spacing == "" {
		p.Spacing = defaults.Spacing
	}
	if p.Shadows == "" {
		p.Shadows = defaults.Shadows
	}
}

// Validate checks that every style field names an existing table entry.
func (p *CustomPreset) Validate() error {
	if p.Name == "" {
		return ErrPresetNameRequired
	}
	if _, ok := ColorPalettes[p.PrimaryColor]; !ok {
		return &PresetValidationError{Field: "primary_color", Value: p.PrimaryColor}
	}
	if _, ok := ColorPalettes[p.AccentColor]; !ok {
		return &PresetValidationError{Field: "accent_color", Value: p.AccentColor}
	}
	if _, ok := RadiusScales[p.BorderRadius]; !ok {
		return &PresetValidationError{Field: "border_radius", Value: p.BorderRadius}
	}
	if _, ok := TypographyScales[p.Typography]; !ok {
		return &PresetValidationError{Field: "typography", Value: p.Typography}
	}
	if _, ok := SpacingScales[p.Spacing]; !ok {
		return &PresetValidationError{Field: "spacing", Value: p.Spacing}
	}
	if _, ok := ShadowScales[p.Shadows]; !ok {
		return &PresetValidationError{Field: "shadows", Value: p.Shadows}
	}
	return nil
}
