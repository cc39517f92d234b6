package tokens

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPresetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")

	doc := `name: brand
description: Custom brand preset
primary_color: teal
accent_color: orange
border_radius: rounded
shadows: soft
`

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	preset, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile: %v", err)
	}

	if preset.Name != "brand" {
		t.Errorf("name = %q, want brand", preset.Name)
	}
	if preset.PrimaryColor != "teal" {
		t.Errorf("primary = %q, want teal", preset.PrimaryColor)
	}
	// Unset fields fall back to the default preset's choices.
	if preset.Typography != "sans" {
		t.Errorf("typography = %q, want sans", preset.Typography)
	}
	if preset.Spacing != "comfortable" {
		t.Errorf("spacing = %q, want comfortable", preset.Spacing)
	}
}

func TestLoadPresetFileMissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anon.yaml")

	if err := os.WriteFile(path, []byte("primary_color: blue\n"), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	_, err := LoadPresetFile(path)
	if !errors.Is(err, ErrPresetNameRequired) {
		t.Fatalf("err = %v, want ErrPresetNameRequired", err)
	}
}

func TestLoadPresetFileUnknownStyle(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{
			name:      "unknown palette",
			doc:       "name: x\nprimary_color: mauve\n",
			wantField: "primary_color",
		},
		{
			name:      "unknown radius",
			doc:       "name: x\nborder_radius: extreme\n",
			wantField: "border_radius",
		},
		{
			name:      "unknown shadows",
			doc:       "name: x\nshadows: dramatic\n",
			wantField: "shadows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatalf("write preset: %v", err)
			}

			_, err := LoadPresetFile(path)
			var validationErr *PresetValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want PresetValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadPresetFileMissing(t *testing.T) {
	if _, err := LoadPresetFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
