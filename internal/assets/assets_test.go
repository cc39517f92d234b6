package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadMissingDirectory(t *testing.T) {
	loaded := Load(filepath.Join(t.TempDir(), "does-not-exist"), zerolog.Nop())

	if len(loaded.Colors) != 0 || len(loaded.Fonts) != 0 || len(loaded.Styles) != 0 {
		t.Fatalf("expected empty assets, got %+v", loaded)
	}
}

func TestLoadPartialAssets(t *testing.T) {
	dir := t.TempDir()
	colors := `{"brand": "#112233", "alt": "#445566"}`
	if err := os.WriteFile(filepath.Join(dir, ColorsFileName), []byte(colors), 0o644); err != nil {
		t.Fatalf("write colors: %v", err)
	}

	loaded := Load(dir, zerolog.Nop())

	if got := loaded.Colors["brand"]; got != "#112233" {
		t.Errorf("colors[brand] = %v, want #112233", got)
	}
	if len(loaded.Fonts) != 0 {
		t.Errorf("fonts should be empty, got %v", loaded.Fonts)
	}
	if len(loaded.Styles) != 0 {
		t.Errorf("styles should be empty, got %v", loaded.Styles)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FontsFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fonts: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, StylesFileName), []byte(`{"minimal": true}`), 0o644); err != nil {
		t.Fatalf("write styles: %v", err)
	}

	loaded := Load(dir, zerolog.Nop())

	if len(loaded.Fonts) != 0 {
		t.Errorf("malformed fonts should load empty, got %v", loaded.Fonts)
	}
	if got := loaded.Styles["minimal"]; got != true {
		t.Errorf("styles[minimal] = %v, want true", got)
	}
}

func TestLoadAllCategories(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		ColorsFileName: `{"primary": "#000000"}`,
		FontsFileName:  `{"heading": "Inter"}`,
		StylesFileName: `{"tone": "calm"}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	loaded := Load(dir, zerolog.Nop())

	if len(loaded.Colors) != 1 || len(loaded.Fonts) != 1 || len(loaded.Styles) != 1 {
		t.Fatalf("expected one key per category, got %+v", loaded)
	}
}
