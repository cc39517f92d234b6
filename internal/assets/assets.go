// Package assets loads optional design asset documents from a directory.
package assets

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Expected filenames under the assets directory.
const (
	ColorsFileName = "colors.json"
	FontsFileName  = "fonts.json"
	StylesFileName = "styles.json"
)

// Assets holds the loaded asset documents. A category that is missing or
// unparseable stays an empty map. Loaded assets are informational only; they
// are not merged into token generation.
type Assets struct {
	Colors map[string]any `json:"colors"`
	Fonts  map[string]any `json:"fonts"`
	Styles map[string]any `json:"styles"`
}

// Empty returns an Assets value with all categories empty.
func Empty() Assets {
	return Assets{
		Colors: map[string]any{},
		Fonts:  map[string]any{},
		Styles: map[string]any{},
	}
}

// Load reads the three optional asset files from dir. Every failure is
// recovered locally: a missing directory, a missing file, or a parse error
// leaves the affected category empty and logs a warning. Load never fails.
func Load(dir string, logger zerolog.Logger) Assets {
	loaded := Empty()

	if _, err := os.Stat(dir); err != nil {
		logger.Warn().Str("dir", dir).Msg("assets directory not found, using default design tokens")
		return loaded
	}

	loaded.Colors = loadDocument(filepath.Join(dir, ColorsFileName), logger)
	loaded.Fonts = loadDocument(filepath.Join(dir, FontsFileName), logger)
	loaded.Styles = loadDocument(filepath.Join(dir, StylesFileName), logger)

	return loaded
}

func loadDocument(path string, logger zerolog.Logger) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("failed to read asset file")
		}
		return map[string]any{}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to parse asset file")
		return map[string]any{}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	logger.Debug().Str("path", path).Int("keys", len(doc)).Msg("loaded asset file")
	return doc
}
