// Package output writes the rendered design-system artifacts to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tokenforge/tokenforge/internal/render"
	"github.com/tokenforge/tokenforge/internal/tokens"
)

// Fixed output filenames.
const (
	CSSFileName      = "design-tokens.css"
	TailwindFileName = "tailwind.config.json"
	ShadcnFileName   = "shadcn-theme.json"
	DumpFileName     = "design-system.json"
)

// WriteAll creates dir (and parents) and writes the four artifacts under
// their fixed filenames. Writes are independent; a failure stops the run but
// earlier files are not rolled back. It returns the written paths in write
// order.
func WriteAll(sys tokens.DesignSystem, dir string, logger zerolog.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	artifacts := []struct {
		name   string
		render func(tokens.DesignSystem) ([]byte, error)
	}{
		{CSSFileName, func(s tokens.DesignSystem) ([]byte, error) {
			return []byte(render.CSS(s)), nil
		}},
		{TailwindFileName, render.TailwindJSON},
		{ShadcnFileName, render.ShadcnJSON},
		{DumpFileName, render.DumpJSON},
	}

	written := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		data, err := artifact.render(sys)
		if err != nil {
			return written, fmt.Errorf("render %s: %w", artifact.name, err)
		}

		path := filepath.Join(dir, artifact.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}

		logger.Info().Str("path", path).Int("bytes", len(data)).Msg("wrote artifact")
		written = append(written, path)
	}

	return written, nil
}
