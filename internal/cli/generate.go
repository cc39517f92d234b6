package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/assets"
	"github.com/tokenforge/tokenforge/internal/config"
	"github.com/tokenforge/tokenforge/internal/output"
	"github.com/tokenforge/tokenforge/internal/tokens"
)

var (
	generateProductType string
	generateOutput      string
	generateAssets      string
	generatePresetFile  string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateProductType, "product-type", "", "product type preset (default: saas)")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "output directory (default: ./design-system)")
	generateCmd.Flags().StringVar(&generateAssets, "assets", "", "assets directory (default: ./assets)")
	generateCmd.Flags().StringVar(&generatePresetFile, "preset-file", "", "custom preset YAML file (overrides --product-type)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate design-token artifacts",
	Long: `Generate the design-token artifacts for a product type.

The run derives every token from builtin lookup tables and the resolved
preset, then writes four files to the output directory: CSS custom
properties, a Tailwind config, a shadcn/ui theme, and a full JSON dump.`,
	Example: `  # Default SaaS preset into ./design-system
  tokenforge generate

  # Finance preset with a custom output directory
  tokenforge generate --product-type finance --output ./theme

  # Custom preset document
  tokenforge generate --preset-file brand.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		opts := generateOptions{
			ProductType: firstNonEmpty(generateProductType, cfg.ProductType),
			OutputDir:   firstNonEmpty(generateOutput, cfg.OutputDir),
			AssetsDir:   firstNonEmpty(generateAssets, cfg.AssetsDir),
			PresetFile:  generatePresetFile,
		}

		result, err := runGenerate(opts, logger)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, result)
		}

		fmt.Printf("Design system generated:\n")
		fmt.Printf("  Preset: %s\n", result.Preset)
		for _, file := range result.Files {
			fmt.Printf("  %s\n", file)
		}
		return nil
	},
}

type generateOptions struct {
	ProductType string
	OutputDir   string
	AssetsDir   string
	PresetFile  string
}

// GenerateResult is the payload returned by `tokenforge generate --json`.
type GenerateResult struct {
	Preset      string        `json:"preset"`
	Description string        `json:"description"`
	Style       tokens.Preset `json:"style"`
	Files       []string      `json:"files"`
}

func runGenerate(opts generateOptions, logger zerolog.Logger) (*GenerateResult, error) {
	loaded := assets.Load(opts.AssetsDir, logger)

	name, preset, err := selectPreset(opts, logger)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("preset", name).
		Str("description", preset.Description).
		Msg("resolved style preset")

	sys := tokens.BuildDesignSystem(preset, loaded)

	step := startProgress("Writing design system")
	files, err := output.WriteAll(sys, opts.OutputDir, logger)
	if err != nil {
		step.Fail(err)
		return nil, err
	}
	step.Done()

	return &GenerateResult{
		Preset:      name,
		Description: preset.Description,
		Style:       preset,
		Files:       files,
	}, nil
}

func selectPreset(opts generateOptions, logger zerolog.Logger) (string, tokens.Preset, error) {
	if opts.PresetFile != "" {
		custom, err := tokens.LoadPresetFile(opts.PresetFile)
		if err != nil {
			return "", tokens.Preset{}, err
		}
		logger.Info().Str("path", opts.PresetFile).Str("name", custom.Name).Msg("loaded custom preset")
		return custom.Name, custom.Preset, nil
	}

	name, preset := tokens.ResolvePreset(opts.ProductType)
	if requested := strings.ToLower(strings.TrimSpace(opts.ProductType)); requested != "" && requested != name {
		logger.Warn().
			Str("product_type", opts.ProductType).
			Str("fallback", name).
			Msg("unknown product type, using default preset")
	}
	return name, preset, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
