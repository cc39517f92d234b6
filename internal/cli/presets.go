package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/tokens"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsShowCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List builtin product-type presets",
	Long:  "List the builtin product types and the style choices each one maps to.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsJSONOutput() {
			return WriteOutput(os.Stdout, tokens.Presets)
		}

		rows := make([][]string, 0, len(tokens.Presets))
		for _, name := range tokens.ProductTypes() {
			preset := tokens.Presets[name]
			rows = append(rows, []string{
				name,
				preset.PrimaryColor,
				preset.AccentColor,
				preset.BorderRadius,
				preset.Shadows,
				preset.Typography,
				preset.Spacing,
			})
		}

		return writeTable(os.Stdout, []string{"TYPE", "PRIMARY", "ACCENT", "RADIUS", "SHADOWS", "TYPOGRAPHY", "SPACING"}, rows)
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <product-type>",
	Short: "Show one preset in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, preset := tokens.ResolvePreset(args[0])

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{
				"name":   name,
				"preset": preset,
			})
		}

		fmt.Printf("%s\n", heading(name))
		fmt.Printf("%s\n\n", muted(preset.Description))
		fmt.Printf("  Primary:    %s %s\n", swatch(tokens.ColorPalettes[preset.PrimaryColor].Value("500")), preset.PrimaryColor)
		fmt.Printf("  Accent:     %s %s\n", swatch(tokens.ColorPalettes[preset.AccentColor].Value("500")), preset.AccentColor)
		fmt.Printf("  Radius:     %s\n", preset.BorderRadius)
		fmt.Printf("  Shadows:    %s\n", preset.Shadows)
		fmt.Printf("  Typography: %s\n", preset.Typography)
		fmt.Printf("  Spacing:    %s\n", preset.Spacing)
		return nil
	},
}
