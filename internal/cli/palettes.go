package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/tokens"
)

func init() {
	rootCmd.AddCommand(palettesCmd)
}

var palettesCmd = &cobra.Command{
	Use:   "palettes [family]",
	Short: "List color palettes",
	Long:  "List the builtin color families, or show one family's shade ramp.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showPalette(args[0])
		}
		return listPalettes()
	},
}

func listPalettes() error {
	if IsJSONOutput() {
		return WriteOutput(os.Stdout, tokens.ColorPalettes)
	}

	for _, name := range tokens.PaletteNames() {
		palette := tokens.ColorPalettes[name]
		blocks := make([]string, 0, palette.Len())
		for _, shade := range palette.Keys() {
			blocks = append(blocks, swatch(palette.Value(shade)))
		}
		fmt.Printf("%-8s %s\n", name, strings.Join(blocks, ""))
	}
	return nil
}

func showPalette(name string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	palette, ok := tokens.ColorPalettes[key]
	if !ok {
		return fmt.Errorf("unknown palette %q (run 'tokenforge palettes' for the list)", name)
	}

	if IsJSONOutput() {
		return WriteOutput(os.Stdout, map[string]any{
			"name":   key,
			"shades": palette,
		})
	}

	fmt.Printf("%s\n", heading(key))
	for _, shade := range palette.Keys() {
		fmt.Printf("  %-4s %s %s\n", shade, swatch(palette.Value(shade)), palette.Value(shade))
	}
	return nil
}
