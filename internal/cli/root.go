// Package cli implements the tokenforge command tree.
package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	noProgress bool
	noColor    bool

	// logger is configured once per invocation in PersistentPreRun.
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tokenforge",
	Short: "Generate design tokens from product-type presets",
	Long: `tokenforge derives a design-token set (colors, typography, spacing,
radii, shadows, breakpoints) from builtin style presets and writes it as CSS
custom properties, a Tailwind config, a shadcn/ui theme, and a full JSON dump.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !colorEnabled()}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
