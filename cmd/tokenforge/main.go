// Command tokenforge generates static design-token artifacts from builtin
// style presets.
package main

import (
	"os"

	"github.com/tokenforge/tokenforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
