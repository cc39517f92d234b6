package cli

import (
	"encoding/json"
	"io"
)

// IsJSONOutput reports whether commands should print JSON instead of
// human-readable text.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput encodes v as indented JSON to out.
func WriteOutput(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
