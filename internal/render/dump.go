package render

import (
	"encoding/json"
	"fmt"

	"github.com/tokenforge/tokenforge/internal/tokens"
)

// DumpJSON renders the full structural serialization of the design system.
// The output reparses into an equivalent DesignSystem via encoding/json.
func DumpJSON(sys tokens.DesignSystem) ([]byte, error) {
	return marshalIndent(sys)
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	return append(data, '\n'), nil
}
