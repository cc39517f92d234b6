package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTailwindJSONStructure(t *testing.T) {
	sys := buildSystem(t, "ecommerce")

	data, err := TailwindJSON(sys)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	theme, ok := parsed["theme"].(map[string]any)
	require.True(t, ok, "theme must be an object")
	extend, ok := theme["extend"].(map[string]any)
	require.True(t, ok, "extend must be an object")

	for _, key := range []string{"colors", "spacing", "borderRadius", "boxShadow", "screens", "fontFamily", "fontSize"} {
		require.Contains(t, extend, key)
	}

	colors := extend["colors"].(map[string]any)
	require.Len(t, colors, 6)
	primary := colors["primary"].(map[string]any)
	require.Equal(t, "#3b82f6", primary["500"], "ecommerce primary is blue")

	fontFamily := extend["fontFamily"].(map[string]any)
	require.Equal(t, "Inter", fontFamily["sans"])

	fontSize := extend["fontSize"].(map[string]any)
	base := fontSize["base"].([]any)
	require.Equal(t, []any{"1rem", "1.5rem"}, base, "font sizes are [size, line-height] pairs")

	screens := extend["screens"].(map[string]any)
	require.Equal(t, "640px", screens["sm"])
}

func TestTailwindJSONColorOrder(t *testing.T) {
	sys := buildSystem(t, "saas")

	data, err := TailwindJSON(sys)
	require.NoError(t, err)

	text := string(data)
	order := []string{`"primary"`, `"accent"`, `"neutral"`, `"success"`, `"warning"`, `"error"`}
	last := -1
	for _, name := range order {
		idx := strings.Index(text, name)
		require.GreaterOrEqual(t, idx, 0, "missing color %s", name)
		require.Greater(t, idx, last, "color %s out of declaration order", name)
		last = idx
	}
}
