// Package render turns a built design system into its output artifacts.
// Every renderer is a pure function of the design system; rendering the same
// system twice yields byte-identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/tokenforge/tokenforge/internal/tokens"
)

// CSS renders the design system as a single :root block of custom
// properties. Emission order follows token and table declaration order.
func CSS(sys tokens.DesignSystem) string {
	var b strings.Builder

	b.WriteString("/* Design system custom properties */\n")
	b.WriteString("/* Generated by tokenforge */\n\n")
	b.WriteString(":root {\n")

	for _, color := range sys.Colors {
		fmt.Fprintf(&b, "  /* %s */\n", strings.ToUpper(color.Name))
		for _, shade := range color.Variants.Keys() {
			fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", color.Name, shade, color.Variants.Value(shade))
		}
		b.WriteString("\n")
	}

	writeSection(&b, "SPACING", "spacing", sys.Spacing.Values)
	writeSection(&b, "BORDER RADIUS", "radius", sys.Radius)
	writeSection(&b, "SHADOWS", "shadow", sys.Shadows)

	b.WriteString("  /* BREAKPOINTS */\n")
	for _, key := range sys.Breakpoints.Keys() {
		fmt.Fprintf(&b, "  --breakpoint-%s: %s;\n", key, sys.Breakpoints.Value(key))
	}

	b.WriteString("}\n")
	return b.String()
}

func writeSection(b *strings.Builder, header, prefix string, scale tokens.Scale) {
	fmt.Fprintf(b, "  /* %s */\n", header)
	for _, key := range scale.Keys() {
		fmt.Fprintf(b, "  --%s-%s: %s;\n", prefix, key, scale.Value(key))
	}
	b.WriteString("\n")
}
