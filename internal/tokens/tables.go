package tokens

import "sort"

// PaletteNames returns the color family names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(ColorPalettes))
	for name := range ColorPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShadeKeys lists the shade ramp every color palette carries, light to dark.
var ShadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// ColorPalettes maps a color family name to its shade ramp.
// Values follow the Tailwind reference palette.
var ColorPalettes = map[string]Scale{
	"slate": NewScale(
		"50", "#f8fafc", "100", "#f1f5f9", "200", "#e2e8f0", "300", "#cbd5e1",
		"400", "#94a3b8", "500", "#64748b", "600", "#475569", "700", "#334155",
		"800", "#1e293b", "900", "#0f172a", "950", "#020617",
	),
	"gray": NewScale(
		"50", "#f9fafb", "100", "#f3f4f6", "200", "#e5e7eb", "300", "#d1d5db",
		"400", "#9ca3af", "500", "#6b7280", "600", "#4b5563", "700", "#374151",
		"800", "#1f2937", "900", "#111827", "950", "#030712",
	),
	"blue": NewScale(
		"50", "#eff6ff", "100", "#dbeafe", "200", "#bfdbfe", "300", "#93c5fd",
		"400", "#60a5fa", "500", "#3b82f6", "600", "#2563eb", "700", "#1d4ed8",
		"800", "#1e40af", "900", "#1e3a8a", "950", "#172554",
	),
	"indigo": NewScale(
		"50", "#eef2ff", "100", "#e0e7ff", "200", "#c7d2fe", "300", "#a5b4fc",
		"400", "#818cf8", "500", "#6366f1", "600", "#4f46e5", "700", "#4338ca",
		"800", "#3730a3", "900", "#312e81", "950", "#1e1b4b",
	),
	"purple": NewScale(
		"50", "#faf5ff", "100", "#f3e8ff", "200", "#e9d5ff", "300", "#d8b4fe",
		"400", "#c084fc", "500", "#a855f7", "600", "#9333ea", "700", "#7e22ce",
		"800", "#6b21a8", "900", "#581c87", "950", "#3b0764",
	),
	"pink": NewScale(
		"50", "#fdf2f8", "100", "#fce7f3", "200", "#fbcfe8", "300", "#f9a8d4",
		"400", "#f472b6", "500", "#ec4899", "600", "#db2777", "700", "#be185d",
		"800", "#9d174d", "900", "#831843", "950", "#500724",
	),
	"red": NewScale(
		"50", "#fef2f2", "100", "#fee2e2", "200", "#fecaca", "300", "#fca5a5",
		"400", "#f87171", "500", "#ef4444", "600", "#dc2626", "700", "#b91c1c",
		"800", "#991b1b", "900", "#7f1d1d", "950", "#450a0a",
	),
	"orange": NewScale(
		"50", "#fff7ed", "100", "#ffedd5", "200", "#fed7aa", "300", "#fdba74",
		"400", "#fb923c", "500", "#f97316", "600", "#ea580c", "700", "#c2410c",
		"800", "#9a3412", "900", "#7c2d12", "950", "#431407",
	),
	"yellow": NewScale(
		"50", "#fefce8", "100", "#fef9c3", "200", "#fef08a", "300", "#fde047",
		"400", "#facc15", "500", "#eab308", "600", "#ca8a04", "700", "#a16207",
		"800", "#854d0e", "900", "#713f12", "950", "#422006",
	),
	"green": NewScale(
		"50", "#f0fdf4", "100", "#dcfce7", "200", "#bbf7d0", "300", "#86efac",
		"400", "#4ade80", "500", "#22c55e", "600", "#16a34a", "700", "#15803d",
		"800", "#166534", "900", "#14532d", "950", "#052e16",
	),
	"emerald": NewScale(
		"50", "#ecfdf5", "100", "#d1fae5", "200", "#a7f3d0", "300", "#6ee7b7",
		"400", "#34d399", "500", "#10b981", "600", "#059669", "700", "#047857",
		"800", "#065f46", "900", "#064e3b", "950", "#022c22",
	),
	"teal": NewScale(
		"50", "#f0fdfa", "100", "#ccfbf1", "200", "#99f6e4", "300", "#5eead4",
		"400", "#2dd4bf", "500", "#14b8a6", "600", "#0d9488", "700", "#0f766e",
		"800", "#115e59", "900", "#134e4a", "950", "#042f2e",
	),
	"cyan": NewScale(
		"50", "#ecfeff", "100", "#cffafe", "200", "#a5f3fc", "300", "#67e8f9",
		"400", "#22d3ee", "500", "#06b6d4", "600", "#0891b2", "700", "#0e7490",
		"800", "#155e75", "900", "#164e63", "950", "#083344",
	),
}

// RadiusScales maps a border-radius style to its named radii.
var RadiusScales = map[string]Scale{
	"none": NewScale("none", "0px"),
	"subtle": NewScale(
		"sm", "0.125rem", "DEFAULT", "0.25rem", "md", "0.375rem",
		"lg", "0.5rem", "xl", "0.75rem",
	),
	"rounded": NewScale(
		"sm", "0.125rem", "DEFAULT", "0.375rem", "md", "0.5rem",
		"lg", "0.75rem", "xl", "1rem", "2xl", "1.5rem",
	),
	"medium": NewScale(
		"sm", "0.25rem", "DEFAULT", "0.5rem", "md", "0.75rem",
		"lg", "1rem", "xl", "1.5rem", "2xl", "2rem",
	),
	"full": NewScale(
		"sm", "9999px", "DEFAULT", "9999px", "md", "9999px",
		"lg", "9999px", "xl", "9999px", "full", "9999px",
	),
}

// ShadowScales maps a shadow style to its named box shadows.
var ShadowScales = map[string]Scale{
	"minimal": NewScale(
		"xs", "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"sm", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
	),
	"subtle": NewScale(
		"DEFAULT", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
		"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	),
	"soft": NewScale(
		"DEFAULT", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"md", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"lg", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	),
	"colorful": NewScale(
		"DEFAULT", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"lg", "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		"color", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	),
	"playful": NewScale(
		"DEFAULT", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"lg", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		"xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	),
}

// Typography is a typeface stack plus its size ramp.
type Typography struct {
	Family []string
	Sizes  FontSizes
}

func standardSizes() FontSizes {
	return FontSizes{
		{Key: "xs", Size: "0.75rem", LineHeight: "1rem"},
		{Key: "sm", Size: "0.875rem", LineHeight: "1.25rem"},
		{Key: "base", Size: "1rem", LineHeight: "1.5rem"},
		{Key: "lg", Size: "1.125rem", LineHeight: "1.75rem"},
		{Key: "xl", Size: "1.25rem", LineHeight: "1.75rem"},
		{Key: "2xl", Size: "1.5rem", LineHeight: "2rem"},
		{Key: "3xl", Size: "1.875rem", LineHeight: "2.25rem"},
		{Key: "4xl", Size: "2.25rem", LineHeight: "2.5rem"},
	}
}

// TypographyScales maps a typography style to its typeface stack.
var TypographyScales = map[string]Typography{
	"sans": {
		Family: []string{"Inter", "system-ui", "sans-serif"},
		Sizes:  standardSizes(),
	},
	"friendly": {
		Family: []string{"Nunito", "system-ui", "sans-serif"},
		Sizes:  standardSizes(),
	},
}

// SpacingStyle holds the multiplier and base unit for a spacing style.
type SpacingStyle struct {
	Scale float64
	Base  string
}

// SpacingScales maps a spacing style to its scale configuration.
var SpacingScales = map[string]SpacingStyle{
	"compact":     {Scale: 0.25, Base: "0.25rem"},
	"comfortable": {Scale: 0.5, Base: "0.5rem"},
	"spacious":    {Scale: 1, Base: "1rem"},
}

// Breakpoints is the fixed responsive breakpoint set, independent of preset.
func Breakpoints() Scale {
	return NewScale(
		"sm", "640px",
		"md", "768px",
		"lg", "1024px",
		"xl", "1280px",
		"2xl", "1536px",
	)
}
