package tokens

import (
	"fmt"
	"strconv"

	"github.com/tokenforge/tokenforge/internal/assets"
)

// Fixed palette families for the four non-preset color tokens.
const (
	neutralFamily = "slate"
	successFamily = "emerald"
	warningFamily = "yellow"
	errorFamily   = "red"
)

// Multiplied spacing keys, in output order. "0", "px" and "0.5" are
// special-cased in buildSpacing.
var spacingSteps = []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24}

// BuildDesignSystem populates the fixed token schema from the static tables
// using the resolved preset's style choices. Loaded assets are accepted for
// interface parity but are not merged into generation; every output value
// derives from the static tables.
//
// The preset's style keys must come from the closed table vocabulary the
// resolver and preset validation guarantee; an unknown key is a programming
// error and panics.
func BuildDesignSystem(preset Preset, _ assets.Assets) DesignSystem {
	colors := []ColorToken{
		colorToken("primary", CategoryPrimary, preset.PrimaryColor),
		colorToken("accent", CategoryAccent, preset.AccentColor),
		colorToken("neutral", CategoryNeutral, neutralFamily),
		colorToken("success", CategorySemantic, successFamily),
		colorToken("warning", CategorySemantic, warningFamily),
		colorToken("error", CategorySemantic, errorFamily),
	}

	typography := mustTypography(preset.Typography)
	fonts := []FontToken{
		{
			Name:    "sans",
			Family:  typography.Family[0],
			Weights: []int{300, 400, 500, 600, 700},
			Sizes:   typography.Sizes,
			LineHeights: NewScale(
				"tight", "1.25",
				"normal", "1.5",
				"relaxed", "1.75",
			),
		},
	}

	return DesignSystem{
		Colors:      colors,
		Fonts:       fonts,
		Spacing:     buildSpacing(mustSpacing(preset.Spacing)),
		Radius:      mustRadius(preset.BorderRadius),
		Shadows:     mustShadows(preset.Shadows),
		Breakpoints: Breakpoints(),
	}
}

func colorToken(name, category, family string) ColorToken {
	palette := mustPalette(family)
	return ColorToken{
		Name:     name,
		Value:    palette.Value("500"),
		Type:     category,
		Variants: palette,
	}
}

func buildSpacing(style SpacingStyle) SpacingToken {
	pairs := []string{
		"0", "0",
		"px", "1px",
		// "0.5" maps to the style's base unit, not scale*0.5. The scale is
		// intentionally non-linear at its low end.
		"0.5", style.Base,
	}
	for _, step := range spacingSteps {
		pairs = append(pairs, strconv.Itoa(step), formatRem(style.Scale*float64(step)))
	}
	return SpacingToken{
		ScaleFactor: style.Scale,
		Values:      NewScale(pairs...),
	}
}

func formatRem(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "rem"
}

func mustPalette(name string) Scale {
	palette, ok := ColorPalettes[name]
	if !ok {
		panic(fmt.Sprintf("tokens: unknown color palette %q", name))
	}
	return palette
}

func mustRadius(name string) Scale {
	scale, ok := RadiusScales[name]
	if !ok {
		panic(fmt.Sprintf("tokens: unknown radius scale %q", name))
	}
	return scale
}

func mustShadows(name string) Scale {
	scale, ok := ShadowScales[name]
	if !ok {
		panic(fmt.Sprintf("tokens: unknown shadow scale %q", name))
	}
	return scale
}

func mustTypography(name string) Typography {
	typography, ok := TypographyScales[name]
	if !ok {
		panic(fmt.Sprintf("tokens: unknown typography scale %q", name))
	}
	return typography
}

func mustSpacing(name string) SpacingStyle {
	style, ok := SpacingScales[name]
	if !ok {
		panic(fmt.Sprintf("tokens: unknown spacing scale %q", name))
	}
	return style
}
