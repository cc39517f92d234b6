package render

import (
	"github.com/tokenforge/tokenforge/internal/tokens"
)

// ShadcnTheme is the component-theme structure written to shadcn-theme.json.
type ShadcnTheme struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Colors       ShadcnColors `json:"colors"`
	BorderRadius string       `json:"borderRadius"`
}

// ShadcnColors is the semantic palette derived from the token shades.
type ShadcnColors struct {
	Background            string `json:"background"`
	Foreground            string `json:"foreground"`
	Card                  string `json:"card"`
	CardForeground        string `json:"cardForeground"`
	Popover               string `json:"popover"`
	PopoverForeground     string `json:"popoverForeground"`
	Primary               string `json:"primary"`
	PrimaryForeground     string `json:"primaryForeground"`
	Secondary             string `json:"secondary"`
	SecondaryForeground   string `json:"secondaryForeground"`
	Muted                 string `json:"muted"`
	MutedForeground       string `json:"mutedForeground"`
	Accent                string `json:"accent"`
	AccentForeground      string `json:"accentForeground"`
	Destructive           string `json:"destructive"`
	DestructiveForeground string `json:"destructiveForeground"`
	Border                string `json:"border"`
	Input                 string `json:"input"`
	Ring                  string `json:"ring"`
}

// Shadcn derives the semantic component theme from the design system.
//
// The destructive color is sourced from the fifth declared color token
// positionally (the warning token in the current declaration order), not
// from the error token by name. This mirrors the historic generator output;
// reordering the token list would change which palette feeds destructive.
func Shadcn(sys tokens.DesignSystem) ShadcnTheme {
	primary, _ := sys.Color("primary")
	accent, _ := sys.Color("accent")
	neutral, _ := sys.Color("neutral")
	destructive := sys.Colors[4]

	radius, ok := sys.Radius.Get("DEFAULT")
	if !ok {
		radius = "0.5rem"
	}

	return ShadcnTheme{
		Name: "default",
		Type: "light",
		Colors: ShadcnColors{
			Background:            neutral.Variants.Value("50"),
			Foreground:            neutral.Variants.Value("950"),
			Card:                  neutral.Variants.Value("50"),
			CardForeground:        neutral.Variants.Value("950"),
			Popover:               neutral.Variants.Value("50"),
			PopoverForeground:     neutral.Variants.Value("950"),
			Primary:               primary.Variants.Value("500"),
			PrimaryForeground:     neutral.Variants.Value("50"),
			Secondary:             neutral.Variants.Value("100"),
			SecondaryForeground:   neutral.Variants.Value("900"),
			Muted:                 neutral.Variants.Value("100"),
			MutedForeground:       neutral.Variants.Value("500"),
			Accent:                accent.Variants.Value("500"),
			AccentForeground:      neutral.Variants.Value("50"),
			Destructive:           destructive.Variants.Value("500"),
			DestructiveForeground: neutral.Variants.Value("50"),
			Border:                neutral.Variants.Value("200"),
			Input:                 neutral.Variants.Value("200"),
			Ring:                  primary.Variants.Value("500"),
		},
		BorderRadius: radius,
	}
}

// ShadcnJSON renders the component theme as indented JSON.
func ShadcnJSON(sys tokens.DesignSystem) ([]byte, error) {
	return marshalIndent(Shadcn(sys))
}
