package tokens

import (
	"sort"
	"strings"
)

// DefaultProductType is the preset used when no product type is given or the
// given one is unknown.
const DefaultProductType = "saas"

// Preset bundles the style choices associated with a product type. Every
// field is a key into the corresponding static table.
type Preset struct {
	Description  string `yaml:"description"`
	PrimaryColor string `yaml:"primary_color"`
	AccentColor  string `yaml:"accent_color"`
	BorderRadius string `yaml:"border_radius"`
	Typography   string `yaml:"typography"`
	Spacing      string `yaml:"spacing"`
	Shadows      string `yaml:"shadows"`
}

// Presets maps product types to their recommended style presets.
var Presets = map[string]Preset{
	"ecommerce": {
		Description:  "Modern e-commerce with clean aesthetics",
		PrimaryColor: "blue",
		AccentColor:  "orange",
		BorderRadius: "rounded",
		Typography:   "sans",
		Spacing:      "comfortable",
		Shadows:      "subtle",
	},
	"saas": {
		Description:  "Professional SaaS with trust-building design",
		PrimaryColor: "indigo",
		AccentColor:  "purple",
		BorderRadius: "medium",
		Typography:   "sans",
		Spacing:      "comfortable",
		Shadows:      "soft",
	},
	"social": {
		Description:  "Vibrant social platform with engaging UI",
		PrimaryColor: "pink",
		AccentColor:  "purple",
		BorderRadius: "full",
		Typography:   "sans",
		Spacing:      "compact",
		Shadows:      "colorful",
	},
	"finance": {
		Description:  "Trustworthy finance with conservative design",
		PrimaryColor: "slate",
		AccentColor:  "emerald",
		BorderRadius: "subtle",
		Typography:   "sans",
		Spacing:      "spacious",
		Shadows:      "minimal",
	},
	"healthcare": {
		Description:  "Clean healthcare design with calming colors",
		PrimaryColor: "teal",
		AccentColor:  "cyan",
		BorderRadius: "medium",
		Typography:   "sans",
		Spacing:      "comfortable",
		Shadows:      "soft",
	},
	"education": {
		Description:  "Friendly education platform with playful elements",
		PrimaryColor: "yellow",
		AccentColor:  "blue",
		BorderRadius: "rounded",
		Typography:   "friendly",
		Spacing:      "comfortable",
		Shadows:      "playful",
	},
}

// ProductTypes returns the known product types in sorted order.
func ProductTypes() []string {
	types := make([]string, 0, len(Presets))
	for name := range Presets {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// ResolvePreset maps a product type to its preset. The lookup is
// case-insensitive; an empty or unknown product type resolves to the default
// preset. It never fails. The returned name is the canonical product type
// the preset was registered under.
func ResolvePreset(productType string) (string, Preset) {
	key := strings.ToLower(strings.TrimSpace(productType))
	if preset, ok := Presets[key]; ok {
		return key, preset
	}
	return DefaultProductType, Presets[DefaultProductType]
}
