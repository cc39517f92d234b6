package render

import (
	"bytes"
	"encoding/json"

	"github.com/tokenforge/tokenforge/internal/tokens"
)

// TailwindConfig is the structure written to tailwind.config.json. It is
// shaped to slot into Tailwind's theme.extend extension point.
type TailwindConfig struct {
	Theme TailwindTheme `json:"theme"`
}

// TailwindTheme wraps the extend block.
type TailwindTheme struct {
	Extend TailwindExtend `json:"extend"`
}

// TailwindExtend carries the token tables in Tailwind's vocabulary.
type TailwindExtend struct {
	Colors       tokenColors      `json:"colors"`
	Spacing      tokens.Scale     `json:"spacing"`
	BorderRadius tokens.Scale     `json:"borderRadius"`
	BoxShadow    tokens.Scale     `json:"boxShadow"`
	Screens      tokens.Scale     `json:"screens"`
	FontFamily   fontFamilies     `json:"fontFamily"`
	FontSize     tokens.FontSizes `json:"fontSize"`
}

// tokenColors marshals the color tokens as an object keyed by token name,
// preserving the six-token declaration order.
type tokenColors []tokens.ColorToken

func (c tokenColors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, color := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(color.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		variants, err := json.Marshal(color.Variants)
		if err != nil {
			return nil, err
		}
		buf.Write(variants)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fontFamilies marshals font tokens as name -> family, in declaration order.
type fontFamilies []tokens.FontToken

func (f fontFamilies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, font := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(font.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		family, err := json.Marshal(font.Family)
		if err != nil {
			return nil, err
		}
		buf.Write(family)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Tailwind builds the utility-framework configuration for the design system.
func Tailwind(sys tokens.DesignSystem) TailwindConfig {
	return TailwindConfig{
		Theme: TailwindTheme{
			Extend: TailwindExtend{
				Colors:       tokenColors(sys.Colors),
				Spacing:      sys.Spacing.Values,
				BorderRadius: sys.Radius,
				BoxShadow:    sys.Shadows,
				Screens:      sys.Breakpoints,
				FontFamily:   fontFamilies(sys.Fonts),
				FontSize:     sys.Fonts[0].Sizes,
			},
		},
	}
}

// TailwindJSON renders the Tailwind configuration as indented JSON.
func TailwindJSON(sys tokens.DesignSystem) ([]byte, error) {
	return marshalIndent(Tailwind(sys))
}
