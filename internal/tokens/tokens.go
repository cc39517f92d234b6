// Package tokens defines the design-token model, the static style tables,
// and the builder that turns a resolved preset into a complete design system.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Color token categories.
const (
	CategoryPrimary  = "primary"
	CategoryAccent   = "accent"
	CategoryNeutral  = "neutral"
	CategorySemantic = "semantic"
)

// ColorToken is a named color with its full shade ramp. Variants always
// carries the same eleven shade keys ("50".."950") taken verbatim from the
// source palette.
type ColorToken struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Type     string `json:"type"`
	Variants Scale  `json:"variants"`
}

// FontSize couples a font size with its default line height.
type FontSize struct {
	Key        string
	Size       string
	LineHeight string
}

// FontSizes is an ordered size table. It marshals as an object mapping each
// size key to a [size, line-height] pair, matching the generated configs.
type FontSizes []FontSize

// Get returns the entry for key and whether it is present.
func (f FontSizes) Get(key string) (FontSize, bool) {
	for _, size := range f {
		if size.Key == key {
			return size, true
		}
	}
	return FontSize{}, false
}

// MarshalJSON encodes the sizes as an ordered JSON object of two-element
// arrays.
func (f FontSizes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, size := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(size.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		pair, err := json.Marshal([2]string{size.Size, size.LineHeight})
		if err != nil {
			return nil, err
		}
		buf.Write(pair)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of [size, line-height] pairs, preserving
// document order.
func (f *FontSizes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tokens: font sizes must be a JSON object, got %v", tok)
	}

	parsed := make(FontSizes, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tokens: font size key must be a string, got %v", keyTok)
		}

		var pair [2]string
		if err := dec.Decode(&pair); err != nil {
			return fmt.Errorf("tokens: font size %q: %w", key, err)
		}
		parsed = append(parsed, FontSize{Key: key, Size: pair[0], LineHeight: pair[1]})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = parsed
	return nil
}

// FontToken is a named typeface with its weight list and size tables.
type FontToken struct {
	Name        string    `json:"name"`
	Family      string    `json:"family"`
	Weights     []int     `json:"weights"`
	Sizes       FontSizes `json:"sizes"`
	LineHeights Scale     `json:"line_heights"`
}

// SpacingToken is the computed spacing ramp for a spacing style.
type SpacingToken struct {
	ScaleFactor float64 `json:"scale_factor"`
	Values      Scale   `json:"values"`
}

// DesignSystem is the complete token set produced by one run. It is built
// once and never mutated afterwards; renderers only read from it.
type DesignSystem struct {
	Colors      []ColorToken `json:"colors"`
	Fonts       []FontToken  `json:"fonts"`
	Spacing     SpacingToken `json:"spacing"`
	Radius      Scale        `json:"radius"`
	Shadows     Scale        `json:"shadows"`
	Breakpoints Scale        `json:"breakpoints"`
}

// Color returns the color token with the given name.
func (d DesignSystem) Color(name string) (ColorToken, bool) {
	for _, color := range d.Colors {
		if color.Name == name {
			return color, true
		}
	}
	return ColorToken{}, false
}
