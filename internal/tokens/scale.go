package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Scale is an ordered string-to-string table. Key order is significant in
// every artifact this tool writes (CSS custom properties and JSON configs
// follow table declaration order), so Scale preserves insertion order
// through JSON marshal and unmarshal.
type Scale struct {
	keys   []string
	values map[string]string
}

// NewScale builds a Scale from alternating key/value pairs.
// It panics on an odd number of arguments or a duplicate key; scales are
// declared statically, so either is a programming error.
func NewScale(pairs ...string) Scale {
	if len(pairs)%2 != 0 {
		panic("tokens: NewScale requires key/value pairs")
	}
	s := Scale{
		keys:   make([]string, 0, len(pairs)/2),
		values: make(map[string]string, len(pairs)/2),
	}
	for i := 0; i < len(pairs); i += 2 {
		key, value := pairs[i], pairs[i+1]
		if _, exists := s.values[key]; exists {
			panic(fmt.Sprintf("tokens: duplicate scale key %q", key))
		}
		s.keys = append(s.keys, key)
		s.values[key] = value
	}
	return s
}

// Get returns the value for key and whether it is present.
func (s Scale) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Value returns the value for key, or the empty string if absent.
func (s Scale) Value(key string) string {
	return s.values[key]
}

// Keys returns the keys in declaration order.
func (s Scale) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of entries.
func (s Scale) Len() int {
	return len(s.keys)
}

// MarshalJSON encodes the scale as a JSON object with keys in declaration
// order.
func (s Scale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving the key order found in
// the document.
func (s *Scale) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tokens: scale must be a JSON object, got %v", tok)
	}

	parsed := Scale{values: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tokens: scale key must be a string, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("tokens: scale value for %q: %w", key, err)
		}

		if _, exists := parsed.values[key]; !exists {
			parsed.keys = append(parsed.keys, key)
		}
		parsed.values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = parsed
	return nil
}
