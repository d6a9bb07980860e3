// Package theme assembles VS Code colour theme documents from a derived and an
// original palette using a declarative schema.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a VS Code colour theme.
type Document struct {
	Name                 string         `json:"name"`
	Colors               ColorMap       `json:"colors"`
	TokenColors          []TokenColor   `json:"tokenColors"`
	SemanticHighlighting bool           `json:"semanticHighlighting"`
	SemanticTokenColors  SemanticTokens `json:"semanticTokenColors"`
}

// ColorEntry is one workbench colour field.
type ColorEntry struct {
	Field string
	Hex   string
}

// ColorMap is an ordered set of workbench colours. It encodes as a JSON object
// in slice order.
type ColorMap []ColorEntry

// Get returns the colour for a field.
func (m ColorMap) Get(field string) (string, bool) {
	for _, e := range m {
		if e.Field == field {
			return e.Hex, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler.
func (m ColorMap) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(m), func(i int) (string, any) {
		return m[i].Field, m[i].Hex
	})
}

// TokenColor is a TextMate token colour rule.
type TokenColor struct {
	Scope    []string      `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings holds the style of a TextMate rule.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// SemanticToken styles one semantic token selector.
type SemanticToken struct {
	Selector   string
	Foreground string
	Bold       bool
	Italic     bool
	Underline  bool
}

// hasStyle reports whether the token needs the object form.
func (t SemanticToken) hasStyle() bool {
	return t.Bold || t.Italic || t.Underline
}

type semanticStyle struct {
	Foreground string `json:"foreground,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	Underline  bool   `json:"underline,omitempty"`
}

// SemanticTokens is an ordered set of semantic token styles. Tokens that only
// set a foreground encode as a bare colour string.
type SemanticTokens []SemanticToken

// Get returns the token for a selector.
func (s SemanticTokens) Get(selector string) (SemanticToken, bool) {
	for _, t := range s {
		if t.Selector == selector {
			return t, true
		}
	}
	return SemanticToken{}, false
}

// MarshalJSON implements json.Marshaler.
func (s SemanticTokens) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(s), func(i int) (string, any) {
		t := s[i]
		if !t.hasStyle() {
			return t.Selector, t.Foreground
		}
		return t.Selector, semanticStyle{
			Foreground: t.Foreground,
			Bold:       t.Bold,
			Italic:     t.Italic,
			Underline:  t.Underline,
		}
	})
}

// marshalOrdered writes n key/value pairs as a JSON object, preserving order.
func marshalOrdered(n int, pair func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		key, value := pair(i)
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", key, err)
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for %q: %w", key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent encodes the document with two-space indentation and a
// trailing newline. HTML characters are not escaped.
func (d *Document) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}
	return buf.Bytes(), nil
}
