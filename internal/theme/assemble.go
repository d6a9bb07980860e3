package theme

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/evoke/internal/colour"
)

// ErrMissingRole is returned when the schema references a role a palette lacks.
var ErrMissingRole = colour.ErrMissingRole

// ErrInvalidSchema is returned by Schema.Validate.
var ErrInvalidSchema = errors.New("invalid theme schema")

// Assemble builds a theme document from the default schema.
func Assemble(name string, derived, original colour.Palette) (*Document, error) {
	return DefaultSchema().Assemble(name, derived, original)
}

// Assemble fills the schema tables in declaration order. Bindings with
// Source Original read from original, everything else from derived.
func (s Schema) Assemble(name string, derived, original colour.Palette) (*Document, error) {
	doc := &Document{
		Name:                 name,
		Colors:               make(ColorMap, 0, s.fieldCount()),
		TokenColors:          make([]TokenColor, 0, len(s.Tokens)),
		SemanticHighlighting: true,
		SemanticTokenColors:  make(SemanticTokens, 0, len(s.Semantic)),
	}

	for _, b := range s.Workbench {
		p := derived
		if b.Source == Original {
			p = original
		}
		hex, err := lookup(p, b.Role, b.Source)
		if err != nil {
			return nil, err
		}
		for _, field := range b.Fields {
			doc.Colors = append(doc.Colors, ColorEntry{Field: field, Hex: hex})
		}
	}

	for _, rule := range s.Tokens {
		settings := TokenSettings{FontStyle: rule.FontStyle}
		if rule.Role != "" {
			hex, err := lookup(derived, rule.Role, Derived)
			if err != nil {
				return nil, err
			}
			settings.Foreground = hex
		}
		scopes := make([]string, len(rule.Scopes))
		copy(scopes, rule.Scopes)
		doc.TokenColors = append(doc.TokenColors, TokenColor{Scope: scopes, Settings: settings})
	}

	for _, sb := range s.Semantic {
		token := SemanticToken{
			Selector:  sb.Selector,
			Bold:      sb.Bold,
			Italic:    sb.Italic,
			Underline: sb.Underline,
		}
		if sb.Role != "" {
			hex, err := lookup(derived, sb.Role, Derived)
			if err != nil {
				return nil, err
			}
			token.Foreground = hex
		}
		doc.SemanticTokenColors = append(doc.SemanticTokenColors, token)
	}

	return doc, nil
}

// Validate checks the schema for unknown roles, duplicate workbench fields and
// rules that would encode as empty.
func (s Schema) Validate() error {
	seen := make(map[string]colour.Role, s.fieldCount())
	for _, b := range s.Workbench {
		if !b.Role.IsKnown() {
			return fmt.Errorf("%w: workbench binding uses unknown role %q", ErrInvalidSchema, b.Role)
		}
		for _, field := range b.Fields {
			if prev, dup := seen[field]; dup {
				return fmt.Errorf("%w: field %s bound to both %s and %s", ErrInvalidSchema, field, prev, b.Role)
			}
			seen[field] = b.Role
		}
	}

	for i, rule := range s.Tokens {
		if len(rule.Scopes) == 0 {
			return fmt.Errorf("%w: token rule %d has no scopes", ErrInvalidSchema, i)
		}
		if rule.Role == "" && rule.FontStyle == "" {
			return fmt.Errorf("%w: token rule %d sets nothing", ErrInvalidSchema, i)
		}
		if rule.Role != "" && !rule.Role.IsKnown() {
			return fmt.Errorf("%w: token rule %d uses unknown role %q", ErrInvalidSchema, i, rule.Role)
		}
	}

	selectors := make(map[string]bool, len(s.Semantic))
	for _, sb := range s.Semantic {
		if selectors[sb.Selector] {
			return fmt.Errorf("%w: duplicate semantic selector %s", ErrInvalidSchema, sb.Selector)
		}
		selectors[sb.Selector] = true

		if sb.Role == "" && !sb.Bold && !sb.Italic && !sb.Underline {
			return fmt.Errorf("%w: semantic selector %s sets nothing", ErrInvalidSchema, sb.Selector)
		}
		if sb.Role != "" && !sb.Role.IsKnown() {
			return fmt.Errorf("%w: semantic selector %s uses unknown role %q", ErrInvalidSchema, sb.Selector, sb.Role)
		}
	}

	return nil
}

// Roles returns every role the schema reads, per source.
func (s Schema) Roles() map[Source][]colour.Role {
	seen := map[Source]map[colour.Role]bool{Derived: {}, Original: {}}
	out := map[Source][]colour.Role{}
	add := func(src Source, r colour.Role) {
		if r == "" || seen[src][r] {
			return
		}
		seen[src][r] = true
		out[src] = append(out[src], r)
	}

	for _, b := range s.Workbench {
		add(b.Source, b.Role)
	}
	for _, rule := range s.Tokens {
		add(Derived, rule.Role)
	}
	for _, sb := range s.Semantic {
		add(Derived, sb.Role)
	}
	return out
}

func (s Schema) fieldCount() int {
	n := 0
	for _, b := range s.Workbench {
		n += len(b.Fields)
	}
	return n
}

func lookup(p colour.Palette, r colour.Role, src Source) (string, error) {
	hex, ok := p.Get(r)
	if !ok {
		return "", fmt.Errorf("%w: %s (%s palette)", ErrMissingRole, r, src)
	}
	return hex, nil
}
