// Package variant holds the closed registry of named palette transforms.
//
// Each variant is a fixed recipe of the primitives in package colour. New
// variants are added to the registry table; nothing branches on names.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/evoke/internal/colour"
)

// ErrUnknownVariant is returned when a name is not in the registry.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant is a named transform applied to every role of a palette.
type Variant struct {
	Name        string
	Description string
	Transform   colour.Transform
}

// registry is ordered; generation and listings follow this order.
var registry = []Variant{
	{Name: "base", Description: "Chroma boost and flattened lightness, hue unchanged", Transform: Base},
	{Name: "ice", Description: "Base recipe rotated 80 degrees towards blue", Transform: Ice},
	{Name: "mono", Description: "Greyscale with lightness banded into thirds", Transform: Mono},
	{Name: "lavender", Description: "Hue stretched by 1.5 and snapped to sixths", Transform: Lavender},
	{Name: "blacklight", Description: "Squared hue shift with boosted chroma and crushed blacks", Transform: Blacklight},
	{Name: "pop", Description: "Thresholded saturation: greys flattened, colours doubled", Transform: Pop},
}

// All returns every registered variant in registry order.
func All() []Variant {
	out := make([]Variant, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, v := range registry {
		names[i] = v.Name
	}
	return names
}

// Lookup finds a variant by exact name.
func Lookup(name string) (Variant, error) {
	for _, v := range registry {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
}

// Select resolves names to variants, keeping registry order and dropping
// duplicates. An empty selection, or the single name "all", selects everything.
func Select(names []string) ([]Variant, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
		wanted[name] = true
	}

	selected := make([]Variant, 0, len(wanted))
	for _, v := range registry {
		if wanted[v.Name] {
			selected = append(selected, v)
		}
	}
	return selected, nil
}
