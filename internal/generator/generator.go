// Package generator produces the theme family: one document per variant,
// written under the project root and registered in the manifest.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/evoke/internal/artifact"
	"github.com/jmylchreest/evoke/internal/colour"
	"github.com/jmylchreest/evoke/internal/manifest"
	"github.com/jmylchreest/evoke/internal/theme"
	"github.com/jmylchreest/evoke/internal/variant"
)

const (
	DefaultFamily      = "evoke"
	DefaultDisplayName = "Evoke OLED"
	DefaultUITheme     = "vs-dark"
	DefaultThemesDir   = "themes"
)

// Result describes one generated variant.
type Result struct {
	Variant    string
	Path       string // Slash-separated path relative to the project root
	File       string // Resolved filesystem path
	Bytes      int
	Registered bool // False when the manifest already listed the theme
	Palette    colour.Palette
}

// Generator runs the variant pipeline.
type Generator struct {
	Family      string
	DisplayName string
	UITheme     string
	ThemesDir   string

	Base     colour.Palette
	Variants []variant.Variant
	Schema   *theme.Schema // DefaultSchema when nil

	Writer    *artifact.Writer
	Registrar *manifest.Registrar
	Logger    hclog.Logger

	// Concurrency bounds the variants processed at once; <= 0 means all.
	Concurrency int
}

// Run generates every configured variant. The first failure cancels the
// remaining work and is returned. Results follow the order of Variants.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	schema := theme.DefaultSchema()
	if g.Schema != nil {
		schema = *g.Schema
	}

	results := make([]Result, len(g.Variants))

	eg, ctx := errgroup.WithContext(ctx)
	limit := g.Concurrency
	if limit <= 0 {
		limit = len(g.Variants)
	}
	eg.SetLimit(limit)

	for i, v := range g.Variants {
		eg.Go(func() error {
			res, err := g.runVariant(ctx, schema, v)
			if err != nil {
				return fmt.Errorf("variant %s: %w", v.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *Generator) runVariant(ctx context.Context, schema theme.Schema, v variant.Variant) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	logger := g.logger().With("variant", v.Name)

	derived, err := colour.Process(g.Base, v.Transform)
	if err != nil {
		return Result{}, err
	}

	doc, err := schema.Assemble(g.displayName(), derived, g.Base)
	if err != nil {
		return Result{}, err
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode theme: %w", err)
	}

	rel := artifact.ThemePath(g.themesDir(), g.family(), v.Name)
	file, err := g.Writer.Write(rel, data)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("theme written", "path", file, "bytes", len(data))

	registered := false
	if g.Registrar != nil {
		registered, err = g.Registrar.Register(ctx, g.Entry(v.Name))
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		Variant:    v.Name,
		Path:       rel,
		File:       file,
		Bytes:      len(data),
		Registered: registered,
		Palette:    derived,
	}, nil
}

// Entry returns the manifest entry for a variant.
func (g *Generator) Entry(name string) manifest.Entry {
	return manifest.Entry{
		ID:      ID(g.family(), name),
		Label:   Label(g.family(), name),
		UITheme: g.uiTheme(),
		Path:    artifact.ThemePath(g.themesDir(), g.family(), name),
	}
}

// ID returns the manifest id of a variant, e.g. "evoke-ice".
func ID(family, name string) string {
	return family + "-" + name
}

// Label returns the display label of a variant, e.g. "Evoke ICE".
func Label(family, name string) string {
	title := family
	if family != "" {
		title = strings.ToUpper(family[:1]) + family[1:]
	}
	return title + " " + strings.ToUpper(name)
}

func (g *Generator) validate() error {
	if len(g.Variants) == 0 {
		return errors.New("no variants selected")
	}
	if g.Writer == nil {
		return errors.New("generator has no artifact writer")
	}
	if err := artifact.ValidateRelative(artifact.ThemePath(g.themesDir(), g.family(), "x")); err != nil {
		return fmt.Errorf("themes directory: %w", err)
	}
	if err := g.Base.Validate(); err != nil {
		return fmt.Errorf("base palette: %w", err)
	}
	return nil
}

func (g *Generator) family() string {
	if g.Family == "" {
		return DefaultFamily
	}
	return g.Family
}

func (g *Generator) displayName() string {
	if g.DisplayName == "" {
		return DefaultDisplayName
	}
	return g.DisplayName
}

func (g *Generator) uiTheme() string {
	if g.UITheme == "" {
		return DefaultUITheme
	}
	return g.UITheme
}

func (g *Generator) themesDir() string {
	if g.ThemesDir == "" {
		return DefaultThemesDir
	}
	return g.ThemesDir
}

func (g *Generator) logger() hclog.Logger {
	if g.Logger == nil {
		return hclog.NewNullLogger()
	}
	return g.Logger
}
