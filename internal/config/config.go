// Package config loads generator settings from defaults, an optional config
// file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/evoke/internal/colour"
)

// Name is the config file base name searched for in the working directory.
const Name = "evoke"

// Keys shared by the config file and the command-line flags.
const (
	KeyFamily      = "family"
	KeyDisplayName = "display-name"
	KeyUITheme     = "ui-theme"
	KeyRoot        = "root"
	KeyManifest    = "manifest"
	KeyThemesDir   = "themes-dir"
	KeyVariants    = "variants"
	KeyConcurrency = "concurrency"
	KeyBackup      = "backup"
	KeyDryRun      = "dry-run"
	KeyPalette     = "palette"
)

// Config holds resolved settings.
type Config struct {
	Family      string
	DisplayName string
	UITheme     string
	Root        string
	Manifest    string
	ThemesDir   string
	Variants    []string
	Concurrency int
	Backup      bool
	DryRun      bool

	// Palette holds per-role hex overrides of the built-in base palette.
	Palette map[colour.Role]string

	// File is the config file that was read, empty if none.
	File string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFamily, "evoke")
	v.SetDefault(KeyDisplayName, "Evoke OLED")
	v.SetDefault(KeyUITheme, "vs-dark")
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyManifest, "package.json")
	v.SetDefault(KeyThemesDir, "themes")
	v.SetDefault(KeyVariants, []string{"all"})
	v.SetDefault(KeyConcurrency, 0)
	v.SetDefault(KeyBackup, false)
	v.SetDefault(KeyDryRun, false)
}

// Load resolves the configuration. When path is empty an "evoke.{yaml,json,toml}"
// in the working directory is used if present. Flags that were set on the
// command line override file values; a nil flag set is allowed.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	palette, err := parsePalette(v.GetStringMapString(KeyPalette))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Family:      v.GetString(KeyFamily),
		DisplayName: v.GetString(KeyDisplayName),
		UITheme:     v.GetString(KeyUITheme),
		Root:        v.GetString(KeyRoot),
		Manifest:    v.GetString(KeyManifest),
		ThemesDir:   v.GetString(KeyThemesDir),
		Variants:    v.GetStringSlice(KeyVariants),
		Concurrency: v.GetInt(KeyConcurrency),
		Backup:      v.GetBool(KeyBackup),
		DryRun:      v.GetBool(KeyDryRun),
		Palette:     palette,
		File:        v.ConfigFileUsed(),
	}

	if cfg.Family == "" {
		return nil, errors.New("family must not be empty")
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}
	return cfg, nil
}

// bindFlags binds the flags that name a config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{
		KeyFamily, KeyDisplayName, KeyUITheme, KeyRoot, KeyManifest, KeyThemesDir,
		KeyVariants, KeyConcurrency, KeyBackup, KeyDryRun,
	} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// parsePalette resolves role names. Viper lower-cases map keys, so roles are
// matched case-insensitively.
func parsePalette(raw map[string]string) (map[colour.Role]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[colour.Role]string, len(raw))
	for name, hex := range raw {
		role, err := colour.LookupRole(name)
		if err != nil {
			return nil, fmt.Errorf("palette override: %w", err)
		}
		if _, err := colour.ParseRGBA(hex); err != nil {
			return nil, fmt.Errorf("palette override %s: %w", role, err)
		}
		out[role] = strings.TrimSpace(hex)
	}
	return out, nil
}

// BasePalette returns the built-in palette with the configured overrides
// applied.
func (c *Config) BasePalette() (colour.Palette, error) {
	p := colour.DefaultPalette()
	for role, hex := range c.Palette {
		p[role] = hex
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
