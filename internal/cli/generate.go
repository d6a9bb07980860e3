package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/evoke/internal/artifact"
	"github.com/jmylchreest/evoke/internal/config"
	"github.com/jmylchreest/evoke/internal/generator"
	"github.com/jmylchreest/evoke/internal/manifest"
	"github.com/jmylchreest/evoke/internal/variant"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and register every theme variant",
		Long: `Generate one theme document per variant from the base palette, write it
under the themes directory and register it in the extension manifest.

Registration is idempotent: a theme whose label or id is already listed in
the manifest is left alone, so running generate twice changes nothing.

Examples:
  # Regenerate the whole family in the current project
  evoke generate

  # Only two variants, into another project
  evoke generate --root ../my-extension --variants ice,pop

  # Show what would be written
  evoke generate --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().String(config.KeyRoot, ".", "project root containing the manifest")
	cmd.Flags().String(config.KeyManifest, "package.json", "manifest path, relative to the root")
	cmd.Flags().String(config.KeyThemesDir, "themes", "theme output directory, relative to the root")
	cmd.Flags().StringSlice(config.KeyVariants, []string{"all"}, "variants to generate (comma-separated or 'all')")
	cmd.Flags().Int(config.KeyConcurrency, 0, "variants generated in parallel (0 = all)")
	cmd.Flags().Bool(config.KeyDryRun, false, "report targets without writing files")
	cmd.Flags().Bool(config.KeyBackup, false, "keep a .backup copy of overwritten themes")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions) error {
	logger := opts.logger(cmd)

	cfg, err := opts.loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	base, err := cfg.BasePalette()
	if err != nil {
		return fmt.Errorf("invalid base palette: %w", err)
	}

	variants, err := variant.Select(cfg.Variants)
	if err != nil {
		return err
	}

	writer := &artifact.Writer{Root: cfg.Root, Backup: cfg.Backup, DryRun: cfg.DryRun}
	manifestPath, err := writer.Resolve(cfg.Manifest)
	if err != nil {
		return err
	}

	registrar := manifest.NewRegistrar(manifestPath, logger.Named("manifest"))
	registrar.DryRun = cfg.DryRun

	gen := &generator.Generator{
		Family:      cfg.Family,
		DisplayName: cfg.DisplayName,
		UITheme:     cfg.UITheme,
		ThemesDir:   cfg.ThemesDir,
		Base:        base,
		Variants:    variants,
		Writer:      writer,
		Registrar:   registrar,
		Logger:      logger.Named("generator"),
		Concurrency: cfg.Concurrency,
	}

	logger.Debug("generating themes", "variants", strings.Join(variantNames(variants), ","), "root", cfg.Root)

	results, err := gen.Run(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ Generation failed: %v\n", err)
		return err
	}

	if opts.quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	prefix := ""
	if cfg.DryRun {
		prefix = "[dry-run] "
	}

	registered := 0
	for _, r := range results {
		fmt.Fprintf(out, "%s✓ %s: %s (%d bytes)\n", prefix, generator.Label(gen.Family, r.Variant), r.Path, r.Bytes)
		if r.Registered {
			registered++
			fmt.Fprintf(out, "  └─ registered in %s\n", cfg.Manifest)
		} else {
			fmt.Fprintf(out, "  └─ already registered\n")
		}
	}

	fmt.Fprintf(out, "\n%s✓ Done! Generated %d theme(s), registered %d new\n", prefix, len(results), registered)
	return nil
}

func variantNames(vs []variant.Variant) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}
