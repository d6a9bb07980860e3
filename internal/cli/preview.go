package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/evoke/internal/colour"
	"github.com/jmylchreest/evoke/internal/variant"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available theme variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"NAME", "DESCRIPTION"})
			table.SetColumnMaxWidth(1, 60)
			for _, v := range variant.All() {
				table.AddRow([]string{v.Name, v.Description})
			}
			_, err := io.WriteString(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}

func newPreviewCmd(opts *globalOptions) *cobra.Command {
	var noSwatch bool

	cmd := &cobra.Command{
		Use:   "preview <variant>",
		Short: "Print the derived palette of a variant",
		Long: `Print every role of the palette a variant derives from the base palette.

Colour swatches are drawn when stdout is a terminal that supports 24-bit
colour. Use --no-swatch for plain output.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeVariants,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variant.Lookup(args[0])
			if err != nil {
				return err
			}

			logger := opts.logger(cmd)
			cfg, err := opts.loadConfig(cmd, logger)
			if err != nil {
				return err
			}
			base, err := cfg.BasePalette()
			if err != nil {
				return fmt.Errorf("invalid base palette: %w", err)
			}

			derived, err := colour.Process(base, v.Transform)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", v.Name, v.Description)
			_, err = io.WriteString(out, colour.PaletteString(derived, !noSwatch && isTerminal(out)))
			return err
		},
	}

	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "disable colour swatches")
	return cmd
}

func completeVariants(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return variant.Names(), cobra.ShellCompDirectiveNoFileComp
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
