package cli

import (
	"fmt"
	"errors"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/spf13/cobra"
)

var errNameRequired = errors.New("a font name is required")

// fontName joins the positional args so unquoted names like Open Sans work.
func fontName(args []string) (string, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return "", errNameRequired
	}
	return name, nil
}

func newURLCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:     "url <font name>",
		Short:   "Print the stylesheet URL for a font",
		Example: `  fonts url Open Sans`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name, err := fontName(args)
			if err != nil {
				return err
			}
			if font.Skipped(name) {
				fmt.Fprintf(out, "# %s is preloaded by the page layout\n", name)
			}
			fmt.Fprintln(out, font.StylesheetURL(base, name))
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", font.GoogleFontsBase, "Fonts CDN base URL")
	return cmd
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sanitize <font name>",
		Short:   "Print the CSS font-family value for a font",
		Example: `  fonts sanitize Playfair Display`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, font.Sanitize(strings.Join(args, " ")))
			return nil
		},
	}
}

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List popular fonts, weight steps and default panels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Popular fonts:")
			for _, name := range font.PopularFonts {
				fmt.Fprintf(out, "  • %s\n", name)
			}
			fmt.Fprintln(out, "\nWeights:")
			for _, w := range font.Weights {
				fmt.Fprintf(out, "  • %s\n", font.WeightLabel(w))
			}
			fmt.Fprintln(out, "\nDefault panels:")
			for _, cfg := range panel.Defaults(len(panel.DefaultFonts)) {
				fmt.Fprintf(out, "  • %s: %s\n", cfg.ID, cfg.Name)
			}
		},
	}
}
