// Package cli implements the fonts command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is reported by the version command and --version.
var Version = "v0.1.0"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fonts",
		Short: "Google Fonts comparison helpers",
		Long: `fonts builds Google Fonts stylesheet URLs and CSS font-family values,
asks the recommendation service about a font and reports the analytics
events stored by the plat-fonts server.

Environment variables:
  DATA_PATH           Base data directory (default: ./.data)
  DATABASE_PATH       Analytics database (default: $DATA_PATH/plat-fonts.db)
  RECOMMEND_ENDPOINT  Recommendation service URL`,
		Version:      Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "fonts %s\n" .Version}}`)

	root.AddCommand(
		newURLCmd(),
		newSanitizeCmd(),
		newFontsCmd(),
		newRecommendCmd(),
		newStatsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fonts %s\n", Version)
		},
	}
}
