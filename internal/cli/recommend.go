package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:     "recommend <font name>",
		Short:   "Ask the recommendation service about a font",
		Example: `  fonts recommend Lato --endpoint=http://localhost:3400/recommend`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name, err := fontName(args)
			if err != nil {
				return err
			}

			rec := recommend.New(recommend.Config{Endpoint: endpoint, Timeout: timeout})
			resp, err := rec.Recommend(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, resp.Recommendation)
			return nil
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", os.Getenv("RECOMMEND_ENDPOINT"), "Recommendation service URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	return cmd
}
