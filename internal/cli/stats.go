package cli

import (
	"fmt"
	"os"

	"github.com/joeblew999/plat-fonts/internal/model"
	"github.com/joeblew999/plat-fonts/pkg/config"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		path   string
		site   string
		recent int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stored analytics event counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			// db.Open would create an empty database
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("analytics database: %w", err)
			}

			database, err := db.Open(path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer database.Close()

			ctx := cmd.Context()
			events := model.NewAnalyticsEventsModel(database.SqlConn())

			counts, err := events.CountByType(ctx, site)
			if err != nil {
				return err
			}

			var total int64
			fmt.Fprintln(out, "Events by type:")
			for _, c := range counts {
				fmt.Fprintf(out, "  • %-22s %d\n", c.EventType, c.Count)
				total += c.Count
			}
			fmt.Fprintf(out, "  %-24s %d\n", "total", total)

			if recent <= 0 {
				return nil
			}
			list, err := events.ListRecent(ctx, site, recent)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nRecent:")
			for _, e := range list {
				fmt.Fprintf(out, "  • %s %s %s\n", e.CreatedAt, e.EventType, e.Payload.String)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "db", config.GetDatabasePath(), "Analytics database path")
	cmd.Flags().StringVar(&site, "site", "", "Site id filter (default: all sites)")
	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent events to show")
	return cmd
}
