// ABOUTME: Search command for querying past records
// ABOUTME: Supports text search, marker filter, and date ranges
package cli

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/harper/worklog/internal/worklog"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		searchSince  string
		searchUntil  string
		searchMarker string
		searchLimit  int
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search records across days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := worklog.Filter{}
			if len(args) > 0 {
				filter.Text = args[0]
			}

			if searchMarker != "" {
				m, ok := worklog.ParseMarker(searchMarker)
				if !ok {
					return fmt.Errorf("invalid --marker %q: use start, continue or finish", searchMarker)
				}
				filter.Marker = m
			}

			// Parse dates
			if searchSince != "" {
				since, err := dateparse.ParseIn(searchSince, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --since date: %w", err)
				}
				filter.Since = &since
			}

			if searchUntil != "" {
				until, err := dateparse.ParseIn(searchUntil, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --until date: %w", err)
				}
				filter.Until = &until
			}

			matches, err := worklog.Search(a.cfg.Directory, time.Local, filter, searchLimit)
			if err != nil {
				return fmt.Errorf("failed to search records: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No matching records.")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintln(out, m.Record.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&searchSince, "since", "", "Start date (any common date format)")
	cmd.Flags().StringVar(&searchUntil, "until", "", "End date (any common date format)")
	cmd.Flags().StringVarP(&searchMarker, "marker", "m", "", "Only records of this kind: start, continue or finish")
	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 100, "Maximum results")
	return cmd
}
