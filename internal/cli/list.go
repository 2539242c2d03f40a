// ABOUTME: List command for displaying logged days
// ABOUTME: Renders a table of daily logs with record counts and time spans
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/harper/worklog/internal/worklog"
)

func (a *app) listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := worklog.Days(a.cfg.Directory, time.Local)
			if err != nil {
				return fmt.Errorf("failed to list days: %w", err)
			}
			if len(days) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No work logged yet.")
				return nil
			}
			if limit > 0 && len(days) > limit {
				days = days[:limit]
			}

			summaries := make([]worklog.DaySummary, 0, len(days))
			for _, day := range days {
				sum, err := day.Summarize()
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", day.Path, err)
				}
				summaries = append(summaries, sum)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderDays(summaries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 14, "Number of days to show (0 for all)")
	return cmd
}

func renderDays(summaries []worklog.DaySummary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Day", "Week", "Records", "First", "Last", "State"})

	for _, sum := range summaries {
		first, last := "-", "-"
		if sum.Records > 0 {
			first = sum.First.Format("15:04:05")
			last = sum.Last.Format("15:04:05")
		}
		state := "open"
		if sum.Finished {
			state = "finished"
		}
		tw.AppendRow(table.Row{
			sum.Date.Format("2006-01-02 Mon"),
			fmt.Sprintf("%02d", worklog.WeekOfYear(sum.Date)),
			strconv.Itoa(sum.Records),
			first,
			last,
			state,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
