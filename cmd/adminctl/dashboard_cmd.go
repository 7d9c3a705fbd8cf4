package main

import (
	"context"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin panel dashboard aggregates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			summary, err := c.api.DashboardSummary(ctx)
			if err != nil {
				return err
			}
			return printJSON(summary)
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
