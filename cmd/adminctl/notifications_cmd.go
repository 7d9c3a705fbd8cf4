package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	notificationStatus string
	notificationPage   int
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read admin notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListNotifications(ctx, models.NotificationFilter{
				Status: notificationStatus,
				Page:   notificationPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var notificationsMarkReadCmd = &cobra.Command{
	Use:   "mark-read <id>",
	Short: "Mark one notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			notification, err := c.api.MarkNotificationRead(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(notification)
		})
	},
}

var notificationsMarkAllReadCmd = &cobra.Command{
	Use:   "mark-all-read",
	Short: "Mark every unread notification as read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.MarkAllNotificationsRead(ctx)
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

func init() {
	notificationsListCmd.Flags().StringVar(&notificationStatus, "status", "", "read or unread")
	notificationsListCmd.Flags().IntVar(&notificationPage, "page", 0, "Result page number")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsMarkReadCmd, notificationsMarkAllReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
