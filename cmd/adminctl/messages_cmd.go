package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	messageSearch string
	messageStatus string
	messagePage   int
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read support messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List support messages matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListMessages(ctx, models.MessageFilter{
				Search: messageSearch,
				Status: messageStatus,
				Page:   messagePage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var messagesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one support message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			msg, err := c.api.GetMessage(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(msg)
		})
	},
}

var messagesMarkReadCmd = &cobra.Command{
	Use:   "mark-read <id>",
	Short: "Mark a support message as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			msg, err := c.api.MarkMessageRead(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(msg)
		})
	},
}

func init() {
	messagesListCmd.Flags().StringVar(&messageSearch, "search", "", "Match sender and subject")
	messagesListCmd.Flags().StringVar(&messageStatus, "status", "", "read or unread")
	messagesListCmd.Flags().IntVar(&messagePage, "page", 0, "Result page number")

	messagesCmd.AddCommand(messagesListCmd, messagesGetCmd, messagesMarkReadCmd)
	rootCmd.AddCommand(messagesCmd)
}
