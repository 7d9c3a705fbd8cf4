package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	transactionSearch string
	transactionType   string
	transactionStatus string
	transactionPage   int
	transactionData   string
	transactionIDs    string
	transactionAction string
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Manage ledger transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListTransactions(ctx, models.TransactionFilter{
				Search: transactionSearch,
				Type:   transactionType,
				Status: transactionStatus,
				Page:   transactionPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var transactionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one ledger entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			entry, err := c.api.GetTransaction(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(entry)
		})
	},
}

var transactionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a manual ledger correction from JSON input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input models.TransactionInput
		if err := decodeInput(transactionData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			entry, err := c.api.CreateTransaction(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(entry)
		})
	},
}

var transactionsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update from JSON input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var input models.TransactionInput
		if err := decodeInput(transactionData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			entry, err := c.api.UpdateTransaction(ctx, id, input)
			if err != nil {
				return err
			}
			return printJSON(entry)
		})
	},
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a ledger entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.DeleteTransaction(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted transaction %d\n", id)
			return nil
		})
	},
}

var transactionsBulkCmd = &cobra.Command{
	Use:   "bulk-action",
	Short: "Apply one action to a set of ledger entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(transactionIDs)
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.BulkTransactionAction(ctx, models.BulkActionRequest{
				IDs:    ids,
				Action: transactionAction,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

func init() {
	transactionsListCmd.Flags().StringVar(&transactionSearch, "search", "", "Match account and reference")
	transactionsListCmd.Flags().StringVar(&transactionType, "type", "", "Restrict to one entry type")
	transactionsListCmd.Flags().StringVar(&transactionStatus, "status", "", "Restrict to one entry status")
	transactionsListCmd.Flags().IntVar(&transactionPage, "page", 0, "Result page number")

	transactionsCreateCmd.Flags().StringVar(&transactionData, "data", "", "JSON input, @file, or - for stdin")
	_ = transactionsCreateCmd.MarkFlagRequired("data")
	transactionsUpdateCmd.Flags().StringVar(&transactionData, "data", "", "JSON input, @file, or - for stdin")
	_ = transactionsUpdateCmd.MarkFlagRequired("data")

	transactionsBulkCmd.Flags().StringVar(&transactionIDs, "ids", "", "Comma-separated entry ids")
	transactionsBulkCmd.Flags().StringVar(&transactionAction, "action", "", "Action label (e.g. complete, cancel, delete)")
	_ = transactionsBulkCmd.MarkFlagRequired("ids")
	_ = transactionsBulkCmd.MarkFlagRequired("action")

	transactionsCmd.AddCommand(transactionsListCmd, transactionsGetCmd, transactionsCreateCmd,
		transactionsUpdateCmd, transactionsDeleteCmd, transactionsBulkCmd)
	rootCmd.AddCommand(transactionsCmd)
}
