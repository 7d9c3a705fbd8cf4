package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	paymentSearch string
	paymentStatus string
	paymentMethod string
	paymentPage   int
	paymentData   string
	paymentIDs    string
	paymentAction string
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage payment records",
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListPayments(ctx, models.PaymentFilter{
				Search: paymentSearch,
				Status: paymentStatus,
				Method: paymentMethod,
				Page:   paymentPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var paymentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			payment, err := c.api.GetPayment(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(payment)
		})
	},
}

var paymentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a payment from JSON input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input models.PaymentInput
		if err := decodeInput(paymentData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			payment, err := c.api.CreatePayment(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(payment)
		})
	},
}

var paymentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update from JSON input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var input models.PaymentInput
		if err := decodeInput(paymentData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			payment, err := c.api.UpdatePayment(ctx, id, input)
			if err != nil {
				return err
			}
			return printJSON(payment)
		})
	},
}

var paymentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payment record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.DeletePayment(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted payment %d\n", id)
			return nil
		})
	},
}

var paymentsBulkCmd = &cobra.Command{
	Use:   "bulk-action",
	Short: "Apply one action to a set of payments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(paymentIDs)
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.BulkPaymentAction(ctx, models.BulkActionRequest{
				IDs:    ids,
				Action: paymentAction,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

func init() {
	paymentsListCmd.Flags().StringVar(&paymentSearch, "search", "", "Match payer and reference")
	paymentsListCmd.Flags().StringVar(&paymentStatus, "status", "", "Restrict to one payment status")
	paymentsListCmd.Flags().StringVar(&paymentMethod, "method", "", "Restrict to one payment method")
	paymentsListCmd.Flags().IntVar(&paymentPage, "page", 0, "Result page number")

	paymentsCreateCmd.Flags().StringVar(&paymentData, "data", "", "JSON input, @file, or - for stdin")
	_ = paymentsCreateCmd.MarkFlagRequired("data")
	paymentsUpdateCmd.Flags().StringVar(&paymentData, "data", "", "JSON input, @file, or - for stdin")
	_ = paymentsUpdateCmd.MarkFlagRequired("data")

	paymentsBulkCmd.Flags().StringVar(&paymentIDs, "ids", "", "Comma-separated payment ids")
	paymentsBulkCmd.Flags().StringVar(&paymentAction, "action", "", "Action label (e.g. confirm, refund, delete)")
	_ = paymentsBulkCmd.MarkFlagRequired("ids")
	_ = paymentsBulkCmd.MarkFlagRequired("action")

	paymentsCmd.AddCommand(paymentsListCmd, paymentsGetCmd, paymentsCreateCmd,
		paymentsUpdateCmd, paymentsDeleteCmd, paymentsBulkCmd)
	rootCmd.AddCommand(paymentsCmd)
}
