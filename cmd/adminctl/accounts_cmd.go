package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	accountSearch string
	accountRole   string
	accountStatus string
	accountPage   int
	accountData   string
	accountIDs    string
	accountAction string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage marketplace accounts",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListAccounts(ctx, models.AccountFilter{
				Search: accountSearch,
				Role:   accountRole,
				Status: accountStatus,
				Page:   accountPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var accountsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			account, err := c.api.GetAccount(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(account)
		})
	},
}

var accountsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account from JSON input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input models.AccountInput
		if err := decodeInput(accountData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			account, err := c.api.CreateAccount(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(account)
		})
	},
}

var accountsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update from JSON input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var input models.AccountInput
		if err := decodeInput(accountData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			account, err := c.api.UpdateAccount(ctx, id, input)
			if err != nil {
				return err
			}
			return printJSON(account)
		})
	},
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.DeleteAccount(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted account %d\n", id)
			return nil
		})
	},
}

var accountsBulkCmd = &cobra.Command{
	Use:   "bulk-action",
	Short: "Apply one action to a set of accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(accountIDs)
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.BulkAccountAction(ctx, models.BulkActionRequest{
				IDs:    ids,
				Action: accountAction,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

var accountsToggleCmd = &cobra.Command{
	Use:   "toggle-active <id>",
	Short: "Flip an account's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			account, err := c.api.ToggleAccountActive(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(account)
		})
	},
}

func init() {
	accountsListCmd.Flags().StringVar(&accountSearch, "search", "", "Match username and email")
	accountsListCmd.Flags().StringVar(&accountRole, "role", "", "Restrict to one role")
	accountsListCmd.Flags().StringVar(&accountStatus, "status", "", "active or inactive")
	accountsListCmd.Flags().IntVar(&accountPage, "page", 0, "Result page number")

	accountsCreateCmd.Flags().StringVar(&accountData, "data", "", "JSON input, @file, or - for stdin")
	_ = accountsCreateCmd.MarkFlagRequired("data")
	accountsUpdateCmd.Flags().StringVar(&accountData, "data", "", "JSON input, @file, or - for stdin")
	_ = accountsUpdateCmd.MarkFlagRequired("data")

	accountsBulkCmd.Flags().StringVar(&accountIDs, "ids", "", "Comma-separated account ids")
	accountsBulkCmd.Flags().StringVar(&accountAction, "action", "", "Action label (e.g. activate, deactivate, delete)")
	_ = accountsBulkCmd.MarkFlagRequired("ids")
	_ = accountsBulkCmd.MarkFlagRequired("action")

	accountsCmd.AddCommand(accountsListCmd, accountsGetCmd, accountsCreateCmd,
		accountsUpdateCmd, accountsDeleteCmd, accountsBulkCmd, accountsToggleCmd)
	rootCmd.AddCommand(accountsCmd)
}
