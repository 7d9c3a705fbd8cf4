package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	procurementSearch   string
	procurementStatus   string
	procurementCategory int64
	procurementPage     int
	procurementData     string
	procurementIDs      string
	procurementAction   string
)

var procurementsCmd = &cobra.Command{
	Use:   "procurements",
	Short: "Manage procurement listings",
}

var procurementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List listings matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListProcurements(ctx, models.ProcurementFilter{
				Search:   procurementSearch,
				Status:   procurementStatus,
				Category: procurementCategory,
				Page:     procurementPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var procurementsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			listing, err := c.api.GetProcurement(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(listing)
		})
	},
}

var procurementsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a listing from JSON input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input models.ProcurementInput
		if err := decodeInput(procurementData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			listing, err := c.api.CreateProcurement(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(listing)
		})
	},
}

var procurementsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update from JSON input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var input models.ProcurementInput
		if err := decodeInput(procurementData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			listing, err := c.api.UpdateProcurement(ctx, id, input)
			if err != nil {
				return err
			}
			return printJSON(listing)
		})
	},
}

var procurementsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.DeleteProcurement(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted procurement %d\n", id)
			return nil
		})
	},
}

var procurementsBulkCmd = &cobra.Command{
	Use:   "bulk-action",
	Short: "Apply one action to a set of listings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(procurementIDs)
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.BulkProcurementAction(ctx, models.BulkActionRequest{
				IDs:    ids,
				Action: procurementAction,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

var procurementsToggleCmd = &cobra.Command{
	Use:   "toggle-featured <id>",
	Short: "Flip a listing's featured flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			listing, err := c.api.ToggleProcurementFeatured(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(listing)
		})
	},
}

func init() {
	procurementsListCmd.Flags().StringVar(&procurementSearch, "search", "", "Match title and description")
	procurementsListCmd.Flags().StringVar(&procurementStatus, "status", "", "Restrict to one lifecycle state")
	procurementsListCmd.Flags().Int64Var(&procurementCategory, "category", 0, "Restrict to one category id")
	procurementsListCmd.Flags().IntVar(&procurementPage, "page", 0, "Result page number")

	procurementsCreateCmd.Flags().StringVar(&procurementData, "data", "", "JSON input, @file, or - for stdin")
	_ = procurementsCreateCmd.MarkFlagRequired("data")
	procurementsUpdateCmd.Flags().StringVar(&procurementData, "data", "", "JSON input, @file, or - for stdin")
	_ = procurementsUpdateCmd.MarkFlagRequired("data")

	procurementsBulkCmd.Flags().StringVar(&procurementIDs, "ids", "", "Comma-separated listing ids")
	procurementsBulkCmd.Flags().StringVar(&procurementAction, "action", "", "Action label (e.g. publish, archive, delete)")
	_ = procurementsBulkCmd.MarkFlagRequired("ids")
	_ = procurementsBulkCmd.MarkFlagRequired("action")

	procurementsCmd.AddCommand(procurementsListCmd, procurementsGetCmd, procurementsCreateCmd,
		procurementsUpdateCmd, procurementsDeleteCmd, procurementsBulkCmd, procurementsToggleCmd)
	rootCmd.AddCommand(procurementsCmd)
}
