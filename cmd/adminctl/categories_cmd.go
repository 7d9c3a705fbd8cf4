package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	categorySearch string
	categoryStatus string
	categoryPage   int
	categoryData   string
	categoryIDs    string
	categoryAction string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage listing categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListCategories(ctx, models.CategoryFilter{
				Search: categorySearch,
				Status: categoryStatus,
				Page:   categoryPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			category, err := c.api.GetCategory(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(category)
		})
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category from JSON input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input models.CategoryInput
		if err := decodeInput(categoryData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			category, err := c.api.CreateCategory(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(category)
		})
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Apply a partial update from JSON input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var input models.CategoryInput
		if err := decodeInput(categoryData, &input); err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			category, err := c.api.UpdateCategory(ctx, id, input)
			if err != nil {
				return err
			}
			return printJSON(category)
		})
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.DeleteCategory(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted category %d\n", id)
			return nil
		})
	},
}

var categoriesBulkCmd = &cobra.Command{
	Use:   "bulk-action",
	Short: "Apply one action to a set of categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(categoryIDs)
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			result, err := c.api.BulkCategoryAction(ctx, models.BulkActionRequest{
				IDs:    ids,
				Action: categoryAction,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		})
	},
}

var categoriesToggleCmd = &cobra.Command{
	Use:   "toggle-active <id>",
	Short: "Flip a category's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			category, err := c.api.ToggleCategoryActive(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(category)
		})
	},
}

func init() {
	categoriesListCmd.Flags().StringVar(&categorySearch, "search", "", "Match name and description")
	categoriesListCmd.Flags().StringVar(&categoryStatus, "status", "", "active or inactive")
	categoriesListCmd.Flags().IntVar(&categoryPage, "page", 0, "Result page number")

	categoriesCreateCmd.Flags().StringVar(&categoryData, "data", "", "JSON input, @file, or - for stdin")
	_ = categoriesCreateCmd.MarkFlagRequired("data")
	categoriesUpdateCmd.Flags().StringVar(&categoryData, "data", "", "JSON input, @file, or - for stdin")
	_ = categoriesUpdateCmd.MarkFlagRequired("data")

	categoriesBulkCmd.Flags().StringVar(&categoryIDs, "ids", "", "Comma-separated category ids")
	categoriesBulkCmd.Flags().StringVar(&categoryAction, "action", "", "Action label (e.g. activate, deactivate, delete)")
	_ = categoriesBulkCmd.MarkFlagRequired("ids")
	_ = categoriesBulkCmd.MarkFlagRequired("action")

	categoriesCmd.AddCommand(categoriesListCmd, categoriesGetCmd, categoriesCreateCmd,
		categoriesUpdateCmd, categoriesDeleteCmd, categoriesBulkCmd, categoriesToggleCmd)
	rootCmd.AddCommand(categoriesCmd)
}
