// Package categories contains the category catalog commands.
package categories

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"
	"mkeller/ledgerec/internal/catalog"
	"mkeller/ledgerec/internal/models"

	"github.com/spf13/cobra"
)

var (
	name         string
	budgetType   string
	categoryType string
)

// Cmd is the categories command group.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category catalog",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		categories, err := c.Catalog().List()
		if err != nil {
			return err
		}

		for _, cat := range categories {
			fmt.Printf("%-6s %-24s %-10s %s\n", cat.Code, cat.Name, cat.Type, cat.CategoryType)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add a category (duplicate codes are rejected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		err = c.Catalog().Create(models.Category{
			Code:         args[0],
			Name:         name,
			Type:         budgetType,
			CategoryType: categoryType,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created category %s\n", args[0])
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update a category's name or types (unset flags leave fields unchanged)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		var upd catalog.Update
		if cmd.Flags().Changed("name") {
			upd.Name = &name
		}
		if cmd.Flags().Changed("type") {
			upd.Type = &budgetType
		}
		if cmd.Flags().Changed("category-type") {
			upd.CategoryType = &categoryType
		}

		if err := c.Catalog().UpdateByCode(args[0], upd); err != nil {
			return err
		}

		fmt.Printf("Updated category %s\n", args[0])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a category (assigned transactions keep the code)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		if err := c.Catalog().Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Category name")
	addCmd.Flags().StringVarP(&budgetType, "type", "t", "", "Budgeting type (fixed or variable)")
	addCmd.Flags().StringVar(&categoryType, "category-type", "", "Expense or Income")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringVarP(&name, "name", "n", "", "Category name")
	updateCmd.Flags().StringVarP(&budgetType, "type", "t", "", "Budgeting type (fixed or variable)")
	updateCmd.Flags().StringVar(&categoryType, "category-type", "", "Expense or Income")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
