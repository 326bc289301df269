// Package transactions contains the transaction query and edit commands.
package transactions

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"
	"mkeller/ledgerec/internal/reconciler"

	"github.com/spf13/cobra"
)

var (
	filter        string
	category      string
	note          string
	markReconcile bool
	noCacheUpdate bool
)

// Cmd is the transactions command group.
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List and edit transactions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally filtered by reconciliation state",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		list, err := c.Reconciler().List(reconciler.Filter(filter))
		if err != nil {
			return err
		}

		for _, t := range list {
			status := " "
			if t.Reconciled {
				status = "R"
			}
			code := t.CategoryCode
			if code == "" && t.AISuggestedCode != "" {
				code = fmt.Sprintf("%s?(%s)", t.AISuggestedCode, t.AIConfidence)
			}
			fmt.Printf("[%s] %-10s %10s  %-6s %s\n", status, t.Date, t.Amount.StringFixed(2), code, t.Description)
		}
		fmt.Printf("%d transactions\n", len(list))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <transaction-id>",
	Short: "Edit a transaction's category or note",
	Long: `Update applies a partial edit: unset flags leave fields unchanged.
Setting a category learns the merchant mapping unless --no-cache-update is
given. A reconciled transaction cannot be moved back to unreconciled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		upd := reconciler.NewUpdate()
		if cmd.Flags().Changed("category") {
			upd.CategoryCode = &category
		}
		if cmd.Flags().Changed("note") {
			upd.Note = &note
		}
		if cmd.Flags().Changed("reconcile") {
			upd.Reconciled = &markReconcile
		}
		if noCacheUpdate {
			upd.UpdateCache = false
		}

		if err := c.Reconciler().UpdateTransaction(args[0], upd); err != nil {
			return err
		}

		fmt.Printf("Updated transaction %s\n", args[0])
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter: all, unreconciled or reconciled")

	updateCmd.Flags().StringVarP(&category, "category", "c", "", "Category code to assign")
	updateCmd.Flags().StringVarP(&note, "note", "m", "", "Free-text note")
	updateCmd.Flags().BoolVar(&markReconcile, "reconcile", false, "Mark the transaction reconciled")
	updateCmd.Flags().BoolVar(&noCacheUpdate, "no-cache-update", false, "Do not learn the merchant mapping")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
}
