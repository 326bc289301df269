// Package reconcile contains the reconciliation commands.
package reconcile

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"

	"github.com/spf13/cobra"
)

var all bool

// Cmd is the reconcile command.
var Cmd = &cobra.Command{
	Use:   "reconcile [transaction-id category-code]",
	Short: "Confirm category assignments",
	Long: `Reconcile confirms a transaction's category, marks it reconciled and
teaches the merchant cache the mapping. With --all, every unreconciled
transaction carrying an AI suggestion accepts that suggestion.
Reconciliation is one-way; there is no unreconcile.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		if all {
			if len(args) != 0 {
				return fmt.Errorf("--all takes no arguments")
			}
			count, err := c.Reconciler().ReconcileAll()
			if err != nil {
				return err
			}
			fmt.Printf("Reconciled %d transactions\n", count)
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("expected <transaction-id> <category-code> (or --all)")
		}

		if err := c.Reconciler().Reconcile(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Reconciled transaction %s as %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&all, "all", "a", false, "Accept the AI suggestion for every unreconciled transaction")
}
