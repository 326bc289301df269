// Package clear contains the data reset commands.
package clear

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"

	"github.com/spf13/cobra"
)

var (
	transactions bool
	all          bool
)

// Cmd is the clear command.
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete stored transactions",
	Long: `Clear deletes stored data. With --transactions only the transaction log
is removed; the merchant cache keeps its learned mappings. With --all the
merchant cache is wiped too. The category catalog is never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if transactions == all {
			return fmt.Errorf("specify exactly one of --transactions or --all")
		}

		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		if all {
			if err := c.Reconciler().ClearAllData(); err != nil {
				return err
			}
			fmt.Println("Cleared transactions and merchant cache")
			return nil
		}

		if err := c.Reconciler().ClearTransactions(); err != nil {
			return err
		}
		fmt.Println("Cleared transactions")
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&transactions, "transactions", "t", false, "Delete transactions only")
	Cmd.Flags().BoolVarP(&all, "all", "a", false, "Delete transactions and the merchant cache")
}
