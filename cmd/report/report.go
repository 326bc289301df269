// Package report contains the category spend reporting command.
package report

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"
	"mkeller/ledgerec/internal/reconciler"
	"mkeller/ledgerec/internal/report"

	"github.com/spf13/cobra"
)

var (
	kind       string
	output     string
	exportFile string
)

// Cmd is the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate reconciled spend by category",
	Long: `Report groups reconciled transactions by category and prints totals in
descending order. Kind selects expenses (amount < 0), income (amount > 0)
or all. Category codes no longer in the catalog show as "Unknown".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		transactions, err := c.Store().LoadTransactions()
		if err != nil {
			return err
		}
		categories, err := c.Store().LoadCategories()
		if err != nil {
			return err
		}

		summaries, err := c.Aggregator().Aggregate(transactions, categories, report.Kind(kind))
		if err != nil {
			return err
		}

		for _, s := range summaries {
			fmt.Printf("%-6s %-24s %10s  (%d transactions)\n",
				s.Code, s.Name, s.Total.StringFixed(2), len(s.Transactions))
		}

		if output != "" {
			if err := report.WriteSummaryCSV(summaries, output, c.Logger()); err != nil {
				return err
			}
			fmt.Printf("Summary written to %s\n", output)
		}

		if exportFile != "" {
			reconciled, err := c.Reconciler().List(reconciler.FilterReconciled)
			if err != nil {
				return err
			}
			if err := report.WriteTransactionsCSV(reconciled, exportFile, c.Logger()); err != nil {
				return err
			}
			fmt.Printf("Transactions written to %s\n", exportFile)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&kind, "kind", "k", "expenses", "Aggregation kind: expenses, income or all")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the category summary to a CSV file")
	Cmd.Flags().StringVar(&exportFile, "export-transactions", "", "Write reconciled transactions to a CSV file")
}
