// Package ingest contains the statement import command.
package ingest

import (
	"fmt"

	"mkeller/ledgerec/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the import command.
var Cmd = &cobra.Command{
	Use:   "import <statement.csv>",
	Short: "Import a bank-statement CSV and categorize new transactions",
	Long: `Import reads a statement CSV (rows of "DD/MM/YYYY, amount, description"),
deduplicates rows already imported, and runs new transactions through the
merchant cache and the AI classifier. Classifier failures never abort the
import; affected transactions fall back to the default category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.BuildContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		result, err := c.Importer().ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d new transactions (%d rows skipped, %d total)\n",
			result.Imported, result.Skipped, result.Total)
		return nil
	},
}
