// Package root contains the root command for the application.
package root

import (
	"context"
	"fmt"

	"mkeller/ledgerec/internal/config"
	"mkeller/ledgerec/internal/container"
	"mkeller/ledgerec/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "ledgerec",
	Short: "Import, categorize and reconcile bank-statement transactions.",
	Long: `ledgerec imports bank-statement CSV files, assigns each transaction a
spending category (learned merchant cache first, AI classification as
fallback), supports a reconciliation workflow, and reports per-category
spend totals.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
	SilenceUsage: true,
}

// BuildContainer loads configuration and wires the application container.
// Shared by every subcommand.
func BuildContainer(ctx context.Context) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logging.SetDefaultLogger(c.Logger())
	return c, nil
}
