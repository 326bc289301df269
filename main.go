package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mkeller/ledgerec/cmd/categories"
	"mkeller/ledgerec/cmd/clear"
	"mkeller/ledgerec/cmd/ingest"
	"mkeller/ledgerec/cmd/reconcile"
	"mkeller/ledgerec/cmd/report"
	"mkeller/ledgerec/cmd/root"
	"mkeller/ledgerec/cmd/transactions"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables before any logging happens.
	loadEnvSilently()
	configureLogLevel()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(clear.Cmd)
}

// loadEnvSilently loads a .env file without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL so loggers
// created before configuration is loaded honor it.
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
