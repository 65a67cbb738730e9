// Package cmd implements the CLI application to manage an inventory file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/logging"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "stock")
	c.Register(&removeCmd{}, "stock")
	c.Register(&qtyCmd{}, "stock")

	c.Register(&lowCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&demoCmd{}, "")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("file", "", "Path to the inventory JSON file (overrides the configuration file)")
var configFile = flag.String("config", "", "Path to the YAML configuration file")

var (
	appCfg *Config
	appLog logging.Logger
)

// appConfig loads the configuration file once; without -config the defaults apply.
func appConfig() (*Config, error) {
	if appCfg != nil {
		return appCfg, nil
	}
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	appCfg = cfg
	return appCfg, nil
}

// appLogger builds the process logger from the configured level.
func appLogger() logging.Logger {
	if appLog != nil {
		return appLog
	}
	cfg, err := appConfig()
	if err != nil {
		// The config error is reported by the command itself; logging must still work.
		appLog, _ = logging.New("info")
		return appLog
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		appLog, _ = logging.New("info")
		return appLog
	}
	appLog = logger
	return appLog
}

// ledgerPath resolves the stock file path: flag, then config, then default.
func ledgerPath() string {
	if *inventoryFile != "" {
		return *inventoryFile
	}
	if cfg, err := appConfig(); err == nil && cfg.File != "" {
		return cfg.File
	}
	return inventory.DefaultFile
}

// openLedger creates the ledger and loads the stock file into it. Load
// failures are logged and leave an empty ledger, per the loading contract, so
// there is nothing to propagate.
func openLedger() *inventory.Ledger {
	if _, err := appConfig(); err != nil {
		// Continue with the defaults, but say so.
		fmt.Fprintln(os.Stderr, err)
	}
	ledger := inventory.NewLedger(appLogger())
	ledger.Load(ledgerPath())
	return ledger
}

// saveLedger persists the ledger back to the stock file.
func saveLedger(ledger *inventory.Ledger) subcommands.ExitStatus {
	if err := ledger.Save(ledgerPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
