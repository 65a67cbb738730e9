package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a fixed demonstration sequence on the inventory" }
func (*demoCmd) Usage() string {
	return `inv demo

  Loads the inventory, performs a fixed sequence of add and remove calls,
  including deliberately invalid ones to exercise validation, prints the
  apple stock and the low items, saves, reloads, and displays the report.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := inventory.NewLedger(appLogger())

	// Every failure below is logged and safely absorbed; the demo never stops.
	ledger.Load(ledgerPath())

	ledger.Add("apple", 10)
	ledger.Add("banana", 2)
	ledger.Add("default", 5) // rejected, reserved item name
	ledger.Add("", 3)        // rejected, empty item name
	ledger.Remove("apple", 3)
	ledger.Remove("orange", 1) // rejected, not in stock

	fmt.Printf("Apple stock: %s\n", ledger.Quantity("apple"))
	fmt.Printf("Low items: %v\n", ledger.LowStock(inventory.DefaultLowThreshold))

	ledger.Save(ledgerPath())
	ledger.Load(ledgerPath())

	printMarkdown(renderer.ReportMarkdown(ledger))
	return subcommands.ExitSuccess
}
