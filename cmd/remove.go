package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a quantity of an item from the stock" }
func (*removeCmd) Usage() string {
	return `inv remove <item> <quantity>

  Subtracts <quantity> from the stored quantity for <item>. If the resulting
  quantity is zero or less, the item is removed from the stock entirely.

Usage Examples:
$ inv remove apple 3
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, qty, status := itemAndQuantity(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger := openLedger()
	if err := ledger.Remove(item, qty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("%s: %s\n", item, ledger.Quantity(item))
	return subcommands.ExitSuccess
}
