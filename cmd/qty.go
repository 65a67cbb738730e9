package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type qtyCmd struct{}

func (*qtyCmd) Name() string     { return "qty" }
func (*qtyCmd) Synopsis() string { return "print the stored quantity of an item" }
func (*qtyCmd) Usage() string {
	return `inv qty <item>

  Prints the stored quantity for <item>, or 0 if the item is not in stock.

Usage Examples:
$ inv qty apple
`
}

func (c *qtyCmd) SetFlags(f *flag.FlagSet) {}

func (c *qtyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected <item>, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}

	ledger := openLedger()
	fmt.Println(ledger.Quantity(f.Arg(0)))
	return subcommands.ExitSuccess
}
