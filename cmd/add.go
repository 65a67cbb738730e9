package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a quantity of an item to the stock" }
func (*addCmd) Usage() string {
	return `inv add <item> <quantity>

  Increases the stored quantity for <item> by <quantity>, creating the entry
  if absent. A negative quantity decreases the total.

Usage Examples:
$ inv add apple 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, qty, status := itemAndQuantity(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger := openLedger()
	if err := ledger.Add(item, qty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("%s: %s\n", item, ledger.Quantity(item))
	return subcommands.ExitSuccess
}

// itemAndQuantity parses the two positional arguments shared by add and remove.
func itemAndQuantity(f *flag.FlagSet) (string, int64, subcommands.ExitStatus) {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected <item> <quantity>, got %d arguments\n", f.NArg())
		return "", 0, subcommands.ExitUsageError
	}
	item := f.Arg(0)
	qty, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: must be an integer\n", f.Arg(1))
		return "", 0, subcommands.ExitUsageError
	}
	return item, qty, subcommands.ExitSuccess
}
