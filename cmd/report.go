package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full items report" }
func (*reportCmd) Usage() string {
	return `inv report

  Displays every item and its quantity in the ledger's order, or a
  placeholder line if the inventory is empty.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := openLedger()
	printMarkdown(renderer.ReportMarkdown(ledger))
	return subcommands.ExitSuccess
}
