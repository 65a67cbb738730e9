package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type lowCmd struct {
	threshold int64
}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list items whose quantity is below a threshold" }
func (*lowCmd) Usage() string {
	return `inv low [-t <threshold>]

  Lists every item whose quantity is strictly below the threshold, in the
  ledger's order. Items at exactly the threshold are not listed.

Usage Examples:
$ inv low -t 5
`
}

func (c *lowCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.threshold, "t", 0, "Stock level to check against. Defaults to the configured threshold.")
}

func (c *lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	threshold := c.threshold
	if threshold == 0 {
		cfg, err := appConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		threshold = cfg.LowThreshold
	}

	ledger := openLedger()
	printMarkdown(renderer.LowMarkdown(ledger, threshold))
	return subcommands.ExitSuccess
}
