package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the inventory file" }
func (*queryCmd) Usage() string {
	return `inv query <expression>

  Evaluates a JSONPath expression against the inventory document and prints
  the result, which is convenient in scripts.

Usage Examples:
$ inv query '$.apple'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected a single JSONPath expression, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}
	expr := f.Arg(0)

	data, err := os.ReadFile(ledgerPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading inventory file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding inventory file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", expr, err)
		return subcommands.ExitFailure
	}
	// jsonpath is never clear about whether it returns a list of one answer,
	// or a single answer: unwrap the single-element list.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}

	fmt.Println(jval)
	return subcommands.ExitSuccess
}
