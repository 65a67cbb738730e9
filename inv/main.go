package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; returns immediately when not in completion mode.
	completion().Complete("inv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":   predict.Files("*.json"),
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"add":    {},
			"remove": {},
			"qty":    {},
			"low":    {Flags: map[string]complete.Predictor{"t": predict.Nothing}},
			"report": {},
			"query":  {},
			"demo":   {},
			"topic":  {Args: predict.Set{"readme", "format", "report", "*"}},
		},
	}
}
