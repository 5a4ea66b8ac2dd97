package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/subodhkangale07/savings/cmd"
)

// completion describes the CLI for shell completion. Run
// `COMP_INSTALL=1 syfe` once to install it.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["help"] = &complete.Command{}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"state-dir":        predict.Dirs("*"),
			"exchange-api-key": predict.Nothing,
		},
	}
}

func main() {
	completion().Complete("syfe")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
