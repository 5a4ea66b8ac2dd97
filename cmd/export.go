package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	savings "github.com/subodhkangale07/savings"
)

type exportCmd struct {
	csv    bool
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all goals as a JSON backup or a CSV report" }
func (*exportCmd) Usage() string {
	return `syfe export [-csv] [-o <file>]

  Writes a full JSON backup of all goals to stdout (or to -o <file>).
  With -csv, writes a spreadsheet report instead; the CSV form cannot
  be imported back.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "Write a CSV report instead of a JSON backup.")
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	goals := state.Ledger.Goals()
	if c.csv {
		err = savings.ExportCSV(w, goals)
	} else {
		err = savings.ExportBackup(w, goals, state.Rate.EffectiveRate())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
