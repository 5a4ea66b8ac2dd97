package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the goals file in a canonical, compacted form"
}
func (*fmtCmd) Usage() string {
	return `syfe fmt

  Reads the goals file, drops the history of deleted goals, and writes
  it back in a canonical form. The visible state is unchanged.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	before := len(state.Ledger.Commands())
	compacted := state.Ledger.Compact()
	after := len(compacted.Commands())

	if status := SaveLedger(compacted); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Fprintf(os.Stderr, "Formatted goals file (%d entries, %d dropped).\n", after, before-after)
	return subcommands.ExitSuccess
}
