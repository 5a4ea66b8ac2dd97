package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	savings "github.com/subodhkangale07/savings"
	"github.com/subodhkangale07/savings/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the aggregate savings position" }
func (*summaryCmd) Usage() string {
	return `syfe summary

  Displays the aggregate position across all goals, converted to INR
  with the current effective exchange rate.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := savings.Totals(state.Ledger.Goals(), state.Rate.EffectiveRate())
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
