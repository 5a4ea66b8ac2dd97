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

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full savings report" }
func (*reportCmd) Usage() string {
	return `syfe report

  Displays the full report: summary, goal list, insights and achievements.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goals := state.Ledger.Goals()
	rate := state.Rate.EffectiveRate()
	s := savings.Totals(goals, rate)
	in := savings.ComputeInsights(goals, rate)

	printMarkdown(renderer.ReportMarkdown(goals, &s, &in, state.Unlocked))
	return subcommands.ExitSuccess
}
