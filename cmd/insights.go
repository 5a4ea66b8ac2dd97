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

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display metrics derived from the contribution history" }
func (*insightsCmd) Usage() string {
	return `syfe insights

  Displays average contribution, streak, projected completion and the
  suggested monthly saving. See 'syfe topic insights'.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in := savings.ComputeInsights(state.Ledger.Goals(), state.Rate.EffectiveRate())
	printMarkdown(renderer.InsightsMarkdown(&in))
	return subcommands.ExitSuccess
}
