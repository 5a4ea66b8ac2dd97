package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/subodhkangale07/savings/renderer"
)

type listCmd struct {
	goal string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list goals, or show one goal in detail" }
func (*listCmd) Usage() string {
	return `syfe list [-goal <id>]

  Lists all goals with their progress. With -goal, shows a single goal
  and its full contribution history.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Show this goal only, with its contributions.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.goal != "" {
		goal := state.Ledger.Goal(c.goal)
		if goal == nil {
			fmt.Fprintf(os.Stderr, "Error: goal %q not found\n", c.goal)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.GoalMarkdown(goal, state.Rate.EffectiveRate()))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.GoalsMarkdown(state.Ledger.Goals()))
	return subcommands.ExitSuccess
}
