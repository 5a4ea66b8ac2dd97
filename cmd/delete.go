package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	goal string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a goal and its contribution history" }
func (*deleteCmd) Usage() string {
	return `syfe delete -goal <id>

  Deletes a goal and its whole contribution history. Deleting a goal
  that does not exist is not an error.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Identifier of the goal to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal == "" {
		fmt.Fprintln(os.Stderr, "Error: -goal is required.")
		return subcommands.ExitUsageError
	}

	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state.Ledger.DeleteGoal(c.goal)
	if status := SaveLedger(state.Ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Deleted goal %s\n", c.goal)
	return refreshAchievements(state)
}
