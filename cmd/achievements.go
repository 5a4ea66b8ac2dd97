package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/subodhkangale07/savings/renderer"
)

type achievementsCmd struct{}

func (*achievementsCmd) Name() string     { return "achievements" }
func (*achievementsCmd) Synopsis() string { return "display the achievement board" }
func (*achievementsCmd) Usage() string {
	return `syfe achievements

  Displays every achievement and whether it is unlocked.
`
}

func (c *achievementsCmd) SetFlags(f *flag.FlagSet) {}

func (c *achievementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Re-evaluate first so the board reflects the current goals.
	if status := refreshAchievements(state); status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.AchievementsMarkdown(state.Unlocked))
	return subcommands.ExitSuccess
}
