package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	savings "github.com/subodhkangale07/savings"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore goals from a JSON backup" }
func (*importCmd) Usage() string {
	return `syfe import <file>

  Restores from a JSON backup written by 'syfe export', replacing the
  current goals entirely. An invalid backup imports nothing.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	ledger, err := savings.ImportBackup(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Imported %d goal(s)\n", len(ledger.Goals()))

	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return refreshAchievements(state)
}
