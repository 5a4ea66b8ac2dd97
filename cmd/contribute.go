package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	savings "github.com/subodhkangale07/savings"
	"github.com/subodhkangale07/savings/date"
)

// contributeCmd holds the flags for the 'contribute' subcommand.
type contributeCmd struct {
	goal   string
	amount string
	date   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record money saved against a goal" }
func (*contributeCmd) Usage() string {
	return `syfe contribute -goal <id> -amount <amount> [-d <date>]

  Records a contribution against a goal, in the goal's currency.
  The date defaults to today and must fall between the goal's creation
  date and today.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Identifier of the goal.")
	f.StringVar(&c.amount, "amount", "", "Amount to record, in the goal's currency.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the contribution (YYYY-MM-DD).")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goal, err := state.Ledger.AddContribution(c.goal, amount, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveLedger(state.Ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Contributed %s to %s (%s of %s saved)\n",
		savings.M(amount, goal.Currency), goal.Name, goal.SavedMoney(), goal.TargetMoney())
	return refreshAchievements(state)
}
