package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	savings "github.com/subodhkangale07/savings"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	target   string
	currency string
	template string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a new savings goal" }
func (*addCmd) Usage() string {
	return `syfe add -name <name> -target <amount> [-currency INR|USD]
syfe add -template <id> [-name <name>] [-target <amount>]

  Creates a new savings goal. With -template the goal is seeded from a
  built-in preset (see 'syfe template'); other flags override its fields.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal (2 to 50 characters).")
	f.StringVar(&c.target, "target", "", "Target amount, in the goal's currency.")
	f.StringVar(&c.currency, "currency", "", "Currency of the goal: INR or USD. Defaults to INR.")
	f.StringVar(&c.template, "template", "", "Seed the goal from a template id.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := c.name
	target := c.target
	currency := c.currency

	if c.template != "" {
		t, err := savings.TemplateByID(c.template)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if name == "" {
			name = t.Name
		}
		if target == "" {
			target = t.Target.String()
		}
		if currency == "" {
			currency = string(t.Currency)
		}
	}
	if currency == "" {
		currency = string(savings.INR)
	}

	cur, err := savings.ParseCurrency(currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target %q: %v\n", target, err)
		return subcommands.ExitUsageError
	}

	state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goal, err := state.Ledger.CreateGoal(name, amount, cur)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveLedger(state.Ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Created goal %s: %s with target %s\n", goal.ID, goal.Name, goal.TargetMoney())
	return refreshAchievements(state)
}
