// Package cmd implements the CLI application to track savings goals.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	savings "github.com/subodhkangale07/savings"
)

// Commands lists all subcommands in registration order.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&contributeCmd{},
	&deleteCmd{},
	&listCmd{},
	&summaryCmd{},
	&insightsCmd{},
	&achievementsCmd{},
	&refreshCmd{},
	&reportCmd{},
	&exportCmd{},
	&importCmd{},
	&templateCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateDir = flag.String("state-dir", ".", "Path to the folder holding the savings files")

// Store returns the state store for the app state directory.
func Store() *savings.Store { return savings.NewStore(*stateDir) }

// LoadState loads the full state, tolerating absent files.
func LoadState() (*savings.State, error) {
	return Store().Load()
}

// SaveLedger writes the ledger back to the app state directory.
func SaveLedger(l *savings.Ledger) subcommands.ExitStatus {
	if err := Store().SaveLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving goals: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// refreshAchievements re-evaluates the board after a mutation, persists it,
// and announces any newly unlocked achievement.
func refreshAchievements(state *savings.State) subcommands.ExitStatus {
	updated, newly, revoked := savings.EvaluateAchievements(state.Ledger.Goals(), state.Unlocked)
	state.Unlocked = updated
	if err := Store().SaveAchievements(updated); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving achievements: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range newly {
		for _, a := range savings.AllAchievements() {
			if a.ID == id {
				fmt.Printf("🏆 Achievement unlocked: %s — %s\n", a.Title, a.Description)
			}
		}
	}
	for _, id := range revoked {
		for _, a := range savings.AllAchievements() {
			if a.ID == id {
				fmt.Printf("Achievement locked again: %s\n", a.Title)
			}
		}
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer is unavailable (e.g. not a TTY).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
