package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// run parses args and executes the subcommand like the commander would.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return c.Execute(context.Background(), f)
}

// useTempState points the app state directory at a temp dir for the test.
func useTempState(t *testing.T) {
	t.Helper()
	old := *stateDir
	*stateDir = t.TempDir()
	t.Cleanup(func() { *stateDir = old })
}

func TestAddThenContribute(t *testing.T) {
	useTempState(t)

	if status := run(t, &addCmd{}, "-name", "Emergency Fund", "-target", "600000"); status != subcommands.ExitSuccess {
		t.Fatalf("add failed with status %v", status)
	}

	state, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	goals := state.Ledger.Goals()
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	if goals[0].Currency != "INR" {
		t.Errorf("default currency = %s, want INR", goals[0].Currency)
	}

	if status := run(t, &contributeCmd{}, "-goal", goals[0].ID, "-amount", "5000"); status != subcommands.ExitSuccess {
		t.Fatalf("contribute failed with status %v", status)
	}

	state, err = LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if saved := state.Ledger.Goals()[0].Saved; !saved.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("saved = %s, want 5000", saved)
	}
}

func TestAddFromTemplate(t *testing.T) {
	useTempState(t)

	if status := run(t, &addCmd{}, "-template", "japan_trip"); status != subcommands.ExitSuccess {
		t.Fatalf("add failed with status %v", status)
	}

	state, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	g := state.Ledger.Goals()[0]
	if g.Name != "Trip to Japan" || g.Currency != "USD" {
		t.Errorf("template goal = %q %s", g.Name, g.Currency)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	useTempState(t)

	if status := run(t, &addCmd{}, "-name", "x", "-target", "100"); status == subcommands.ExitSuccess {
		t.Error("one-letter name must be rejected")
	}
	if status := run(t, &addCmd{}, "-name", "Valid Name", "-target", "abc"); status != subcommands.ExitUsageError {
		t.Error("non-numeric target must be a usage error")
	}

	state, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if len(state.Ledger.Goals()) != 0 {
		t.Error("rejected input must not create goals")
	}
}

func TestDeleteUnknownGoalSucceeds(t *testing.T) {
	useTempState(t)

	if status := run(t, &deleteCmd{}, "-goal", "does-not-exist"); status != subcommands.ExitSuccess {
		t.Errorf("deleting an unknown goal must succeed, got %v", status)
	}
}

func TestFmtCompactsDeletedGoals(t *testing.T) {
	useTempState(t)

	if status := run(t, &addCmd{}, "-name", "Short lived", "-target", "100"); status != subcommands.ExitSuccess {
		t.Fatal("add failed")
	}
	state, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	id := state.Ledger.Goals()[0].ID

	if status := run(t, &deleteCmd{}, "-goal", id); status != subcommands.ExitSuccess {
		t.Fatal("delete failed")
	}
	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatal("fmt failed")
	}

	state, err = LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(state.Ledger.Commands()); n != 0 {
		t.Errorf("compacted log still has %d commands", n)
	}
}
