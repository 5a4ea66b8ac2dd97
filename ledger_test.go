package savings

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// testLedger returns a ledger with a deterministic clock, one millisecond
// apart per call, so issued ids are stable. The clock is set in the past so
// contributions dated today are always valid.
func testLedger() *Ledger {
	l := NewLedger()
	t := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
	return l
}

func TestCreateGoal(t *testing.T) {
	l := testLedger()
	g, err := l.CreateGoal("  Emergency Fund  ", decimal.NewFromInt(600000), INR)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "Emergency Fund" {
		t.Errorf("name not trimmed: %q", g.Name)
	}
	if !g.Saved.IsZero() {
		t.Errorf("new goal starts with saved=%s, want 0", g.Saved)
	}
	if g.CreatedAt != date.New(2025, time.January, 15) {
		t.Errorf("createdAt = %s", g.CreatedAt)
	}
	if l.Goal(g.ID) != g {
		t.Error("goal not indexed by id")
	}
}

func TestCreateGoalValidation(t *testing.T) {
	cases := []struct {
		name     string
		goalName string
		target   decimal.Decimal
		currency Currency
	}{
		{"name too short", "a", decimal.NewFromInt(100), INR},
		{"name only spaces", "    ", decimal.NewFromInt(100), INR},
		{"name too long", strings.Repeat("x", 51), decimal.NewFromInt(100), INR},
		{"zero target", "Valid Name", decimal.Zero, INR},
		{"negative target", "Valid Name", decimal.NewFromInt(-5), INR},
		{"target above cap", "Valid Name", decimal.NewFromInt(10_000_001), INR},
		{"bad currency", "Valid Name", decimal.NewFromInt(100), Currency("EUR")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := testLedger()
			_, err := l.CreateGoal(tc.goalName, tc.target, tc.currency)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
			if len(l.Goals()) != 0 || len(l.Commands()) != 0 {
				t.Error("failed mutation must leave the ledger untouched")
			}
		})
	}
}

func TestSavedMatchesContributions(t *testing.T) {
	l := testLedger()
	g, err := l.CreateGoal("Trip to Japan", decimal.NewFromInt(3000), USD)
	if err != nil {
		t.Fatal(err)
	}

	sum := decimal.Zero
	for _, amount := range []int64{100, 250, 49} {
		a := decimal.NewFromInt(amount)
		if _, err := l.AddContribution(g.ID, a, date.Today()); err != nil {
			t.Fatal(err)
		}
		sum = sum.Add(a)
		if !g.Saved.Equal(sum) {
			t.Fatalf("saved = %s, want %s", g.Saved, sum)
		}
	}

	// A rejected contribution leaves the history and total unchanged.
	if _, err := l.AddContribution(g.ID, decimal.NewFromInt(-1), date.Today()); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if !g.Saved.Equal(sum) || len(g.Contributions) != 3 {
		t.Error("failed contribution modified the goal")
	}
}

func TestContributionValidation(t *testing.T) {
	l := testLedger()
	g, err := l.CreateGoal("Wedding Fund", decimal.NewFromInt(1_500_000), INR)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		amount decimal.Decimal
		on     date.Date
	}{
		{"zero amount", decimal.Zero, date.Today()},
		{"above cap", decimal.NewFromInt(1_000_001), date.Today()},
		{"before creation", decimal.NewFromInt(10), g.CreatedAt.Add(-1)},
		{"in the future", decimal.NewFromInt(10), date.Today().Add(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.AddContribution(g.ID, tc.amount, tc.on); !errors.Is(err, ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestAddContributionUnknownGoal(t *testing.T) {
	l := testLedger()
	if _, err := l.AddContribution("nope", decimal.NewFromInt(10), date.Today()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteGoalIdempotent(t *testing.T) {
	l := testLedger()
	g, err := l.CreateGoal("Short lived", decimal.NewFromInt(100), INR)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddContribution(g.ID, decimal.NewFromInt(10), date.Today()); err != nil {
		t.Fatal(err)
	}

	l.DeleteGoal(g.ID)
	if l.Goal(g.ID) != nil || len(l.Goals()) != 0 {
		t.Fatal("goal still present after delete")
	}
	n := len(l.Commands())

	// Deleting again is a no-op, not an error, and records nothing.
	l.DeleteGoal(g.ID)
	if len(l.Commands()) != n {
		t.Error("repeated delete recorded a command")
	}
}

func TestIssueID(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	id1, last := issueID(now, 0)
	id2, last2 := issueID(now, last) // same instant: must still be unique
	if id1 == id2 {
		t.Fatalf("colliding ids: %s", id1)
	}
	if last2 != last+1 {
		t.Errorf("high-water mark = %d, want %d", last2, last+1)
	}
}

func TestCompactDropsDeletedGoals(t *testing.T) {
	l := testLedger()
	keep, err := l.CreateGoal("Keep me", decimal.NewFromInt(100), INR)
	if err != nil {
		t.Fatal(err)
	}
	gone, err := l.CreateGoal("Drop me", decimal.NewFromInt(100), INR)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddContribution(keep.ID, decimal.NewFromInt(10), date.Today()); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddContribution(gone.ID, decimal.NewFromInt(20), date.Today()); err != nil {
		t.Fatal(err)
	}
	l.DeleteGoal(gone.ID)

	compacted := l.Compact()

	if len(compacted.Commands()) != 2 {
		t.Fatalf("compacted log has %d commands, want 2", len(compacted.Commands()))
	}
	g := compacted.Goal(keep.ID)
	if g == nil {
		t.Fatal("surviving goal missing after compaction")
	}
	if !g.Saved.Equal(decimal.NewFromInt(10)) {
		t.Errorf("surviving goal saved = %s, want 10", g.Saved)
	}
	if compacted.Goal(gone.ID) != nil {
		t.Error("deleted goal resurrected by compaction")
	}
}
