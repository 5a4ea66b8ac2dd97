package savings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

func TestComputeInsightsEmpty(t *testing.T) {
	in := ComputeInsights(nil, decimal.NewFromInt(80))
	if in.TotalContributions != 0 || in.Streak != 0 || in.DaysActive != 0 {
		t.Errorf("empty ledger insights not zero: %+v", in)
	}
	if in.ProjectedCompletion != nil {
		t.Error("empty ledger must not project a completion date")
	}
	if !in.AvgContribution.IsZero() || !in.SuggestedMonthly.IsZero() {
		t.Error("empty ledger amounts must be zero")
	}
}

func TestComputeInsightsAverages(t *testing.T) {
	today := date.New(2025, time.June, 15)
	goals := []*Goal{
		{
			Name: "Rupee Goal", Target: decimal.NewFromInt(10000), Currency: INR,
			Saved:     decimal.NewFromInt(500),
			CreatedAt: today.Add(-10),
			Contributions: []Contribution{
				{Amount: decimal.NewFromInt(500), Date: today.Add(-4)},
			},
		},
		{
			Name: "Dollar Goal", Target: decimal.NewFromInt(1000), Currency: USD,
			Saved:     decimal.NewFromInt(50),
			CreatedAt: today.Add(-10),
			Contributions: []Contribution{
				{Amount: decimal.NewFromInt(50), Date: today.Add(-2)},
			},
		},
	}
	rate := decimal.NewFromInt(80)

	in := computeInsightsAt(goals, rate, today)

	if in.TotalContributions != 2 {
		t.Fatalf("contributions = %d, want 2", in.TotalContributions)
	}
	// 500 INR + 50 USD at 80 = 4500 INR over 2 contributions.
	if want := decimal.NewFromInt(2250); !in.AvgContribution.Decimal().Equal(want) {
		t.Errorf("avg = %s, want %s", in.AvgContribution.Decimal(), want)
	}
	// First contribution 4 days back, last 2 days back.
	if in.DaysActive != 2 {
		t.Errorf("days active = %d, want 2", in.DaysActive)
	}
	// Remaining: target 10000+80000=90000 minus saved 4500 = 85500.
	// ceil(85500/12) = 7125.
	if want := decimal.NewFromInt(7125); !in.SuggestedMonthly.Decimal().Equal(want) {
		t.Errorf("suggested monthly = %s, want %s", in.SuggestedMonthly.Decimal(), want)
	}
	// Daily pace 4500/2 = 2250; ceil(85500/2250) = 38 days out.
	if in.ProjectedCompletion == nil {
		t.Fatal("expected a projected completion date")
	}
	if want := today.Add(38); *in.ProjectedCompletion != want {
		t.Errorf("projection = %s, want %s", in.ProjectedCompletion, want)
	}
}

func TestComputeInsightsSingleDay(t *testing.T) {
	today := date.New(2025, time.June, 15)
	goals := []*Goal{{
		Name: "Quick Goal", Target: decimal.NewFromInt(100), Currency: INR,
		Saved:         decimal.NewFromInt(100),
		CreatedAt:     today,
		Contributions: []Contribution{{Amount: decimal.NewFromInt(100), Date: today}},
	}}

	in := computeInsightsAt(goals, decimal.NewFromInt(80), today)

	// A single contribution still counts one active day.
	if in.DaysActive != 1 {
		t.Errorf("days active = %d, want 1", in.DaysActive)
	}
	// Fully funded: nothing to project, nothing to suggest.
	if in.ProjectedCompletion != nil {
		t.Error("funded portfolio must not project a completion date")
	}
	if !in.SuggestedMonthly.IsZero() {
		t.Errorf("suggested monthly = %s, want 0", in.SuggestedMonthly.Decimal())
	}
}

func TestStreak(t *testing.T) {
	today := date.New(2025, time.June, 15)
	mk := func(offsets ...int) []*Goal {
		g := &Goal{Name: "Streak Goal", Target: decimal.NewFromInt(1000), Currency: INR, CreatedAt: today.Add(-40)}
		for _, o := range offsets {
			g.Contributions = append(g.Contributions, Contribution{
				Amount: decimal.NewFromInt(10), Date: today.Add(o),
			})
		}
		return []*Goal{g}
	}

	cases := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"no contributions", nil, 0},
		{"today only", []int{0}, 1},
		{"broken by a gap", []int{0, -1, -3}, 2},
		{"none today", []int{-1, -2}, 0},
		{"several per day count once", []int{0, 0, -1}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streak(mk(tc.offsets...), today); got != tc.want {
				t.Errorf("streak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStreakLookbackCap(t *testing.T) {
	today := date.New(2025, time.June, 15)
	g := &Goal{Name: "Long Streak", Target: decimal.NewFromInt(1000), Currency: INR, CreatedAt: today.Add(-100)}
	for i := 0; i < 60; i++ {
		g.Contributions = append(g.Contributions, Contribution{
			Amount: decimal.NewFromInt(1), Date: today.Add(-i),
		})
	}
	if got := streak([]*Goal{g}, today); got != streakLookback {
		t.Errorf("streak = %d, want the %d day cap", got, streakLookback)
	}
}
