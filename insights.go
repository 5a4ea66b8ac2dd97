package savings

import (
	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// streakLookback caps how far back the streak walk goes.
const streakLookback = 30

// Insights is derived analytics over the ledger and the effective rate.
// It is recomputed on demand and stores nothing: there is no invalidation
// problem because there is no cache.
type Insights struct {
	AvgContribution Money // mean contribution, in INR
	DaysActive      int   // span between first and last contribution, min 1
	Streak          int   // consecutive days with a contribution, ending today
	// ProjectedCompletion is the estimated day all goals are reached at the
	// current daily pace, or nil when no projection is defined (nothing
	// remaining, or no pace to extrapolate from).
	ProjectedCompletion *date.Date
	SuggestedMonthly    Money // ceil(remaining/12), zero when nothing remains
	TotalContributions  int
}

// ComputeInsights derives analytics from the goals at the given rate.
// All values are defined on an empty ledger: zero, never a division error.
func ComputeInsights(goals []*Goal, rate decimal.Decimal) Insights {
	return computeInsightsAt(goals, rate, date.Today())
}

// computeInsightsAt is ComputeInsights with an explicit "today" for tests.
func computeInsightsAt(goals []*Goal, rate decimal.Decimal, today date.Date) Insights {
	in := Insights{
		AvgContribution:  M(decimal.Zero, INR),
		SuggestedMonthly: M(decimal.Zero, INR),
	}

	var first, last date.Date
	totalValue := decimal.Zero // all contributions, in INR
	for _, g := range goals {
		for _, c := range g.Contributions {
			totalValue = totalValue.Add(toBase(c.Amount, g.Currency, rate))
			if in.TotalContributions == 0 || c.Date.Before(first) {
				first = c.Date
			}
			if in.TotalContributions == 0 || c.Date.After(last) {
				last = c.Date
			}
			in.TotalContributions++
		}
	}

	summary := Totals(goals, rate)
	remaining := summary.Remaining()
	if remaining.IsPositive() {
		in.SuggestedMonthly = M(remaining.Div(decimal.NewFromInt(12)).Ceil(), INR)
	}

	in.Streak = streak(goals, today)

	if in.TotalContributions == 0 {
		return in
	}

	in.AvgContribution = M(totalValue.Div(decimal.NewFromInt(int64(in.TotalContributions))), INR)

	in.DaysActive = last.Sub(first)
	if in.DaysActive < 1 {
		in.DaysActive = 1
	}

	dailyRate := totalValue.Div(decimal.NewFromInt(int64(in.DaysActive)))
	if remaining.IsPositive() && dailyRate.IsPositive() {
		days := int(remaining.Div(dailyRate).Ceil().IntPart())
		when := today.Add(days)
		in.ProjectedCompletion = &when
	}

	return in
}

// streak counts consecutive calendar days, walking backward from today, with
// at least one contribution on each day. It stops at the first gap and at the
// lookback cap.
func streak(goals []*Goal, today date.Date) int {
	days := make(map[date.Date]bool)
	for _, g := range goals {
		for _, c := range g.Contributions {
			days[c.Date] = true
		}
	}
	n := 0
	for i := 0; i < streakLookback; i++ {
		if !days[today.Add(-i)] {
			break
		}
		n++
	}
	return n
}
