package savings

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// Currency is one of the two currencies a goal can be denominated in.
type Currency string

const (
	// INR is the base currency: all portfolio totals are expressed in it.
	INR Currency = "INR"
	// USD is the foreign currency, converted to INR at the effective rate.
	USD Currency = "USD"
)

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INR":
		return INR, nil
	case "USD":
		return USD, nil
	default:
		return "", validationErrorf("unknown currency %q, want INR or USD", s)
	}
}

// Validation bounds for goals and contributions.
var (
	maxTarget       = decimal.NewFromInt(10_000_000)
	maxContribution = decimal.NewFromInt(1_000_000)
)

const (
	minNameLen = 2
	maxNameLen = 50
)

// Contribution is a single saving entry toward a goal. Contributions are
// append-only: they are never edited or removed individually, only discarded
// wholesale when their goal is deleted.
type Contribution struct {
	ID     string          // unique within the parent goal
	Amount decimal.Decimal // in the goal's currency, positive
	Date   date.Date       // when the saving occurred (user-chosen)
	// Timestamp records when the entry was made, as opposed to Date which
	// records when the saving occurred.
	Timestamp time.Time
}

// Goal is a savings goal with its full contribution history.
type Goal struct {
	ID       string
	Name     string
	Target   decimal.Decimal // in the goal's currency
	Currency Currency
	// Saved is derived: always the sum of contribution amounts. It is
	// recomputed from scratch after every mutation rather than incremented,
	// so a retried or duplicated mutation cannot make it drift.
	Saved         decimal.Decimal
	Contributions []Contribution
	CreatedAt     date.Date // lower bound for valid contribution dates
}

// recompute resets Saved to the sum of all contribution amounts.
func (g *Goal) recompute() {
	sum := decimal.Zero
	for _, c := range g.Contributions {
		sum = sum.Add(c.Amount)
	}
	g.Saved = sum
}

// TargetMoney returns the target as a formattable Money.
func (g *Goal) TargetMoney() Money { return M(g.Target, g.Currency) }

// SavedMoney returns the saved amount as a formattable Money.
func (g *Goal) SavedMoney() Money { return M(g.Saved, g.Currency) }

// Progress returns the goal's own completion percentage (saved/target*100).
func (g *Goal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	return g.Saved.Div(g.Target).Mul(decimal.NewFromInt(100))
}

// Completed reports whether the goal has reached its target.
func (g *Goal) Completed() bool {
	return g.Saved.GreaterThanOrEqual(g.Target)
}

// validateName checks the goal name constraint and returns the trimmed name.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen {
		return "", validationErrorf("goal name must be at least %d characters", minNameLen)
	}
	if len(name) > maxNameLen {
		return "", validationErrorf("goal name must be at most %d characters", maxNameLen)
	}
	return name, nil
}

// validateTarget checks the target amount constraint.
func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return validationErrorf("target amount must be greater than 0, got %s", target)
	}
	if target.GreaterThan(maxTarget) {
		return validationErrorf("target amount must be at most %s, got %s", maxTarget, target)
	}
	return nil
}

// validateContribution checks amount and date constraints against the goal.
// The date must lie in [goal.CreatedAt, today].
func (g *Goal) validateContribution(amount decimal.Decimal, on date.Date) error {
	if !amount.IsPositive() {
		return validationErrorf("contribution amount must be greater than 0, got %s", amount)
	}
	if amount.GreaterThan(maxContribution) {
		return validationErrorf("contribution amount must be at most %s, got %s", maxContribution, amount)
	}
	if on.Before(g.CreatedAt) {
		return validationErrorf("contribution date %s is before goal creation (%s)", on, g.CreatedAt)
	}
	if on.After(date.Today()) {
		return validationErrorf("contribution date %s is in the future", on)
	}
	return nil
}

// issueID derives a unique identifier from the current instant, bumping past
// the previously issued id when two ids fall in the same millisecond.
// Returns the id and the new high-water mark.
func issueID(now time.Time, last int64) (string, int64) {
	n := now.UnixMilli()
	if n <= last {
		n = last + 1
	}
	return fmt.Sprintf("%d", n), n
}
