package savings

import (
	"github.com/shopspring/decimal"
)

// This file contains the aggregation engine: one-directional normalization of
// every goal's figures into the base currency (INR) at the effective rate.

var hundred = decimal.NewFromInt(100)

// Summary is the portfolio-wide aggregation in the base currency.
type Summary struct {
	TotalTarget Money           // sum of targets, in INR
	TotalSaved  Money           // sum of saved amounts, in INR
	Progress    decimal.Decimal // overall completion percentage
	Rate        decimal.Decimal // the effective rate used for normalization
	Goals       int
}

// Remaining returns the amount still to be saved across all goals, in INR.
// Negative when the portfolio is over-funded.
func (s Summary) Remaining() decimal.Decimal {
	return s.TotalTarget.Decimal().Sub(s.TotalSaved.Decimal())
}

// Totals converts every goal's figures to INR at the given rate and combines
// them. Progress is 0 when there is no target: an empty portfolio has a
// defined result, not an error.
func Totals(goals []*Goal, rate decimal.Decimal) Summary {
	totalTarget := decimal.Zero
	totalSaved := decimal.Zero
	for _, g := range goals {
		totalTarget = totalTarget.Add(toBase(g.Target, g.Currency, rate))
		totalSaved = totalSaved.Add(toBase(g.Saved, g.Currency, rate))
	}
	progress := decimal.Zero
	if totalTarget.IsPositive() {
		progress = totalSaved.Div(totalTarget).Mul(hundred)
	}
	return Summary{
		TotalTarget: M(totalTarget, INR),
		TotalSaved:  M(totalSaved, INR),
		Progress:    progress,
		Rate:        rate,
		Goals:       len(goals),
	}
}

// toBase normalizes an amount into INR: USD amounts are multiplied by the
// rate, INR amounts pass through unchanged.
func toBase(amount decimal.Decimal, cur Currency, rate decimal.Decimal) decimal.Decimal {
	if cur == USD {
		return amount.Mul(rate)
	}
	return amount
}

// Convert translates an amount from the goal's currency into the other one:
// USD to INR multiplies by the rate, INR to USD divides by it. A zero rate
// means the rate is unavailable; it is reported as a validation error rather
// than propagating an infinity.
func Convert(amount decimal.Decimal, from Currency, rate decimal.Decimal) (Money, error) {
	if !rate.IsPositive() {
		return Money{}, validationErrorf("exchange rate unavailable")
	}
	if from == USD {
		return M(amount.Mul(rate), INR), nil
	}
	return M(amount.Div(rate), USD), nil
}
