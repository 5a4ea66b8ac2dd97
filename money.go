package savings

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
// Arithmetic is exact (decimal based); formatting follows the currency's
// conventions (symbol, grouping, fraction digits).
type Money struct {
	value decimal.Decimal // major unit value
	cur   Currency
}

// M creates a Money from a numeric value and a currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, cur Currency) Money {
	return Money{value: newDecimal(value), cur: cur}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	}
	return decimal.Zero
}

// currency resolves the full go-money currency definition.
func (m Money) currency() *money.Currency {
	// the Money constructor guarantees a non-nil currency.
	return money.New(0, string(m.cur)).Currency()
}

// String formats the value with the currency's symbol and grouping,
// e.g. "₹1,00,000.00" or "$3,000.00".
func (m Money) String() string {
	cur := m.currency()
	shifted := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

func (m Money) Currency() Currency       { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }

// Add returns m+n. Both operands must share a currency; a zero-valued Money
// is currency-weak and adopts the other operand's currency.
func (m Money) Add(n Money) Money {
	return Money{value: m.value.Add(n.value), cur: mergeCur(m, n)}
}

// Sub returns m-n under the same currency rules as Add.
func (m Money) Sub(n Money) Money {
	return Money{value: m.value.Sub(n.value), cur: mergeCur(m, n)}
}

func mergeCur(a, b Money) Currency {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + string(a.cur) + " != " + string(b.cur))
	}
	return a.cur
}
