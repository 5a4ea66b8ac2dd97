package savings

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotals(t *testing.T) {
	goals := []*Goal{
		{Name: "Rupee Goal", Target: decimal.NewFromInt(1000), Saved: decimal.NewFromInt(500), Currency: INR},
		{Name: "Dollar Goal", Target: decimal.NewFromInt(100), Saved: decimal.NewFromInt(50), Currency: USD},
	}
	rate := decimal.NewFromInt(80)

	s := Totals(goals, rate)

	if want := decimal.NewFromInt(9000); !s.TotalTarget.Decimal().Equal(want) {
		t.Errorf("total target = %s, want %s", s.TotalTarget.Decimal(), want)
	}
	if want := decimal.NewFromInt(4500); !s.TotalSaved.Decimal().Equal(want) {
		t.Errorf("total saved = %s, want %s", s.TotalSaved.Decimal(), want)
	}
	if want := decimal.NewFromInt(50); !s.Progress.Equal(want) {
		t.Errorf("progress = %s, want %s", s.Progress, want)
	}
	if want := decimal.NewFromInt(4500); !s.Remaining().Equal(want) {
		t.Errorf("remaining = %s, want %s", s.Remaining(), want)
	}
	if s.TotalTarget.Currency() != INR {
		t.Error("totals must be in INR")
	}
}

func TestTotalsEmpty(t *testing.T) {
	s := Totals(nil, decimal.NewFromInt(80))
	if !s.Progress.IsZero() || !s.TotalTarget.Decimal().IsZero() {
		t.Errorf("empty portfolio: progress = %s, target = %s, want 0", s.Progress, s.TotalTarget.Decimal())
	}
}

func TestTotalsZeroTarget(t *testing.T) {
	// A goal set with no positive target has zero progress, not a division error.
	goals := []*Goal{{Name: "Odd Goal", Target: decimal.Zero, Saved: decimal.NewFromInt(10), Currency: INR}}
	s := Totals(goals, decimal.NewFromInt(80))
	if !s.Progress.IsZero() {
		t.Errorf("progress = %s, want 0", s.Progress)
	}
}

func TestConvert(t *testing.T) {
	rate := decimal.NewFromInt(80)

	m, err := Convert(decimal.NewFromInt(10), USD, rate)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Decimal().Equal(decimal.NewFromInt(800)) || m.Currency() != INR {
		t.Errorf("10 USD = %s %s, want 800 INR", m.Decimal(), m.Currency())
	}

	m, err = Convert(decimal.NewFromInt(800), INR, rate)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Decimal().Equal(decimal.NewFromInt(10)) || m.Currency() != USD {
		t.Errorf("800 INR = %s %s, want 10 USD", m.Decimal(), m.Currency())
	}
}

func TestConvertZeroRate(t *testing.T) {
	if _, err := Convert(decimal.NewFromInt(10), INR, decimal.Zero); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}
