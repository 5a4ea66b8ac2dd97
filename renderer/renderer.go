// Package renderer turns savings data into markdown reports.
//
// Every renderer returns a plain markdown string; printing, styling and
// terminal concerns belong to the caller.
package renderer

import (
	"github.com/shopspring/decimal"
)

// percent formats a 0-100 progress value for display.
func percent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}
