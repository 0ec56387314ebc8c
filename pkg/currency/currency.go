// Package currency provides amount parsing and display formatting shared by
// the controllers and the terminal views.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Missing is rendered where no amount is available.
const Missing = "—"

// Format renders an amount as a dollar figure with two decimal places.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPtr renders an optional amount, falling back to Missing.
func FormatPtr(d *decimal.Decimal) string {
	if d == nil {
		return Missing
	}
	return Format(*d)
}

// Parse reads a user-entered amount. Any value that parses as a number is
// accepted as entered; sign checks are the caller's concern.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
