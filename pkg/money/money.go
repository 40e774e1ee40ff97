// Package money formats rupee amounts for display. All arithmetic stays in
// shopspring/decimal at full precision; this package only rounds to two
// decimals at the display boundary.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// en-IN gives lakh/crore digit grouping (1,23,456.00).
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders d as a rupee amount with two decimals and Indian grouping,
// e.g. ₹23,625.00. Negative amounts keep the sign after the symbol.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "₹" + printer.Sprint(number.Decimal(f, number.Scale(2)))
}
