package money

import (
	"github.com/shopspring/decimal"
)

const DefaultSymbol = "£"

// Formatter renders cent amounts for display, e.g. 2016 -> "£20.16" and
// -336 -> "-£3.36".
type Formatter struct {
	Symbol string
}

func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

func (f Formatter) Format(cents int64) string {
	amount := Decimal(cents)
	if amount.IsNegative() {
		return "-" + f.Symbol + amount.Neg().StringFixed(2)
	}
	return f.Symbol + amount.StringFixed(2)
}

// Decimal converts cents to a decimal amount in major units.
func Decimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
