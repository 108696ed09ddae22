package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"IDR": "Rp ",
	"JPY": "¥",
}

// Money renders an amount for display, e.g. Money("USD", 12.5) -> "$12.50".
// Unknown currencies fall back to "<CODE> <amount>".
func Money(currency string, amount decimal.Decimal) string {
	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency + " "
	}
	ac := accounting.Accounting{Symbol: symbol, Precision: 2}
	return ac.FormatMoneyDecimal(amount)
}
