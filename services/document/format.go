package document

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount in the proposal currency for
// display: symbol, thousands grouping, two fraction digits. This is the
// only place rounding happens; the pricing engine keeps full precision.
func FormatAmount(amount float64, code string) string {
	formatted := number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2))

	unit, err := currency.ParseISO(code)
	if err != nil {
		// Unknown code: fall back to the raw code as prefix.
		return printer.Sprintf("%s %v", code, formatted)
	}
	return printer.Sprintf("%v%v", currency.Symbol(unit), formatted)
}
