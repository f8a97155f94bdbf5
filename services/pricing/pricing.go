package pricing

import (
	"tripforge/models"
)

// Breakdown is the derived price triple for a line item or an
// aggregate of line items. All values are pre-rounding floats; display
// rounding happens in the document layer.
type Breakdown struct {
	SubTotal   float64 `json:"subTotal"`   // sell price before VAT (net + markup)
	VatAmount  float64 `json:"vatAmount"`  // VAT charged per the line's VatRule
	GrandTotal float64 `json:"grandTotal"` // SubTotal + VatAmount
}

// Add returns the field-wise sum of two breakdowns.
func (b Breakdown) Add(other Breakdown) Breakdown {
	return Breakdown{
		SubTotal:   b.SubTotal + other.SubTotal,
		VatAmount:  b.VatAmount + other.VatAmount,
		GrandTotal: b.GrandTotal + other.GrandTotal,
	}
}

// CalculateBreakdown derives the price triple for a single line item.
// Fixed markup is a per-unit-per-day fee and scales with quantity and
// duration exactly like the net cost; percentage markup is a percent of
// the total net. Under the domestic rule VAT is charged on the full
// sell price; under the international rule only the markup portion is
// taxable, while the sub total still shows the full sell price.
// Negative markup values (discounts) flow through unclamped.
func CalculateBreakdown(net float64, markup models.MarkupConfig, vatRule models.VatRule, vatPercent float64, quantity, duration int) Breakdown {
	totalNet := net * float64(quantity) * float64(duration)

	var markupAmount float64
	if markup.Type == models.MarkupFixed {
		markupAmount = markup.Value * float64(quantity) * float64(duration)
	} else {
		markupAmount = totalNet * (markup.Value / 100)
	}

	basePrice := totalNet + markupAmount

	var vatAmount float64
	if vatRule == models.VatInternational {
		vatAmount = markupAmount * (vatPercent / 100)
	} else {
		vatAmount = basePrice * (vatPercent / 100)
	}

	return Breakdown{
		SubTotal:   basePrice,
		VatAmount:  vatAmount,
		GrandTotal: basePrice + vatAmount,
	}
}

// CalculateFlightTotal sums the breakdowns of all fare quotes for one
// flight option. Quotes are priced per seat, so each one is a single
// line with duration 1. An empty quote list yields a zero breakdown.
func CalculateFlightTotal(quotes []models.FlightQuote, markup models.MarkupConfig, vatRule models.VatRule, vatPercent float64) Breakdown {
	var total Breakdown
	for _, q := range quotes {
		total = total.Add(CalculateBreakdown(q.Price, markup, vatRule, vatPercent, q.Quantity, 1))
	}
	return total
}

// included reports whether a line item participates in the investment
// summary. A nil flag counts as included; exclusion is summary-only and
// does not hide the item from its own section.
func included(flag *bool) bool {
	return flag == nil || *flag
}
