package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/models"
)

const tolerance = 1e-9

func pct(v float64) models.MarkupConfig {
	return models.MarkupConfig{Type: models.MarkupPercentage, Value: v}
}

func fixed(v float64) models.MarkupConfig {
	return models.MarkupConfig{Type: models.MarkupFixed, Value: v}
}

func TestCalculateBreakdownDomestic(t *testing.T) {
	t.Parallel()

	// net 100, 10% markup, 15% VAT, 2 rooms x 3 nights:
	// totalNet 600, markup 60, base 660, VAT 99, grand 759.
	b := CalculateBreakdown(100, pct(10), models.VatDomestic, 15, 2, 3)

	require.InDelta(t, 660, b.SubTotal, tolerance)
	require.InDelta(t, 99, b.VatAmount, tolerance)
	require.InDelta(t, 759, b.GrandTotal, tolerance)
}

func TestCalculateBreakdownInternational(t *testing.T) {
	t.Parallel()

	// Same inputs, but VAT applies to the 60 markup only.
	b := CalculateBreakdown(100, pct(10), models.VatInternational, 15, 2, 3)

	require.InDelta(t, 660, b.SubTotal, tolerance)
	require.InDelta(t, 9, b.VatAmount, tolerance)
	require.InDelta(t, 669, b.GrandTotal, tolerance)
}

func TestGrandTotalIsSubTotalPlusVat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		net        float64
		markup     models.MarkupConfig
		rule       models.VatRule
		vatPercent float64
		qty, dur   int
	}{
		{"domestic percentage", 250.5, pct(12.5), models.VatDomestic, 15, 3, 4},
		{"international percentage", 250.5, pct(12.5), models.VatInternational, 15, 3, 4},
		{"domestic fixed", 80, fixed(7.25), models.VatDomestic, 5, 10, 2},
		{"international fixed", 80, fixed(7.25), models.VatInternational, 5, 10, 2},
		{"zero vat", 99.99, pct(20), models.VatDomestic, 0, 1, 7},
		{"discount markup", 120, pct(-8), models.VatInternational, 15, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := CalculateBreakdown(tc.net, tc.markup, tc.rule, tc.vatPercent, tc.qty, tc.dur)
			assert.InDelta(t, b.SubTotal+b.VatAmount, b.GrandTotal, tolerance)
		})
	}
}

func TestZeroQuantityOrDurationYieldsZero(t *testing.T) {
	t.Parallel()

	for _, b := range []Breakdown{
		CalculateBreakdown(500, pct(25), models.VatDomestic, 15, 0, 5),
		CalculateBreakdown(500, fixed(40), models.VatInternational, 15, 5, 0),
		CalculateBreakdown(500, fixed(40), models.VatDomestic, 15, 0, 0),
	} {
		assert.Zero(t, b.SubTotal)
		assert.Zero(t, b.VatAmount)
		assert.Zero(t, b.GrandTotal)
	}
}

func TestFixedMarkupScalesLinearly(t *testing.T) {
	t.Parallel()

	base := CalculateBreakdown(100, fixed(15), models.VatInternational, 15, 2, 3)
	doubledQty := CalculateBreakdown(100, fixed(15), models.VatInternational, 15, 4, 3)
	doubledDur := CalculateBreakdown(100, fixed(15), models.VatInternational, 15, 2, 6)

	// International VAT taxes the markup only, so doubling quantity or
	// duration must exactly double the VAT amount.
	require.InDelta(t, 2*base.VatAmount, doubledQty.VatAmount, tolerance)
	require.InDelta(t, 2*base.VatAmount, doubledDur.VatAmount, tolerance)
	require.InDelta(t, 2*base.GrandTotal, doubledQty.GrandTotal, tolerance)
}

func TestPercentageMarkupPartitionLinearity(t *testing.T) {
	t.Parallel()

	// Splitting 6 rooms into 1+2+3 must give the same totals as one call.
	whole := CalculateBreakdown(100, pct(10), models.VatDomestic, 15, 6, 3)

	var parts Breakdown
	for _, qty := range []int{1, 2, 3} {
		parts = parts.Add(CalculateBreakdown(100, pct(10), models.VatDomestic, 15, qty, 3))
	}

	require.InDelta(t, whole.SubTotal, parts.SubTotal, tolerance)
	require.InDelta(t, whole.VatAmount, parts.VatAmount, tolerance)
	require.InDelta(t, whole.GrandTotal, parts.GrandTotal, tolerance)
}

// Negative markups are passed through unclamped today. The domain has
// not confirmed whether discounted lines should floor at zero, so this
// pins the current permissive behavior.
func TestNegativeMarkupIsNotClamped(t *testing.T) {
	t.Parallel()

	b := CalculateBreakdown(100, pct(-10), models.VatInternational, 15, 1, 1)

	require.InDelta(t, 90, b.SubTotal, tolerance)
	require.InDelta(t, -1.5, b.VatAmount, tolerance) // negative VAT on a negative markup
	require.InDelta(t, 88.5, b.GrandTotal, tolerance)
}

func TestInternationalVatNeverExceedsDomestic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		net    float64
		markup models.MarkupConfig
	}{
		{100, pct(10)},
		{100, pct(0)},
		{350.75, fixed(12)},
		{1, pct(99)},
	}

	for _, tc := range cases {
		dom := CalculateBreakdown(tc.net, tc.markup, models.VatDomestic, 15, 2, 3)
		intl := CalculateBreakdown(tc.net, tc.markup, models.VatInternational, 15, 2, 3)
		assert.LessOrEqual(t, intl.VatAmount, dom.VatAmount+tolerance)
	}
}

func TestCalculateFlightTotalEmpty(t *testing.T) {
	t.Parallel()

	total := CalculateFlightTotal(nil, pct(10), models.VatDomestic, 15)
	assert.Equal(t, Breakdown{}, total)
}

func TestCalculateFlightTotalSingleQuote(t *testing.T) {
	t.Parallel()

	quotes := []models.FlightQuote{{Class: "Economy", Price: 450, Quantity: 12}}
	total := CalculateFlightTotal(quotes, pct(8), models.VatInternational, 15)

	// One quote must equal the single-line breakdown with duration 1.
	want := CalculateBreakdown(450, pct(8), models.VatInternational, 15, 12, 1)
	require.Equal(t, want, total)
}

func TestCalculateFlightTotalSumsQuotes(t *testing.T) {
	t.Parallel()

	quotes := []models.FlightQuote{
		{Class: "Economy", Price: 450, Quantity: 12},
		{Class: "Business", Price: 1800, Quantity: 2},
	}
	total := CalculateFlightTotal(quotes, pct(8), models.VatDomestic, 15)

	want := CalculateBreakdown(450, pct(8), models.VatDomestic, 15, 12, 1).
		Add(CalculateBreakdown(1800, pct(8), models.VatDomestic, 15, 2, 1))

	require.InDelta(t, want.SubTotal, total.SubTotal, tolerance)
	require.InDelta(t, want.VatAmount, total.VatAmount, tolerance)
	require.InDelta(t, want.GrandTotal, total.GrandTotal, tolerance)
}
