package pricing

import (
	"fmt"

	"tripforge/models"
)

// SummaryLine is one row of an option's investment summary table.
type SummaryLine struct {
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unitPrice"` // gross per unit, for display
	Duration  int     `json:"duration"`  // nights or days
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"` // the line's grand total
}

// OptionSummary is the consolidated investment summary for one hotel
// option: the option's own lines plus the proposal's shared costs,
// which are added to every option in full rather than divided among
// them. Index is the option's position in the proposal, or -1 for the
// shared-only fallback summary of a proposal with no hotel options.
type OptionSummary struct {
	Index     int           `json:"index"`
	HotelName string        `json:"hotelName,omitempty"`
	Lines     []SummaryLine `json:"lines"`
	Hotel     Breakdown     `json:"hotel"`
	Shared    Breakdown     `json:"shared"`
	Total     Breakdown     `json:"total"`
}

// SharedBreakdown sums the proposal-level costs that apply to every
// hotel option: flight options, transportation, activities and custom
// items. Flights and transportation respect the proposal's section
// inclusion toggles; items flagged out of the summary are skipped.
func SharedBreakdown(p *models.Proposal) Breakdown {
	var total Breakdown
	cfg := p.Pricing

	if p.Inclusions.Flights {
		for _, f := range p.FlightOptions {
			if !included(f.IncludeInSummary) {
				continue
			}
			total = total.Add(CalculateFlightTotal(f.Quotes, cfg.Markups.Flights, f.VatRule, cfg.VatPercent))
		}
	}

	if p.Inclusions.Transportation {
		for _, t := range p.Transportation {
			if !included(t.IncludeInSummary) {
				continue
			}
			total = total.Add(CalculateBreakdown(t.NetPricePerDay, cfg.Markups.Transportation, t.VatRule, cfg.VatPercent, t.Quantity, t.Days))
		}
	}

	for _, a := range p.Activities {
		if !included(a.IncludeInSummary) {
			continue
		}
		total = total.Add(CalculateBreakdown(a.PricePerPerson, cfg.Markups.Activities, a.VatRule, cfg.VatPercent, a.Guests, a.Days))
	}

	for _, c := range p.CustomItems {
		if !included(c.IncludeInSummary) {
			continue
		}
		total = total.Add(CalculateBreakdown(c.UnitPrice, cfg.Markups.CustomItems, c.VatRule, cfg.VatPercent, c.Quantity, c.Days))
	}

	return total
}

// HotelBreakdown reduces one hotel option's own lines (rooms, meeting
// rooms, dining) to a breakdown plus per-line summary rows. Dining is
// priced with the meetings markup rule.
func HotelBreakdown(h *models.HotelOption, cfg models.PricingConfig) (Breakdown, []SummaryLine) {
	var total Breakdown
	lines := []SummaryLine{}

	for _, r := range h.RoomTypes {
		if !included(r.IncludeInSummary) {
			continue
		}
		b := CalculateBreakdown(r.NetPrice, cfg.Markups.Hotels, h.VatRule, cfg.VatPercent, r.Quantity, r.NumNights)
		total = total.Add(b)
		lines = append(lines, SummaryLine{
			Label:     fmt.Sprintf("Accommodation: %s - %s", h.Name, r.Name),
			UnitPrice: perUnit(b.GrandTotal, r.Quantity),
			Duration:  r.NumNights,
			Quantity:  r.Quantity,
			Total:     b.GrandTotal,
		})
	}

	for _, m := range h.MeetingRooms {
		if !included(m.IncludeInSummary) {
			continue
		}
		b := CalculateBreakdown(m.Price, cfg.Markups.Meetings, h.VatRule, cfg.VatPercent, m.Quantity, m.Days)
		total = total.Add(b)
		lines = append(lines, SummaryLine{
			Label:     fmt.Sprintf("Event: %s", m.Name),
			UnitPrice: perUnit(b.GrandTotal, m.Quantity),
			Duration:  m.Days,
			Quantity:  m.Quantity,
			Total:     b.GrandTotal,
		})
	}

	for _, d := range h.Dining {
		if !included(d.IncludeInSummary) {
			continue
		}
		b := CalculateBreakdown(d.Price, cfg.Markups.Meetings, h.VatRule, cfg.VatPercent, d.Quantity, d.Days)
		total = total.Add(b)
		lines = append(lines, SummaryLine{
			Label:     fmt.Sprintf("Dining: %s", d.Name),
			UnitPrice: perUnit(b.GrandTotal, d.Quantity),
			Duration:  d.Days,
			Quantity:  d.Quantity,
			Total:     b.GrandTotal,
		})
	}

	return total, lines
}

// BuildSummary produces one investment summary per hotel option, in
// stored order. Every option carries the full shared cost. A proposal
// with no hotel options yields a single shared-only summary so the
// shared costs still surface.
func BuildSummary(p *models.Proposal) []OptionSummary {
	shared := SharedBreakdown(p)

	if len(p.HotelOptions) == 0 {
		return []OptionSummary{{
			Index:  -1,
			Lines:  []SummaryLine{},
			Shared: shared,
			Total:  shared,
		}}
	}

	summaries := make([]OptionSummary, 0, len(p.HotelOptions))
	for i := range p.HotelOptions {
		h := &p.HotelOptions[i]
		hotel, lines := HotelBreakdown(h, p.Pricing)
		summaries = append(summaries, OptionSummary{
			Index:     i,
			HotelName: h.Name,
			Lines:     lines,
			Hotel:     hotel,
			Shared:    shared,
			Total:     hotel.Add(shared),
		})
	}
	return summaries
}

func perUnit(total float64, quantity int) float64 {
	if quantity == 0 {
		return 0
	}
	return total / float64(quantity)
}
