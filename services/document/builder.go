package document

import (
	"fmt"
	"strconv"

	"tripforge/models"
	"tripforge/services/pricing"
)

// BuildFor assembles the display-ready document for a proposal. Section
// order and inclusion gating follow the printed proposal layout: cover,
// terms, one section per hotel option, then the shared sections, the
// investment summary and the closing page. The function is pure; totals
// are recomputed from the proposal's current state on every call.
func BuildFor(p *models.Proposal) *Document {
	cfg := p.Pricing
	doc := &Document{
		ProposalID: p.ID,
		Currency:   cfg.Currency,
		ShowPrices: cfg.ShowPrices,
	}

	doc.Sections = append(doc.Sections, coverSection(p), termsSection())

	if p.Inclusions.Hotels {
		for i := range p.HotelOptions {
			doc.Sections = append(doc.Sections, hotelSection(&p.HotelOptions[i], i, cfg))
		}
	}
	if p.Inclusions.Flights && len(p.FlightOptions) > 0 {
		doc.Sections = append(doc.Sections, flightsSection(p.FlightOptions, cfg))
	}
	if p.Inclusions.Transportation && len(p.Transportation) > 0 {
		doc.Sections = append(doc.Sections, transportationSection(p.Transportation, cfg))
	}
	if p.Inclusions.Activities && len(p.Activities) > 0 {
		doc.Sections = append(doc.Sections, activitiesSection(p.Activities, cfg))
	}
	if p.Inclusions.CustomItems && len(p.CustomItems) > 0 {
		doc.Sections = append(doc.Sections, customSection(p.CustomItems, cfg))
	}

	doc.Sections = append(doc.Sections, summarySection(p), thankYouSection(p))
	return doc
}

func coverSection(p *models.Proposal) Section {
	return Section{
		Kind:  SectionCover,
		Title: p.ProposalName,
		Cover: &CoverSection{
			ProposalName: p.ProposalName,
			CustomerName: p.CustomerName,
			Date:         p.LastModified.Format("2006-01-02"),
			PreparedBy:   p.Branding.ContactName,
			ContactEmail: p.Branding.ContactEmail,
			CompanyLogo:  p.Branding.CompanyLogo,
		},
	}
}

func termsSection() Section {
	return Section{
		Kind:  SectionTerms,
		Title: "General Terms & Conditions",
		Terms: &TermsSection{Clauses: standardTerms},
	}
}

func hotelSection(h *models.HotelOption, index int, cfg models.PricingConfig) Section {
	sec := &HotelSection{
		OptionNumber: index + 1,
		Name:         h.Name,
		Location:     h.Location,
		Website:      h.Website,
		Images:       h.Images,
	}

	if cfg.ShowPrices {
		for _, rt := range h.RoomTypes {
			// Rate rows are quoted per room: breakdown for one room over
			// the stay, multiplied out by the room count for the line.
			b := pricing.CalculateBreakdown(rt.NetPrice, cfg.Markups.Hotels, h.VatRule, cfg.VatPercent, 1, rt.NumNights)
			sec.RoomRates = append(sec.RoomRates, RoomRateRow{
				RoomType: rt.Name,
				CheckIn:  rt.CheckIn,
				CheckOut: rt.CheckOut,
				Nights:   rt.NumNights,
				Quantity: rt.Quantity,
				Total:    FormatAmount(b.GrandTotal*float64(rt.Quantity), cfg.Currency),
			})
		}
		for _, m := range h.MeetingRooms {
			b := pricing.CalculateBreakdown(m.Price, cfg.Markups.Meetings, h.VatRule, cfg.VatPercent, m.Quantity, m.Days)
			sec.Events = append(sec.Events, EventRow{
				Description: m.Name,
				Dates:       dateRange(m.StartDate, m.EndDate),
				Days:        m.Days,
				Guests:      m.Quantity,
				Total:       FormatAmount(b.GrandTotal, cfg.Currency),
			})
		}
		for _, d := range h.Dining {
			b := pricing.CalculateBreakdown(d.Price, cfg.Markups.Meetings, h.VatRule, cfg.VatPercent, d.Quantity, d.Days)
			sec.Events = append(sec.Events, EventRow{
				Description: d.Name,
				Dates:       dateRange(d.StartDate, d.EndDate),
				Days:        d.Days,
				Guests:      d.Quantity,
				Total:       FormatAmount(b.GrandTotal, cfg.Currency),
			})
		}
	}

	return Section{
		Kind:  SectionHotel,
		Title: h.Name,
		Hotel: sec,
	}
}

func flightsSection(flights []models.FlightOption, cfg models.PricingConfig) Section {
	sec := &FlightsSection{}
	for i, f := range flights {
		view := FlightOptionView{
			RouteDescription: f.RouteDescription,
			Outbound:         f.Outbound,
			Return:           f.Return,
		}
		if view.RouteDescription == "" {
			view.RouteDescription = fmt.Sprintf("Option %d", i+1)
		}
		if cfg.ShowPrices {
			for _, q := range f.Quotes {
				b := pricing.CalculateBreakdown(q.Price, cfg.Markups.Flights, f.VatRule, cfg.VatPercent, q.Quantity, 1)
				view.Quotes = append(view.Quotes, QuoteRow{
					Class: q.Class,
					Seats: q.Quantity,
					Total: FormatAmount(b.GrandTotal, cfg.Currency),
				})
			}
			total := pricing.CalculateFlightTotal(f.Quotes, cfg.Markups.Flights, f.VatRule, cfg.VatPercent)
			view.Total = FormatAmount(total.GrandTotal, cfg.Currency)
		}
		sec.Options = append(sec.Options, view)
	}
	return Section{Kind: SectionFlights, Title: "Flight Itinerary", Flights: sec}
}

func transportationSection(items []models.TransportationItem, cfg models.PricingConfig) Section {
	sec := &TransportationSection{}
	for _, item := range items {
		row := TransportRow{
			Model:       item.Model,
			Type:        item.Type,
			Description: item.Description,
			Image:       item.Image,
			Quantity:    item.Quantity,
			Days:        item.Days,
		}
		if cfg.ShowPrices {
			b := pricing.CalculateBreakdown(item.NetPricePerDay, cfg.Markups.Transportation, item.VatRule, cfg.VatPercent, item.Quantity, item.Days)
			row.Total = FormatAmount(b.GrandTotal, cfg.Currency)
		}
		sec.Items = append(sec.Items, row)
	}
	return Section{Kind: SectionTransportation, Title: "Transportation", Transportation: sec}
}

func activitiesSection(items []models.Activity, cfg models.PricingConfig) Section {
	sec := &ActivitiesSection{}
	for _, act := range items {
		row := ActivityRow{
			Name:   act.Name,
			Dates:  dateRange(act.StartDate, act.EndDate),
			Days:   act.Days,
			Guests: act.Guests,
			Image:  act.Image,
		}
		if cfg.ShowPrices {
			b := pricing.CalculateBreakdown(act.PricePerPerson, cfg.Markups.Activities, act.VatRule, cfg.VatPercent, act.Guests, act.Days)
			row.Total = FormatAmount(b.GrandTotal, cfg.Currency)
		}
		sec.Items = append(sec.Items, row)
	}
	return Section{Kind: SectionActivities, Title: "Activities & Tours", Activities: sec}
}

func customSection(items []models.CustomItem, cfg models.PricingConfig) Section {
	sec := &CustomSection{}
	for _, item := range items {
		row := CustomRow{
			Description: item.Description,
			Days:        item.Days,
			Quantity:    item.Quantity,
		}
		if cfg.ShowPrices {
			b := pricing.CalculateBreakdown(item.UnitPrice, cfg.Markups.CustomItems, item.VatRule, cfg.VatPercent, item.Quantity, item.Days)
			row.Total = FormatAmount(b.GrandTotal, cfg.Currency)
		}
		sec.Items = append(sec.Items, row)
	}
	return Section{Kind: SectionCustom, Title: "Additional Services", Custom: sec}
}

func summarySection(p *models.Proposal) Section {
	cfg := p.Pricing
	sec := &SummarySection{}

	for _, s := range pricing.BuildSummary(p) {
		view := SummaryOptionView{
			Title:      summaryTitle(s),
			VatLabel:   fmt.Sprintf("VAT (%s%%)", strconv.FormatFloat(cfg.VatPercent, 'f', -1, 64)),
			SubTotal:   FormatAmount(s.Total.SubTotal, cfg.Currency),
			VatAmount:  FormatAmount(s.Total.VatAmount, cfg.Currency),
			GrandTotal: FormatAmount(s.Total.GrandTotal, cfg.Currency),
		}
		for _, line := range s.Lines {
			view.Rows = append(view.Rows, SummaryRow{
				Description: line.Label,
				UnitPrice:   FormatAmount(line.UnitPrice, cfg.Currency),
				Duration:    line.Duration,
				Quantity:    line.Quantity,
				Total:       FormatAmount(line.Total, cfg.Currency),
			})
		}
		if s.Shared.GrandTotal != 0 {
			view.SharedTotal = FormatAmount(s.Shared.GrandTotal, cfg.Currency)
		}
		sec.Options = append(sec.Options, view)
	}

	return Section{Kind: SectionSummary, Title: "Investment Summary", Summary: sec}
}

func summaryTitle(s pricing.OptionSummary) string {
	if s.Index < 0 {
		return "Travel Services"
	}
	return fmt.Sprintf("Option %d: %s", s.Index+1, s.HotelName)
}

func thankYouSection(p *models.Proposal) Section {
	return Section{
		Kind:  SectionThankYou,
		Title: "Thank You",
		ThankYou: &ThankYouSection{
			ContactName:  p.Branding.ContactName,
			ContactEmail: p.Branding.ContactEmail,
		},
	}
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}
