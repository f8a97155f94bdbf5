package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/models"
)

func fullProposal() *models.Proposal {
	return &models.Proposal{
		ID:           "prop-1",
		ProposalName: "Corporate Retreat 2026",
		CustomerName: "Acme Trading Co",
		Branding: models.Branding{
			ContactName:  "Sara Al-Qahtani",
			ContactEmail: "sara@agency.example",
		},
		Pricing: models.PricingConfig{
			Currency:   "USD",
			VatPercent: 15,
			ShowPrices: true,
			Markups: models.MarkupSet{
				Hotels:   models.MarkupConfig{Type: models.MarkupPercentage, Value: 10},
				Meetings: models.MarkupConfig{Type: models.MarkupPercentage, Value: 5},
				Flights:  models.MarkupConfig{Type: models.MarkupPercentage, Value: 8},
			},
		},
		Inclusions: models.Inclusions{
			Hotels: true, Flights: true, Transportation: true,
			Activities: true, CustomItems: true,
		},
		HotelOptions: []models.HotelOption{
			{
				Name:    "Grand Palm Resort",
				VatRule: models.VatDomestic,
				RoomTypes: []models.RoomType{
					{Name: "Deluxe King", NetPrice: 100, Quantity: 2, NumNights: 3},
				},
				MeetingRooms: []models.MeetingRoom{
					{Name: "Ballroom", Price: 45, Quantity: 80, Days: 2, StartDate: "2026-03-01", EndDate: "2026-03-02"},
				},
			},
			{Name: "Coral Bay Hotel", VatRule: models.VatInternational},
		},
		FlightOptions: []models.FlightOption{
			{
				VatRule: models.VatDomestic,
				Quotes:  []models.FlightQuote{{Class: "Economy", Price: 400, Quantity: 10}},
			},
		},
		Transportation: []models.TransportationItem{
			{Model: "Mercedes Sprinter", NetPricePerDay: 300, Quantity: 1, Days: 4, VatRule: models.VatDomestic},
		},
		Activities: []models.Activity{
			{Name: "Desert Safari", PricePerPerson: 90, Guests: 12, Days: 1, VatRule: models.VatDomestic},
		},
		CustomItems: []models.CustomItem{
			{Description: "Photographer", UnitPrice: 500, Quantity: 1, Days: 1, VatRule: models.VatDomestic},
		},
		LastModified: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
}

func sectionKinds(doc *Document) []SectionKind {
	kinds := make([]SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestBuildForSectionOrder(t *testing.T) {
	t.Parallel()

	doc := BuildFor(fullProposal())

	require.Equal(t, []SectionKind{
		SectionCover, SectionTerms,
		SectionHotel, SectionHotel,
		SectionFlights, SectionTransportation, SectionActivities, SectionCustom,
		SectionSummary, SectionThankYou,
	}, sectionKinds(doc))
}

func TestBuildForRespectsInclusionToggles(t *testing.T) {
	t.Parallel()

	p := fullProposal()
	p.Inclusions.Flights = false
	p.Inclusions.Hotels = false
	doc := BuildFor(p)

	kinds := sectionKinds(doc)
	assert.NotContains(t, kinds, SectionFlights)
	assert.NotContains(t, kinds, SectionHotel)
	// Cover, terms, summary and closing page are always present.
	assert.Contains(t, kinds, SectionCover)
	assert.Contains(t, kinds, SectionTerms)
	assert.Contains(t, kinds, SectionSummary)
	assert.Contains(t, kinds, SectionThankYou)
}

func TestBuildForOmitsEmptySharedSections(t *testing.T) {
	t.Parallel()

	p := fullProposal()
	p.FlightOptions = nil
	p.Transportation = nil
	doc := BuildFor(p)

	kinds := sectionKinds(doc)
	assert.NotContains(t, kinds, SectionFlights)
	assert.NotContains(t, kinds, SectionTransportation)
	assert.Contains(t, kinds, SectionActivities)
}

func TestBuildForCoverContent(t *testing.T) {
	t.Parallel()

	doc := BuildFor(fullProposal())
	cover := doc.Sections[0].Cover

	require.NotNil(t, cover)
	assert.Equal(t, "Corporate Retreat 2026", cover.ProposalName)
	assert.Equal(t, "Acme Trading Co", cover.CustomerName)
	assert.Equal(t, "2026-02-14", cover.Date)
	assert.Equal(t, "Sara Al-Qahtani", cover.PreparedBy)
}

func TestBuildForHotelRates(t *testing.T) {
	t.Parallel()

	doc := BuildFor(fullProposal())
	hotel := doc.Sections[2].Hotel

	require.NotNil(t, hotel)
	assert.Equal(t, 1, hotel.OptionNumber)
	require.Len(t, hotel.RoomRates, 1)

	// One room for 3 nights: net 300, +10% = 330, +15% VAT = 379.50,
	// times 2 rooms = 759.00.
	assert.Equal(t, "$759.00", hotel.RoomRates[0].Total)

	require.Len(t, hotel.Events, 1)
	assert.Equal(t, "Ballroom", hotel.Events[0].Description)
	assert.Equal(t, "2026-03-01 - 2026-03-02", hotel.Events[0].Dates)
}

func TestBuildForHidesPricesWhenDisabled(t *testing.T) {
	t.Parallel()

	p := fullProposal()
	p.Pricing.ShowPrices = false
	doc := BuildFor(p)

	assert.False(t, doc.ShowPrices)
	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionHotel:
			assert.Empty(t, s.Hotel.RoomRates)
			assert.Empty(t, s.Hotel.Events)
		case SectionFlights:
			for _, opt := range s.Flights.Options {
				assert.Empty(t, opt.Quotes)
				assert.Empty(t, opt.Total)
			}
		case SectionTransportation:
			for _, item := range s.Transportation.Items {
				assert.Empty(t, item.Total)
			}
		}
	}
}

func TestBuildForSummaryPerOption(t *testing.T) {
	t.Parallel()

	doc := BuildFor(fullProposal())
	summary := doc.Sections[len(doc.Sections)-2].Summary

	require.NotNil(t, summary)
	require.Len(t, summary.Options, 2)
	assert.Equal(t, "Option 1: Grand Palm Resort", summary.Options[0].Title)
	assert.Equal(t, "Option 2: Coral Bay Hotel", summary.Options[1].Title)
	assert.Equal(t, "VAT (15%)", summary.Options[0].VatLabel)
	assert.NotEmpty(t, summary.Options[0].SharedTotal)
	assert.NotEmpty(t, summary.Options[0].GrandTotal)
}

func TestBuildForFallbackSummaryWithoutOptions(t *testing.T) {
	t.Parallel()

	p := fullProposal()
	p.HotelOptions = nil
	doc := BuildFor(p)

	summary := doc.Sections[len(doc.Sections)-2].Summary
	require.NotNil(t, summary)
	require.Len(t, summary.Options, 1)
	assert.Equal(t, "Travel Services", summary.Options[0].Title)
}

func TestBuildForFlightFallbackRouteLabel(t *testing.T) {
	t.Parallel()

	doc := BuildFor(fullProposal())
	for _, s := range doc.Sections {
		if s.Kind == SectionFlights {
			require.Len(t, s.Flights.Options, 1)
			assert.Equal(t, "Option 1", s.Flights.Options[0].RouteDescription)
		}
	}
}
