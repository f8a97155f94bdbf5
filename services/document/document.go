package document

import (
	"tripforge/models"
)

// SectionKind identifies a proposal document section.
type SectionKind string

const (
	SectionCover          SectionKind = "cover"
	SectionTerms          SectionKind = "terms"
	SectionHotel          SectionKind = "hotel"
	SectionFlights        SectionKind = "flights"
	SectionTransportation SectionKind = "transportation"
	SectionActivities     SectionKind = "activities"
	SectionCustom         SectionKind = "custom"
	SectionSummary        SectionKind = "summary"
	SectionThankYou       SectionKind = "thankyou"
)

// Document is the display-ready, ordered content of a proposal. Price
// strings are already formatted in the proposal currency; the visual
// rendering layer only lays the sections out.
type Document struct {
	ProposalID string    `json:"proposalId"`
	Currency   string    `json:"currency"`
	ShowPrices bool      `json:"showPrices"`
	Sections   []Section `json:"sections"`
}

// Section is one document page or page group. Exactly one payload
// field is set, matching Kind.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title,omitempty"`

	Cover          *CoverSection          `json:"cover,omitempty"`
	Terms          *TermsSection          `json:"terms,omitempty"`
	Hotel          *HotelSection          `json:"hotel,omitempty"`
	Flights        *FlightsSection        `json:"flights,omitempty"`
	Transportation *TransportationSection `json:"transportation,omitempty"`
	Activities     *ActivitiesSection     `json:"activities,omitempty"`
	Custom         *CustomSection         `json:"custom,omitempty"`
	Summary        *SummarySection        `json:"summary,omitempty"`
	ThankYou       *ThankYouSection       `json:"thankYou,omitempty"`
}

// CoverSection is the opening page.
type CoverSection struct {
	ProposalName string `json:"proposalName"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"` // proposal last-modified date
	PreparedBy   string `json:"preparedBy"`
	ContactEmail string `json:"contactEmail"`
	CompanyLogo  string `json:"companyLogo,omitempty"`
}

// TermsClause is one numbered clause of the terms page.
type TermsClause struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// TermsSection carries the fixed general terms and conditions.
type TermsSection struct {
	Clauses []TermsClause `json:"clauses"`
}

// RoomRateRow is one accommodation line of a hotel section.
type RoomRateRow struct {
	RoomType string `json:"roomType"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"` // formatted gross line total
}

// EventRow is one meeting-room or dining line of a hotel section.
type EventRow struct {
	Description string `json:"description"`
	Dates       string `json:"dates"`
	Days        int    `json:"days"`
	Guests      int    `json:"guests"`
	Total       string `json:"total"`
}

// HotelSection is one hotel option page.
type HotelSection struct {
	OptionNumber int                 `json:"optionNumber"` // 1-based
	Name         string              `json:"name"`
	Location     string              `json:"location,omitempty"`
	Website      string              `json:"website,omitempty"`
	Images       []models.HotelImage `json:"images,omitempty"`
	RoomRates    []RoomRateRow       `json:"roomRates,omitempty"`
	Events       []EventRow          `json:"events,omitempty"`
}

// QuoteRow is one fare-class cost line of a flight option.
type QuoteRow struct {
	Class string `json:"class"`
	Seats int    `json:"seats"`
	Total string `json:"total"`
}

// FlightOptionView is one itinerary card of the flights section.
type FlightOptionView struct {
	RouteDescription string             `json:"routeDescription"`
	Outbound         []models.FlightLeg `json:"outbound"`
	Return           []models.FlightLeg `json:"return"`
	Quotes           []QuoteRow         `json:"quotes,omitempty"`
	Total            string             `json:"total,omitempty"`
}

// FlightsSection is the flight itinerary page.
type FlightsSection struct {
	Options []FlightOptionView `json:"options"`
}

// TransportRow is one vehicle card of the transportation section.
type TransportRow struct {
	Model       string `json:"model"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Quantity    int    `json:"quantity"`
	Days        int    `json:"days"`
	Total       string `json:"total,omitempty"`
}

// TransportationSection is the ground transport page.
type TransportationSection struct {
	Items []TransportRow `json:"items"`
}

// ActivityRow is one tour card of the activities section.
type ActivityRow struct {
	Name   string `json:"name"`
	Dates  string `json:"dates"`
	Days   int    `json:"days"`
	Guests int    `json:"guests"`
	Image  string `json:"image,omitempty"`
	Total  string `json:"total,omitempty"`
}

// ActivitiesSection is the activities and tours page.
type ActivitiesSection struct {
	Items []ActivityRow `json:"items"`
}

// CustomRow is one additional-service line.
type CustomRow struct {
	Description string `json:"description"`
	Days        int    `json:"days"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total,omitempty"`
}

// CustomSection is the additional services page.
type CustomSection struct {
	Items []CustomRow `json:"items"`
}

// SummaryRow is one service line of an option's investment table.
type SummaryRow struct {
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	Duration    int    `json:"duration"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

// SummaryOptionView is the investment summary block for one hotel
// option, including the shared services carried by every option.
type SummaryOptionView struct {
	Title       string       `json:"title"`
	Rows        []SummaryRow `json:"rows"`
	SharedTotal string       `json:"sharedTotal,omitempty"` // consolidated shared-services row
	SubTotal    string       `json:"subTotal"`
	VatLabel    string       `json:"vatLabel"` // e.g. "VAT (15%)"
	VatAmount   string       `json:"vatAmount"`
	GrandTotal  string       `json:"grandTotal"`
}

// SummarySection is the investment summary page.
type SummarySection struct {
	Options []SummaryOptionView `json:"options"`
}

// ThankYouSection is the closing page.
type ThankYouSection struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}
