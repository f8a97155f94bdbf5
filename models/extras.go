package models

// TransportationItem is a vehicle hire line shared across all hotel
// options of a proposal.
type TransportationItem struct {
	Model            string  `bson:"model" json:"model"`
	Type             string  `bson:"type,omitempty" json:"type,omitempty"` // e.g. "Coach", "SUV"
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
	Image            string  `bson:"image,omitempty" json:"image,omitempty"`
	NetPricePerDay   float64 `bson:"net_price_per_day" json:"netPricePerDay"`
	Quantity         int     `bson:"quantity" json:"quantity"` // number of vehicles
	Days             int     `bson:"days" json:"days"`
	VatRule          VatRule `bson:"vat_rule" json:"vatRule"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}

// Activity is a tour or excursion line, priced per person per day.
type Activity struct {
	Name             string  `bson:"name" json:"name"`
	StartDate        string  `bson:"start_date" json:"startDate"`
	EndDate          string  `bson:"end_date" json:"endDate"`
	Image            string  `bson:"image,omitempty" json:"image,omitempty"`
	PricePerPerson   float64 `bson:"price_per_person" json:"pricePerPerson"`
	Guests           int     `bson:"guests" json:"guests"`
	Days             int     `bson:"days" json:"days"`
	VatRule          VatRule `bson:"vat_rule" json:"vatRule"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}

// CustomItem is a free-form additional service line.
type CustomItem struct {
	Description      string  `bson:"description" json:"description"`
	UnitPrice        float64 `bson:"unit_price" json:"unitPrice"`
	Quantity         int     `bson:"quantity" json:"quantity"`
	Days             int     `bson:"days" json:"days"`
	VatRule          VatRule `bson:"vat_rule" json:"vatRule"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}
