package models

// FlightLeg is a single segment of an itinerary.
type FlightLeg struct {
	Airline       string `bson:"airline" json:"airline"`
	FlightNumber  string `bson:"flight_number" json:"flightNumber"`
	From          string `bson:"from" json:"from"`
	To            string `bson:"to" json:"to"`
	DepartureDate string `bson:"departure_date" json:"departureDate"`
	DepartureTime string `bson:"departure_time" json:"departureTime"`
	ArrivalDate   string `bson:"arrival_date" json:"arrivalDate"`
	ArrivalTime   string `bson:"arrival_time" json:"arrivalTime"`
	Duration      string `bson:"duration,omitempty" json:"duration,omitempty"` // display string, e.g. "6h 30m"
}

// FlightQuote is one fare class quoted for a flight option. Flights are
// priced per seat; duration is always 1.
type FlightQuote struct {
	Class    string  `bson:"class" json:"class"`
	Price    float64 `bson:"price" json:"price"`       // net per seat
	Quantity int     `bson:"quantity" json:"quantity"` // number of seats
}

// FlightOption is a full itinerary (outbound plus return legs) with one
// or more fare quotes. Flight options are shared across all hotel
// options of a proposal.
type FlightOption struct {
	RouteDescription string        `bson:"route_description,omitempty" json:"routeDescription,omitempty"`
	Outbound         []FlightLeg   `bson:"outbound" json:"outbound"`
	Return           []FlightLeg   `bson:"return" json:"return"`
	Quotes           []FlightQuote `bson:"quotes" json:"quotes"`
	VatRule          VatRule       `bson:"vat_rule" json:"vatRule"`
	IncludeInSummary *bool         `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}
