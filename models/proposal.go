package models

import "time"

// Branding holds the agency identity shown on the cover and closing
// pages of a proposal document.
type Branding struct {
	CompanyLogo  string `bson:"company_logo,omitempty" json:"companyLogo,omitempty"`
	ContactName  string `bson:"contact_name" json:"contactName"`
	ContactEmail string `bson:"contact_email" json:"contactEmail"`
}

// Proposal is the top-level aggregate persisted in the proposals
// collection. Hotel options own their room/meeting/dining lines; the
// flight, transportation, activity and custom collections are shared
// across every option. Derived totals are never stored on the record.
type Proposal struct {
	ID           string `bson:"id" json:"id"`
	ProposalName string `bson:"proposal_name" json:"proposalName"`
	CustomerName string `bson:"customer_name" json:"customerName"`
	CompanyID    string `bson:"company_id" json:"companyId"`
	CreatedBy    string `bson:"created_by" json:"createdBy"` // author email

	Branding Branding      `bson:"branding" json:"branding"`
	Pricing  PricingConfig `bson:"pricing" json:"pricing"`

	HotelOptions   []HotelOption        `bson:"hotel_options" json:"hotelOptions"`
	FlightOptions  []FlightOption       `bson:"flight_options" json:"flightOptions"`
	Transportation []TransportationItem `bson:"transportation" json:"transportation"`
	Activities     []Activity           `bson:"activities" json:"activities"`
	CustomItems    []CustomItem         `bson:"custom_items" json:"customItems"`

	Inclusions Inclusions `bson:"inclusions" json:"inclusions"`

	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	LastModified time.Time `bson:"last_modified" json:"lastModified"`
	IsDeleted    bool      `bson:"is_deleted" json:"isDeleted"`
}
