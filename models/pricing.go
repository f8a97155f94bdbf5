package models

// MarkupType selects how the agency margin is applied to a net price.
type MarkupType string

const (
	MarkupFixed      MarkupType = "fixed"      // absolute amount per unit per day
	MarkupPercentage MarkupType = "percentage" // percent of the total net cost
)

// VatRule determines the VAT base for a line item.
type VatRule string

const (
	VatDomestic      VatRule = "domestic"      // VAT charged on net + markup
	VatInternational VatRule = "international" // VAT charged on the markup only
)

// MarkupConfig is a single markup rule.
type MarkupConfig struct {
	Type  MarkupType `bson:"type" json:"type"`
	Value float64    `bson:"value" json:"value"`
}

// MarkupSet holds one markup rule per line-item category.
type MarkupSet struct {
	Hotels         MarkupConfig `bson:"hotels" json:"hotels"`
	Meetings       MarkupConfig `bson:"meetings" json:"meetings"`
	Flights        MarkupConfig `bson:"flights" json:"flights"`
	Transportation MarkupConfig `bson:"transportation" json:"transportation"`
	Activities     MarkupConfig `bson:"activities" json:"activities"`
	CustomItems    MarkupConfig `bson:"custom_items" json:"customItems"`
}

// PricingConfig is the request-scoped pricing configuration of a proposal.
// Totals derived from it are never persisted; they are recomputed on
// every render from the current line items.
type PricingConfig struct {
	Currency   string    `bson:"currency" json:"currency"` // ISO 4217 code, e.g. "USD"
	VatPercent float64   `bson:"vat_percent" json:"vatPercent"`
	ShowPrices bool      `bson:"show_prices" json:"showPrices"`
	Markups    MarkupSet `bson:"markups" json:"markups"`
}

// Inclusions toggles which proposal sections are active.
type Inclusions struct {
	Hotels         bool `bson:"hotels" json:"hotels"`
	Flights        bool `bson:"flights" json:"flights"`
	Transportation bool `bson:"transportation" json:"transportation"`
	Activities     bool `bson:"activities" json:"activities"`
	CustomItems    bool `bson:"custom_items" json:"customItems"`
}
