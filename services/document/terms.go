package document

// standardTerms are the fixed general terms and conditions printed in
// every proposal.
var standardTerms = []TermsClause{
	{
		Heading: "1. Booking Confirmation",
		Body:    "All bookings are subject to availability at the time of confirmation. Prices are subject to change without prior notice until the final booking is secured.",
	},
	{
		Heading: "2. Payment Policy",
		Body:    "Full payment is required 14 days prior to arrival to guarantee the reservation. We accept bank transfers and major credit cards.",
	},
	{
		Heading: "3. Cancellation Policy",
		Body:    "Cancellations made more than 30 days before arrival will incur no charges. Cancellations between 14-30 days will be charged 50%. Cancellations within 14 days are non-refundable.",
	},
	{
		Heading: "4. Flight Changes",
		Body:    "Flight schedules are subject to change by the airline. We are not responsible for delays or cancellations by the carrier.",
	},
	{
		Heading: "5. Travel Documents",
		Body:    "Passengers are responsible for ensuring they have valid passports and visas for travel.",
	},
	{
		Heading: "6. Liability",
		Body:    "We act only as agents for the passenger in regard to travel, whether by railroad, motorcar, motorcoach, boat, or airplane, and assume no liability for injury, damage, loss, accident, delay, or irregularity.",
	},
}
