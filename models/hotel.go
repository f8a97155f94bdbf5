package models

// HotelImage is a single gallery image for a hotel option.
type HotelImage struct {
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// RoomType is an accommodation line within a hotel option.
// A nil IncludeInSummary counts as included.
type RoomType struct {
	Name             string  `bson:"name" json:"name"`
	CheckIn          string  `bson:"check_in" json:"checkIn"`   // "YYYY-MM-DD"
	CheckOut         string  `bson:"check_out" json:"checkOut"` // "YYYY-MM-DD"
	NetPrice         float64 `bson:"net_price" json:"netPrice"` // net per room per night
	Quantity         int     `bson:"quantity" json:"quantity"`  // number of rooms
	NumNights        int     `bson:"num_nights" json:"numNights"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}

// MeetingRoom is an event-space line within a hotel option.
type MeetingRoom struct {
	Name             string  `bson:"name" json:"name"`
	StartDate        string  `bson:"start_date" json:"startDate"`
	EndDate          string  `bson:"end_date" json:"endDate"`
	Price            float64 `bson:"price" json:"price"`       // net per guest per day
	Quantity         int     `bson:"quantity" json:"quantity"` // number of guests
	Days             int     `bson:"days" json:"days"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}

// DiningEntry is a catering line within a hotel option. It is priced
// with the meetings markup rule.
type DiningEntry struct {
	Name             string  `bson:"name" json:"name"`
	StartDate        string  `bson:"start_date" json:"startDate"`
	EndDate          string  `bson:"end_date" json:"endDate"`
	Price            float64 `bson:"price" json:"price"`
	Quantity         int     `bson:"quantity" json:"quantity"`
	Days             int     `bson:"days" json:"days"`
	IncludeInSummary *bool   `bson:"include_in_summary,omitempty" json:"includeInSummary,omitempty"`
}

// HotelOption is one selectable hotel-anchored package within a
// proposal. Room, meeting and dining lines belong to the option; the
// proposal-level flight/transport/activity/custom collections apply to
// every option equally.
type HotelOption struct {
	Name         string        `bson:"name" json:"name"`
	Location     string        `bson:"location,omitempty" json:"location,omitempty"`
	Website      string        `bson:"website,omitempty" json:"website,omitempty"`
	Images       []HotelImage  `bson:"images,omitempty" json:"images,omitempty"`
	VatRule      VatRule       `bson:"vat_rule" json:"vatRule"`
	RoomTypes    []RoomType    `bson:"room_types" json:"roomTypes"`
	MeetingRooms []MeetingRoom `bson:"meeting_rooms" json:"meetingRooms"`
	Dining       []DiningEntry `bson:"dining" json:"dining"`
}
