package domain

import "strings"

// ItemType is the closed set of booking kinds a trip item can be.
// Validation and persistence switch exhaustively over this tag rather than
// probing for field presence.
type ItemType string

const (
	TypeFlight   ItemType = "flight"
	TypeCar      ItemType = "car"
	TypeStay     ItemType = "stay"
	TypeActivity ItemType = "activity"
	TypeNote     ItemType = "note"
)

// Valid reports whether t is one of the five known item types.
func (t ItemType) Valid() bool {
	switch t {
	case TypeFlight, TypeCar, TypeStay, TypeActivity, TypeNote:
		return true
	}
	return false
}

// TripItem is a single booking record on a trip: a flight leg, a car rental,
// a lodging stay, an activity, or a free-form note. All variants share the
// common fields; the type-specific fields are meaningful only for their
// variant and stay empty otherwise.
//
// Date is the primary day key. EndDate is the arrival date for flights,
// checkout for stays, and drop-off for car rentals; when empty it reads as
// Date for display but is not backfilled into storage (the flight builder is
// the one exception, see FlightBuilder.StageLeg).
type TripItem struct {
	ID     int64    `json:"id,omitempty"`
	TripID int64    `json:"tripId"`
	Type   ItemType `json:"type"`
	Title  string   `json:"title"`
	Date   string   `json:"date"`
	EndDate string  `json:"endDate,omitempty"`

	StartTime string `json:"startTime,omitempty"` // "15:04", trip-local wall clock
	EndTime   string `json:"endTime,omitempty"`

	Location    string   `json:"location,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Details     string   `json:"details,omitempty"`
	BookingRef  string   `json:"bookingRef,omitempty"`
	BookingLink string   `json:"bookingLink,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Completed   bool     `json:"completed"`

	// Flight specific.
	DepartureAirport string `json:"departureAirport,omitempty"`
	ArrivalAirport   string `json:"arrivalAirport,omitempty"`
	Duration         string `json:"duration,omitempty"`

	// Car rental specific.
	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
}

// Complete reports whether the item carries the minimum a manual save needs:
// a non-blank title and a date.
func (i TripItem) Complete() bool {
	return strings.TrimSpace(i.Title) != "" && i.Date != ""
}

// ImageSeed is the stable placeholder seed for an item: title, the location
// field relevant to its type, and the type tag.
func (i TripItem) ImageSeed() string {
	loc := i.Location
	if loc == "" {
		loc = i.PickupLocation
	}
	return i.Title + " " + loc + " " + string(i.Type)
}
