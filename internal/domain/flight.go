package domain

import "fmt"

// FlightBuilder accumulates the legs of a multi-hop flight booking before a
// single save. The UI captures one leg at a time; staged legs are confirmed
// but not yet persisted, and Draft is the leg currently being edited.
//
// Chaining assumes a linear itinerary: each new leg departs where the last
// one arrived, on the last one's arrival date. Round trips and branching
// itineraries are not modeled.
type FlightBuilder struct {
	Staged []TripItem
	Draft  TripItem
}

// NewFlightBuilder starts a builder whose first draft leg is seeded from the
// given form state. The type tag is forced to flight.
func NewFlightBuilder(draft TripItem) *FlightBuilder {
	draft.Type = TypeFlight
	return &FlightBuilder{Draft: draft}
}

// StageLeg confirms the current draft as a staged leg and resets the draft
// for the next hop:
//
//   - a missing title is synthesized as "Flight {departure} -> {arrival}";
//   - a missing end date defaults to the departure date, so every staged leg
//     carries a concrete date pair;
//   - the next draft departs from the previous arrival airport, dated on the
//     previous arrival date, with times cleared and the booking reference
//     kept (connections usually share one reservation).
//
// Returns ErrIncompleteItem when the draft has no date; nothing is staged.
func (b *FlightBuilder) StageLeg() error {
	if b.Draft.Date == "" {
		return fmt.Errorf("%w: flight leg needs a date", ErrIncompleteItem)
	}

	leg := b.Draft
	if leg.Title == "" {
		leg.Title = flightTitle(leg)
	}
	if leg.EndDate == "" {
		leg.EndDate = leg.Date
	}
	b.Staged = append(b.Staged, leg)

	next := b.Draft
	next.Title = ""
	next.DepartureAirport = b.Draft.ArrivalAirport
	next.ArrivalAirport = ""
	if b.Draft.EndDate != "" {
		next.Date = b.Draft.EndDate
	}
	next.EndDate = ""
	next.StartTime = ""
	next.EndTime = ""
	b.Draft = next
	return nil
}

// RemoveLeg discards the staged leg at index i. Out-of-range indexes are
// ignored.
func (b *FlightBuilder) RemoveLeg(i int) {
	if i < 0 || i >= len(b.Staged) {
		return
	}
	b.Staged = append(b.Staged[:i], b.Staged[i+1:]...)
}

// Commit returns every leg to persist: the staged list plus the current
// draft, if the draft is worth saving (it has a date and any of departure
// airport, arrival airport, or title). A bare empty draft is dropped
// silently — the user staged their last leg and left the form blank.
//
// Returns ErrNoSegments when there is nothing at all to save.
func (b *FlightBuilder) Commit() ([]TripItem, error) {
	legs := make([]TripItem, len(b.Staged))
	copy(legs, b.Staged)

	d := b.Draft
	if d.Date != "" && (d.DepartureAirport != "" || d.ArrivalAirport != "" || d.Title != "") {
		if d.Title == "" {
			d.Title = flightTitle(d)
		}
		legs = append(legs, d)
	}

	if len(legs) == 0 {
		return nil, ErrNoSegments
	}
	return legs, nil
}

func flightTitle(leg TripItem) string {
	return fmt.Sprintf("Flight %s -> %s", leg.DepartureAirport, leg.ArrivalAirport)
}
