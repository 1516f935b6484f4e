package domain

// Itinerary is the display projection of a trip's items: the full ordered day
// sequence, each day's items, and a per-type view for the category tabs.
// It is computed from already-loaded data and performs no I/O.
type Itinerary struct {
	// Days is the trip's expanded day-key sequence, first to last.
	Days []string

	// ByDay maps every day key in Days to that day's items. A day with no
	// items maps to an empty slice, never a missing key, so callers can
	// render an explicit empty-day affordance.
	ByDay map[string][]TripItem

	// ByType groups all items by their type tag, independent of day.
	ByType map[ItemType][]TripItem
}

// AssembleItinerary builds the day and type groupings for a trip.
// Items keep the order they arrive in; pass them pre-sorted by date for
// stable display. Items dated outside the day sequence (possible after a
// trip's dates were edited) are still present in ByType but not in ByDay.
func AssembleItinerary(days []string, items []TripItem) Itinerary {
	it := Itinerary{
		Days:   days,
		ByDay:  make(map[string][]TripItem, len(days)),
		ByType: make(map[ItemType][]TripItem),
	}
	for _, day := range days {
		it.ByDay[day] = []TripItem{}
	}
	for _, item := range items {
		if _, ok := it.ByDay[item.Date]; ok {
			it.ByDay[item.Date] = append(it.ByDay[item.Date], item)
		}
		it.ByType[item.Type] = append(it.ByType[item.Type], item)
	}
	return it
}

// EmptyDays returns the day keys that have no scheduled items, in day order.
func (it Itinerary) EmptyDays() []string {
	var empty []string
	for _, day := range it.Days {
		if len(it.ByDay[day]) == 0 {
			empty = append(empty, day)
		}
	}
	return empty
}
