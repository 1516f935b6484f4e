package domain

import (
	"fmt"
	"time"
)

// DayKeyLayout is the calendar date format used for every day key in the
// planner: trip bounds, item dates, and itinerary day headers.
const DayKeyLayout = "2006-01-02"

// ParseDayKey parses a "2006-01-02" day key at midnight UTC.
// All day arithmetic happens in UTC so daylight-saving transitions in the
// host timezone can never shorten or stretch a trip by a day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrValidation, key)
	}
	return t, nil
}

// ExpandRange returns every day key from start through end inclusive, in
// strictly ascending order. Index i of the result is "day i+1" of the trip,
// which is the contract the AI import relies on to place day-numbered
// suggestions onto concrete dates.
//
// Returns ErrInvalidRange when end is before start.
func ExpandRange(start, end string) ([]string, error) {
	from, err := ParseDayKey(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDayKey(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	days := make([]string, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayKeyLayout))
	}
	return days, nil
}
