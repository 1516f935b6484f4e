// Package domain contains the core data types and the pure itinerary engine
// for the Wanderlust travel planner. This package performs no I/O and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Trip represents one multi-day adventure to a single destination.
// A trip is the top-level aggregate; trip items belong to a trip and never
// outlive it (deleting a trip cascades to its items).
//
// StartDate and EndDate are day keys ("2006-01-02"); the planner deals in
// wall-clock calendar days, never instants, so they stay strings end to end.
type Trip struct {
	ID             int64    `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Destination    string   `json:"destination"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Tags           []string `json:"tags,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	CoverImage     string   `json:"coverImage,omitempty"`
	CustomMapImage string   `json:"customMapImage,omitempty"`
}

// DefaultTitle returns the display name a trip gets when the user leaves the
// title blank at creation: "{destination} Adventure".
func DefaultTitle(destination string) string {
	return destination + " Adventure"
}

// Interests flattens the trip's tags into the free-text interests string fed
// to the itinerary generator. Legacy notes are the fallback for trips created
// before tags existed.
func (t Trip) Interests() string {
	if len(t.Tags) > 0 {
		return strings.Join(t.Tags, ", ")
	}
	if t.Notes != "" {
		return t.Notes
	}
	return "General sightseeing"
}

// PlaceholderImage returns a deterministic placeholder image reference for
// the given seed. Identical seeds always produce identical references, which
// keeps saves reproducible; the content behind the URL is opaque.
func PlaceholderImage(seed string, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.QueryEscape(seed), width, height)
}
