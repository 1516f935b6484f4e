// Package geo matches free-text trip destinations against the region name
// catalog used for map highlighting. Matching is name-based, not coordinate
// based — there is no geocoding anywhere in the planner.
package geo

import "strings"

// Matches reports whether a trip destination and a region name refer to the
// same place: equal strings, or either one a case-sensitive substring of the
// other. The containment test is deliberately loose so catalog spellings like
// "Czechia (Czech Republic)" still light up a polygon labeled
// "Czech Republic". Short names can false-positive; that trade-off is
// accepted in favor of catalog coverage.
func Matches(destination, region string) bool {
	if destination == "" || region == "" {
		return false
	}
	return destination == region ||
		strings.Contains(destination, region) ||
		strings.Contains(region, destination)
}

// Visited returns the subset of regions matched by at least one of the given
// destinations, preserving catalog order. This feeds the aggregate
// "all visited countries" map highlight.
func Visited(destinations, regions []string) []string {
	visited := []string{}
	for _, region := range regions {
		for _, dest := range destinations {
			if Matches(dest, region) {
				visited = append(visited, region)
				break
			}
		}
	}
	return visited
}
