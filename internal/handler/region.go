package handler

import (
	"net/http"

	"github.com/wanderlust/planner/backend/internal/geo"
)

// visitedResponse is the wire shape of GET /regions/visited.
type visitedResponse struct {
	Visited []string `json:"visited"`
	Total   int      `json:"total"`
}

// VisitedRegions handles GET /regions/visited: matches every trip destination
// against the country catalog and reports which countries have been visited.
func (s *Server) VisitedRegions(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	destinations := make([]string, 0, len(trips))
	for _, t := range trips {
		destinations = append(destinations, t.Destination)
	}

	writeJSON(w, http.StatusOK, visitedResponse{
		Visited: geo.Visited(destinations, geo.Countries),
		Total:   len(geo.Countries),
	})
}
