package handler

import "net/http"

// planResponse reports how many items the planner saved.
type planResponse struct {
	Created int `json:"created"`
}

// GeneratePlan handles POST /trips/{tripID}/plan: asks the AI planner for a
// day-by-day itinerary and saves the suggested activities onto the trip.
func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}

	created, err := s.planner.Generate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, planResponse{Created: created})
}
