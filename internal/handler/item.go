package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wanderlust/planner/backend/internal/domain"
)

// createItemsRequest is the body of POST /trips/{tripID}/items: one or more
// drafts saved atomically, with an optional total cost attributed to the
// first item.
type createItemsRequest struct {
	Items     []domain.TripItem `json:"items"`
	TotalCost *float64          `json:"totalCost,omitempty"`
}

// CreateItems handles POST /trips/{tripID}/items.
func (s *Server) CreateItems(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}

	var req createItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be an items object")
		return
	}

	created, err := s.items.Write(r.Context(), tripID, req.Items, req.TotalCost)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// createFlightRequest is the body of POST /trips/{tripID}/flights: the legs
// the user already staged plus the in-progress draft, exactly as the flight
// form holds them.
type createFlightRequest struct {
	Staged    []domain.TripItem `json:"staged"`
	Draft     domain.TripItem   `json:"draft"`
	TotalCost *float64          `json:"totalCost,omitempty"`
}

// CreateFlight handles POST /trips/{tripID}/flights.
func (s *Server) CreateFlight(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}

	var req createFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be a flight object")
		return
	}

	created, err := s.items.WriteFlight(r.Context(), tripID, req.Staged, req.Draft, req.TotalCost)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// patchItemRequest is the body of PATCH /trips/{tripID}/items/{itemID}.
// Completed is the only user-togglable flag.
type patchItemRequest struct {
	Completed *bool `json:"completed"`
}

// PatchItem handles PATCH /trips/{tripID}/items/{itemID}.
func (s *Server) PatchItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || itemID <= 0 {
		badRequest(w, "item id must be a positive integer")
		return
	}

	var req patchItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		badRequest(w, "request body must set completed")
		return
	}

	if err := s.items.SetCompleted(r.Context(), tripID, itemID, *req.Completed); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /trips/{tripID}/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || itemID <= 0 {
		badRequest(w, "item id must be a positive integer")
		return
	}

	if err := s.items.Delete(r.Context(), tripID, itemID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListItemsByType handles GET /items?type=flight — the per-category tab view
// across every trip.
func (s *Server) ListItemsByType(w http.ResponseWriter, r *http.Request) {
	t := domain.ItemType(r.URL.Query().Get("type"))

	items, err := s.items.ListByType(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
