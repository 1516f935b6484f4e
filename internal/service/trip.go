// Package service contains the business logic for the Wanderlust planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
	items repo.ItemRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, items repo.ItemRepo) *TripService {
	return &TripService{trips: trips, items: items}
}

// Create validates and persists a new trip. A blank title defaults to
// "{destination} Adventure", and a missing cover image gets a deterministic
// placeholder seeded from destination and title.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if strings.TrimSpace(trip.Title) == "" {
		trip.Title = domain.DefaultTitle(trip.Destination)
	}
	if trip.CoverImage == "" {
		trip.CoverImage = domain.PlaceholderImage(trip.Destination+trip.Title, 800, 400)
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, most recent start date first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip and, through the schema cascade, every item on it.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Itinerary loads a trip and projects its items onto the expanded day
// sequence plus the per-type category view.
func (s *TripService) Itinerary(ctx context.Context, id int64) (domain.Itinerary, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.TripService.Itinerary: %w", err)
	}

	days, err := domain.ExpandRange(trip.StartDate, trip.EndDate)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.TripService.Itinerary: %w", err)
	}

	items, err := s.items.ListByTrip(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.TripService.Itinerary: %w", err)
	}

	return domain.AssembleItinerary(days, items), nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Both dates must be present, well-formed day keys, start <= end.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate == "" || trip.EndDate == "" {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if _, err := domain.ExpandRange(trip.StartDate, trip.EndDate); err != nil {
		return err
	}
	return nil
}
