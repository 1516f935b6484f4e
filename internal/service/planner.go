package service

import (
	"context"
	"fmt"

	"github.com/wanderlust/planner/backend/internal/ai"
	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// Generator is the external collaborator that proposes a day-by-day
// itinerary. Defined here, in the consumer package, so tests can inject a
// canned implementation without touching the HTTP client.
type Generator interface {
	GenerateItinerary(ctx context.Context, destination string, dayCount int, interests string) ([]ai.DaySuggestion, error)
}

// PlannerService turns AI day suggestions into persisted activity items.
type PlannerService struct {
	trips repo.TripRepo
	items repo.ItemRepo
	gen   Generator
}

// NewPlannerService constructs a PlannerService backed by the provided repos
// and generator.
func NewPlannerService(trips repo.TripRepo, items repo.ItemRepo, gen Generator) *PlannerService {
	return &PlannerService{trips: trips, items: items, gen: gen}
}

// startTimeFor maps the model's coarse time-of-day label onto a concrete
// start time. Anything unrecognized lands in the evening slot.
func startTimeFor(timeOfDay string) string {
	switch timeOfDay {
	case "Morning":
		return "09:00"
	case "Afternoon":
		return "14:00"
	default:
		return "19:00"
	}
}

// Generate asks the external generator for an itinerary covering the trip's
// full day span and writes the resulting activity items in one transaction.
// Returns the number of items written.
//
// Suggestions whose 1-based day falls outside the trip's day sequence are
// skipped, not treated as errors — the model sometimes numbers days that do
// not exist. Each activity keeps its own estimated cost; the primary-record
// cost pooling of the manual save path does not apply here.
//
// A generator failure writes nothing and surfaces as a single wrapped error;
// callers report it generically, since the underlying cause (network, quota,
// malformed response) makes no actionable difference to the user.
func (s *PlannerService) Generate(ctx context.Context, tripID int64) (int, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.PlannerService.Generate: %w", err)
	}

	days, err := domain.ExpandRange(trip.StartDate, trip.EndDate)
	if err != nil {
		return 0, fmt.Errorf("service.PlannerService.Generate: %w", err)
	}

	suggestions, err := s.gen.GenerateItinerary(ctx, trip.Destination, len(days), trip.Interests())
	if err != nil {
		return 0, fmt.Errorf("service.PlannerService.Generate: generator: %w", err)
	}

	var toSave []domain.TripItem
	for _, day := range suggestions {
		if day.Day < 1 || day.Day > len(days) || len(day.Activities) == 0 {
			continue
		}
		date := days[day.Day-1]

		// One shared placeholder per day, seeded from the day's first
		// activity, matches how the suggestions render as a group.
		seed := day.Activities[0].Title + " " + day.Activities[0].Location + " activity"
		imageURL := domain.PlaceholderImage(seed, 300, 300)

		for _, act := range day.Activities {
			cost := act.EstimatedCost
			toSave = append(toSave, domain.TripItem{
				TripID:    tripID,
				Type:      domain.TypeActivity,
				Title:     act.Title,
				Details:   act.Description,
				Location:  act.Location,
				Cost:      &cost,
				Date:      date,
				StartTime: startTimeFor(act.TimeOfDay),
				ImageURL:  imageURL,
			})
		}
	}

	if len(toSave) == 0 {
		return 0, nil
	}

	if _, err := s.items.CreateBatch(ctx, toSave); err != nil {
		return 0, fmt.Errorf("service.PlannerService.Generate: %w", err)
	}
	return len(toSave), nil
}
