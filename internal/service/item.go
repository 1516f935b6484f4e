package service

import (
	"context"
	"fmt"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// ItemService implements the item write path: validating drafts, resolving
// placeholder images, attributing cost, and persisting the batch atomically.
// It holds the trip repo because every write must verify the parent trip.
type ItemService struct {
	trips repo.TripRepo
	items repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided repos.
func NewItemService(trips repo.TripRepo, items repo.ItemRepo) *ItemService {
	return &ItemService{trips: trips, items: items}
}

// Write persists a batch of draft items as one transaction.
//
// Per draft, in list order:
//   - an explicit imageUrl passes through verbatim; otherwise a deterministic
//     placeholder is derived from (title, location-or-pickup, type);
//   - the first draft receives totalCost (which may be nil); every later
//     draft gets an explicit zero — the total price of a multi-leg booking is
//     attributed to the primary record only;
//   - completed is forced to false on creation.
//
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrNoSegments
// for an empty batch, and domain.ErrIncompleteItem / domain.ErrValidation for
// drafts missing required fields. Nothing is written on any error.
func (s *ItemService) Write(ctx context.Context, tripID int64, drafts []domain.TripItem, totalCost *float64) ([]domain.TripItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ItemService.Write: %w", err)
	}
	if len(drafts) == 0 {
		return nil, domain.ErrNoSegments
	}

	toSave := make([]domain.TripItem, 0, len(drafts))
	for k, draft := range drafts {
		if !draft.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, draft.Type)
		}
		if !draft.Complete() {
			return nil, fmt.Errorf("%w: item %d", domain.ErrIncompleteItem, k)
		}

		draft.TripID = tripID
		draft.Completed = false
		if draft.ImageURL == "" {
			draft.ImageURL = domain.PlaceholderImage(draft.ImageSeed(), 300, 300)
		}
		if k == 0 {
			draft.Cost = totalCost
		} else {
			zero := 0.0
			draft.Cost = &zero
		}
		toSave = append(toSave, draft)
	}

	created, err := s.items.CreateBatch(ctx, toSave)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.Write: %w", err)
	}
	return created, nil
}

// WriteFlight runs the staged legs and the in-progress draft through the
// flight builder's commit rules, then persists the result via Write.
// A bare empty draft is dropped silently; domain.ErrNoSegments comes back
// when nothing at all is worth saving.
func (s *ItemService) WriteFlight(ctx context.Context, tripID int64, staged []domain.TripItem, draft domain.TripItem, totalCost *float64) ([]domain.TripItem, error) {
	b := domain.FlightBuilder{Staged: staged, Draft: draft}
	legs, err := b.Commit()
	if err != nil {
		return nil, err
	}
	for i := range legs {
		legs[i].Type = domain.TypeFlight
	}
	return s.Write(ctx, tripID, legs, totalCost)
}

// SetCompleted flips the done flag on one item.
func (s *ItemService) SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error {
	if err := s.items.SetCompleted(ctx, tripID, itemID, completed); err != nil {
		return fmt.Errorf("service.ItemService.SetCompleted: %w", err)
	}
	return nil
}

// Delete removes an item by ID, scoped to the given trip.
func (s *ItemService) Delete(ctx context.Context, tripID, itemID int64) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// ListByType returns every item of one category across all trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItemService) ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, t)
	}
	items, err := s.items.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.ListByType: %w", err)
	}
	if items == nil {
		return []domain.TripItem{}, nil
	}
	return items, nil
}
