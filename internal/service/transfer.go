package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// TransferService implements the two dataset transfer formats: full backups
// (destructive restore) and single-trip share packages (additive, re-keyed).
// The two import paths are deliberately separate methods — one clears the
// store, the other must never touch existing rows.
type TransferService struct {
	trips    repo.TripRepo
	items    repo.ItemRepo
	transfer repo.TransferRepo

	now func() time.Time
}

// NewTransferService constructs a TransferService backed by the provided repos.
func NewTransferService(trips repo.TripRepo, items repo.ItemRepo, transfer repo.TransferRepo) *TransferService {
	return &TransferService{trips: trips, items: items, transfer: transfer, now: time.Now}
}

// ExportBackup snapshots the entire dataset. The suggested file name for the
// payload is BackupFileName.
func (s *TransferService) ExportBackup(ctx context.Context) (domain.Backup, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return domain.Backup{}, fmt.Errorf("service.TransferService.ExportBackup: %w", err)
	}
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return domain.Backup{}, fmt.Errorf("service.TransferService.ExportBackup: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	if items == nil {
		items = []domain.TripItem{}
	}
	return domain.Backup{Trips: trips, Items: items, ExportedAt: s.now().UTC()}, nil
}

// BackupFileName returns the conventional name for a backup exported now.
func (s *TransferService) BackupFileName() string {
	return domain.BackupFileName(s.now())
}

// backupWire mirrors domain.Backup with pointer slices so a missing or
// mistyped field is distinguishable from an empty one.
type backupWire struct {
	Trips *[]domain.Trip     `json:"trips"`
	Items *[]domain.TripItem `json:"items"`
}

// ImportBackup validates the payload and replaces the whole dataset in one
// transaction. Stored identities are preserved — restoring a backup yields
// exactly the dataset that was exported.
//
// Returns domain.ErrInvalidFormat if the payload is not a backup object with
// trips and items arrays; the store is untouched on any error.
func (s *TransferService) ImportBackup(ctx context.Context, payload []byte) error {
	var wire backupWire
	if err := json.Unmarshal(payload, &wire); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if wire.Trips == nil || wire.Items == nil {
		return fmt.Errorf("%w: trips and items arrays are required", domain.ErrInvalidFormat)
	}

	if err := s.transfer.ReplaceAll(ctx, *wire.Trips, *wire.Items); err != nil {
		return fmt.Errorf("service.TransferService.ImportBackup: %w", err)
	}
	return nil
}

// ExportShare packages one trip and its items for handing to another user.
func (s *TransferService) ExportShare(ctx context.Context, tripID int64) (domain.SharePackage, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.SharePackage{}, fmt.Errorf("service.TransferService.ExportShare: %w", err)
	}
	items, err := s.items.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.SharePackage{}, fmt.Errorf("service.TransferService.ExportShare: %w", err)
	}
	return domain.SharePackage{
		Trip:     trip,
		Items:    items,
		SharedAt: s.now().UTC(),
		Version:  domain.ShareVersion,
	}, nil
}

// ShareFileName derives the share file name from the trip's slugified
// destination. Destinations that slugify to nothing (all punctuation or
// non-Latin scripts) fall back to a random suffix so the name is never empty.
func (s *TransferService) ShareFileName(trip domain.Trip) string {
	slug := domain.Slugify(trip.Destination)
	if slug == "" {
		slug = "trip-" + uuid.NewString()[:8]
	}
	return "wanderlust-trip-" + slug + ".json"
}

// shareWire mirrors domain.SharePackage with pointers for validation.
type shareWire struct {
	Trip  *domain.Trip       `json:"trip"`
	Items *[]domain.TripItem `json:"items"`
}

// ImportShare validates the payload and imports the trip additively: the
// store assigns a fresh trip identity and every item is re-pointed at it.
// Importing the same package twice produces two distinct trips.
func (s *TransferService) ImportShare(ctx context.Context, payload []byte) (domain.Trip, error) {
	var wire shareWire
	if err := json.Unmarshal(payload, &wire); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if wire.Trip == nil || wire.Items == nil {
		return domain.Trip{}, fmt.Errorf("%w: trip and items are required", domain.ErrInvalidFormat)
	}

	trip := *wire.Trip
	trip.ID = 0 // the store assigns a fresh identity

	created, err := s.transfer.ImportShare(ctx, trip, *wire.Items)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TransferService.ImportShare: %w", err)
	}
	return created, nil
}
