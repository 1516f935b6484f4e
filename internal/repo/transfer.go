package repo

import (
	"context"
	"fmt"

	"github.com/wanderlust/planner/backend/internal/domain"
)

// TransferRepo holds the bulk operations behind backup and share imports.
// Both run as one transaction: readers either see the dataset from before
// the import or the dataset after it, never a half-written state.
type TransferRepo interface {
	// ReplaceAll clears both tables and inserts the given rows verbatim,
	// stored identities included, then resynchronizes the id sequences.
	// This is the destructive backup-restore path — never reuse it for
	// share imports.
	ReplaceAll(ctx context.Context, trips []domain.Trip, items []domain.TripItem) error

	// ImportShare inserts the trip with a freshly assigned identity, then
	// inserts every item stripped of its stored id and re-pointed at the new
	// trip. Returns the persisted trip. Importing the same package twice
	// yields two independent trips.
	ImportShare(ctx context.Context, trip domain.Trip, items []domain.TripItem) (domain.Trip, error)
}

// pgTransferRepo is the Postgres implementation of TransferRepo.
type pgTransferRepo struct {
	db db
}

// NewTransferRepo constructs a TransferRepo backed by the provided db connection.
func NewTransferRepo(db db) TransferRepo {
	return &pgTransferRepo{db: db}
}

const insertItemNoReturn = `
		INSERT INTO items (trip_id, type, title, date, end_date, start_time, end_time,
			location, cost, details, booking_ref, booking_link, image_url, completed,
			departure_airport, arrival_airport, duration, pickup_location, dropoff_location)
		VALUES (@trip_id, @type, @title, @date, @end_date, @start_time, @end_time,
			@location, @cost, @details, @booking_ref, @booking_link, @image_url, @completed,
			@departure_airport, @arrival_airport, @duration, @pickup_location, @dropoff_location)`

// ReplaceAll wipes and repopulates both tables in one transaction.
func (r *pgTransferRepo) ReplaceAll(ctx context.Context, trips []domain.Trip, items []domain.TripItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TransferRepo.ReplaceAll: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck — rollback after commit is a no-op

	// items references trips, so it must be cleared first.
	if _, err := tx.Exec(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("repo.TransferRepo.ReplaceAll: clear items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM trips`); err != nil {
		return fmt.Errorf("repo.TransferRepo.ReplaceAll: clear trips: %w", err)
	}

	const insertTripWithID = `
		INSERT INTO trips (id, title, destination, start_date, end_date, tags, notes, cover_image, custom_map_image)
		VALUES (@id, @title, @destination, @start_date, @end_date, @tags, @notes, @cover_image, @custom_map_image)`

	for _, trip := range trips {
		args := tripArgs(trip)
		args["id"] = trip.ID
		if _, err := tx.Exec(ctx, insertTripWithID, args); err != nil {
			return fmt.Errorf("repo.TransferRepo.ReplaceAll: insert trip %d: %w", trip.ID, err)
		}
	}

	const insertItemWithID = `
		INSERT INTO items (id, trip_id, type, title, date, end_date, start_time, end_time,
			location, cost, details, booking_ref, booking_link, image_url, completed,
			departure_airport, arrival_airport, duration, pickup_location, dropoff_location)
		VALUES (@id, @trip_id, @type, @title, @date, @end_date, @start_time, @end_time,
			@location, @cost, @details, @booking_ref, @booking_link, @image_url, @completed,
			@departure_airport, @arrival_airport, @duration, @pickup_location, @dropoff_location)`

	for _, item := range items {
		args := itemArgs(item)
		args["id"] = item.ID
		if _, err := tx.Exec(ctx, insertItemWithID, args); err != nil {
			return fmt.Errorf("repo.TransferRepo.ReplaceAll: insert item %d: %w", item.ID, err)
		}
	}

	// Explicit ids bypass the sequences; bump them past the restored rows so
	// the next organic insert does not collide.
	const resync = `
		SELECT setval(pg_get_serial_sequence('trips', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM trips), 1)),
		       setval(pg_get_serial_sequence('items', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM items), 1))`
	if _, err := tx.Exec(ctx, resync); err != nil {
		return fmt.Errorf("repo.TransferRepo.ReplaceAll: resync sequences: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TransferRepo.ReplaceAll: commit: %w", err)
	}
	return nil
}

// ImportShare inserts the trip and its re-keyed items in one transaction.
func (r *pgTransferRepo) ImportShare(ctx context.Context, trip domain.Trip, items []domain.TripItem) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TransferRepo.ImportShare: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertTrip = `
		INSERT INTO trips (title, destination, start_date, end_date, tags, notes, cover_image, custom_map_image)
		VALUES (@title, @destination, @start_date, @end_date, @tags, @notes, @cover_image, @custom_map_image)
		RETURNING ` + tripColumns

	row := tx.QueryRow(ctx, insertTrip, tripArgs(trip))
	created, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TransferRepo.ImportShare: insert trip: %w", err)
	}

	for _, item := range items {
		item.ID = 0
		item.TripID = created.ID
		if _, err := tx.Exec(ctx, insertItemNoReturn, itemArgs(item)); err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TransferRepo.ImportShare: insert item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TransferRepo.ImportShare: commit: %w", err)
	}
	return created, nil
}
