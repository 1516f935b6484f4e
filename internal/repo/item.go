package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderlust/planner/backend/internal/domain"
)

// ItemRepo defines the persistence operations for TripItems.
// Single-item reads and writes are scoped by tripID to enforce ownership.
type ItemRepo interface {
	// CreateBatch inserts every item in one transaction, in list order.
	// Either all items land or none do — a concurrent reader never observes
	// a partially written batch. The persisted records are returned in the
	// same order with their store-assigned ids populated.
	CreateBatch(ctx context.Context, items []domain.TripItem) ([]domain.TripItem, error)

	// GetByID retrieves a single item by its ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID int64) (domain.TripItem, error)

	// ListByTrip returns all items for a trip ordered by date, then start
	// time, then insertion order — the display order of the itinerary.
	ListByTrip(ctx context.Context, tripID int64) ([]domain.TripItem, error)

	// ListByType returns all items of one type across every trip.
	ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error)

	// ListAll returns every item in the store in id order (backup export).
	ListAll(ctx context.Context) ([]domain.TripItem, error)

	// SetCompleted toggles the done flag on one item.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error

	// Delete removes an item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	Delete(ctx context.Context, tripID, itemID int64) error
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

const itemColumns = `id, trip_id, type, title, date, end_date, start_time, end_time,
		location, cost, details, booking_ref, booking_link, image_url, completed,
		departure_airport, arrival_airport, duration, pickup_location, dropoff_location`

const insertItem = `
		INSERT INTO items (trip_id, type, title, date, end_date, start_time, end_time,
			location, cost, details, booking_ref, booking_link, image_url, completed,
			departure_airport, arrival_airport, duration, pickup_location, dropoff_location)
		VALUES (@trip_id, @type, @title, @date, @end_date, @start_time, @end_time,
			@location, @cost, @details, @booking_ref, @booking_link, @image_url, @completed,
			@departure_airport, @arrival_airport, @duration, @pickup_location, @dropoff_location)
		RETURNING ` + itemColumns

// CreateBatch inserts all items atomically, preserving list order.
func (r *pgItemRepo) CreateBatch(ctx context.Context, items []domain.TripItem) ([]domain.TripItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.CreateBatch: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck — rollback after commit is a no-op

	created := make([]domain.TripItem, 0, len(items))
	for _, item := range items {
		row := tx.QueryRow(ctx, insertItem, itemArgs(item))
		persisted, err := scanItem(row)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.CreateBatch: %w", err)
		}
		created = append(created, persisted)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.CreateBatch: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves an item by primary key, scoped to the given trip.
func (r *pgItemRepo) GetByID(ctx context.Context, tripID, itemID int64) (domain.TripItem, error) {
	const q = `SELECT ` + itemColumns + ` FROM items WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	result, err := scanItem(row)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns a trip's items in display order.
func (r *pgItemRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.TripItem, error) {
	const q = `SELECT ` + itemColumns + `
		FROM items
		WHERE trip_id = @trip_id
		ORDER BY date, start_time NULLS LAST, id`

	return r.queryItems(ctx, "ListByTrip", q, pgx.NamedArgs{"trip_id": tripID})
}

// ListByType returns every item of the given type, newest trip days first
// left to the caller; rows come back in date order for stable display.
func (r *pgItemRepo) ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error) {
	const q = `SELECT ` + itemColumns + `
		FROM items
		WHERE type = @type
		ORDER BY date, id`

	return r.queryItems(ctx, "ListByType", q, pgx.NamedArgs{"type": string(t)})
}

// ListAll returns every item in id order.
func (r *pgItemRepo) ListAll(ctx context.Context) ([]domain.TripItem, error) {
	const q = `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	return r.queryItems(ctx, "ListAll", q, pgx.NamedArgs{})
}

// SetCompleted flips the done flag on one item.
func (r *pgItemRepo) SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error {
	const q = `UPDATE items SET completed = @completed WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID, "completed": completed})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.SetCompleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.SetCompleted: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes an item by primary key, scoped to the given trip.
func (r *pgItemRepo) Delete(ctx context.Context, tripID, itemID int64) error {
	const q = `DELETE FROM items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// queryItems runs a multi-row item query and scans the result set.
func (r *pgItemRepo) queryItems(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.TripItem, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.%s: %w", op, err)
	}
	defer rows.Close()

	items := []domain.TripItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.%s: scan: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.%s: rows: %w", op, err)
	}
	return items, nil
}

// itemArgs maps a domain.TripItem onto the named insert arguments.
// Optional strings stay as-is (empty string, not NULL); the two DATE columns
// and cost are the genuinely nullable fields.
func itemArgs(item domain.TripItem) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":           item.TripID,
		"type":              string(item.Type),
		"title":             item.Title,
		"date":              dayKeyParam(item.Date),
		"end_date":          dayKeyParam(item.EndDate),
		"start_time":        item.StartTime,
		"end_time":          item.EndTime,
		"location":          item.Location,
		"cost":              item.Cost, // nil becomes NULL
		"details":           item.Details,
		"booking_ref":       item.BookingRef,
		"booking_link":      item.BookingLink,
		"image_url":         item.ImageURL,
		"completed":         item.Completed,
		"departure_airport": item.DepartureAirport,
		"arrival_airport":   item.ArrivalAirport,
		"duration":          item.Duration,
		"pickup_location":   item.PickupLocation,
		"dropoff_location":  item.DropoffLocation,
	}
}

// scanItem maps a single database row into a domain.TripItem.
func scanItem(s scanner) (domain.TripItem, error) {
	var (
		item      domain.TripItem
		date, end pgtype.Date
	)

	err := s.Scan(&item.ID, &item.TripID, &item.Type, &item.Title, &date, &end,
		&item.StartTime, &item.EndTime, &item.Location, &item.Cost, &item.Details,
		&item.BookingRef, &item.BookingLink, &item.ImageURL, &item.Completed,
		&item.DepartureAirport, &item.ArrivalAirport, &item.Duration,
		&item.PickupLocation, &item.DropoffLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripItem{}, domain.ErrNotFound
		}
		return domain.TripItem{}, err
	}

	item.Date = dayKeyString(date)
	item.EndDate = dayKeyString(end)
	return item, nil
}
