package service_test

import (
	"context"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id int64) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockItemRepo is a hand-written test double for repo.ItemRepo.
type mockItemRepo struct {
	createBatch  func(ctx context.Context, items []domain.TripItem) ([]domain.TripItem, error)
	getByID      func(ctx context.Context, tripID, itemID int64) (domain.TripItem, error)
	listByTrip   func(ctx context.Context, tripID int64) ([]domain.TripItem, error)
	listByType   func(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error)
	listAll      func(ctx context.Context) ([]domain.TripItem, error)
	setCompleted func(ctx context.Context, tripID, itemID int64, completed bool) error
	delete       func(ctx context.Context, tripID, itemID int64) error
}

func (m *mockItemRepo) CreateBatch(ctx context.Context, items []domain.TripItem) ([]domain.TripItem, error) {
	return m.createBatch(ctx, items)
}
func (m *mockItemRepo) GetByID(ctx context.Context, tripID, itemID int64) (domain.TripItem, error) {
	return m.getByID(ctx, tripID, itemID)
}
func (m *mockItemRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.TripItem, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockItemRepo) ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error) {
	return m.listByType(ctx, t)
}
func (m *mockItemRepo) ListAll(ctx context.Context) ([]domain.TripItem, error) {
	return m.listAll(ctx)
}
func (m *mockItemRepo) SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error {
	return m.setCompleted(ctx, tripID, itemID, completed)
}
func (m *mockItemRepo) Delete(ctx context.Context, tripID, itemID int64) error {
	return m.delete(ctx, tripID, itemID)
}

var _ repo.ItemRepo = (*mockItemRepo)(nil)

// mockTransferRepo is a hand-written test double for repo.TransferRepo.
type mockTransferRepo struct {
	replaceAll  func(ctx context.Context, trips []domain.Trip, items []domain.TripItem) error
	importShare func(ctx context.Context, trip domain.Trip, items []domain.TripItem) (domain.Trip, error)
}

func (m *mockTransferRepo) ReplaceAll(ctx context.Context, trips []domain.Trip, items []domain.TripItem) error {
	return m.replaceAll(ctx, trips, items)
}
func (m *mockTransferRepo) ImportShare(ctx context.Context, trip domain.Trip, items []domain.TripItem) (domain.Trip, error) {
	return m.importShare(ctx, trip, items)
}

var _ repo.TransferRepo = (*mockTransferRepo)(nil)

// ---- shared helpers --------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Title:       "Japan Adventure",
		Destination: "Japan",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Tags:        []string{"food", "temples"},
	}
}

// echoTripRepo echoes whatever it receives back — useful for Create/Update
// tests that only care about validation logic, not what the DB returns.
func echoTripRepo() *mockTripRepo {
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

// echoItemRepo assigns sequential ids and hands the batch back.
func echoItemRepo() *mockItemRepo {
	return &mockItemRepo{
		createBatch: func(_ context.Context, items []domain.TripItem) ([]domain.TripItem, error) {
			out := make([]domain.TripItem, len(items))
			copy(out, items)
			for i := range out {
				out[i].ID = int64(i + 1)
			}
			return out, nil
		},
	}
}

// tripFound returns a repo whose GetByID always finds the given trip.
func tripFound(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) { return trip, nil },
	}
}

func ptr(v float64) *float64 { return &v }
