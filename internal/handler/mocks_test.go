package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id int64) (domain.Trip, error)
	list      func(ctx context.Context) ([]domain.Trip, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id int64) error
	itinerary func(ctx context.Context, id int64) (domain.Itinerary, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) Itinerary(ctx context.Context, id int64) (domain.Itinerary, error) {
	return m.itinerary(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockItemServicer is a test double for handler.ItemServicer.
type mockItemServicer struct {
	write        func(ctx context.Context, tripID int64, drafts []domain.TripItem, totalCost *float64) ([]domain.TripItem, error)
	writeFlight  func(ctx context.Context, tripID int64, staged []domain.TripItem, draft domain.TripItem, totalCost *float64) ([]domain.TripItem, error)
	setCompleted func(ctx context.Context, tripID, itemID int64, completed bool) error
	delete       func(ctx context.Context, tripID, itemID int64) error
	listByType   func(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error)
}

func (m *mockItemServicer) Write(ctx context.Context, tripID int64, drafts []domain.TripItem, totalCost *float64) ([]domain.TripItem, error) {
	return m.write(ctx, tripID, drafts, totalCost)
}
func (m *mockItemServicer) WriteFlight(ctx context.Context, tripID int64, staged []domain.TripItem, draft domain.TripItem, totalCost *float64) ([]domain.TripItem, error) {
	return m.writeFlight(ctx, tripID, staged, draft, totalCost)
}
func (m *mockItemServicer) SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error {
	return m.setCompleted(ctx, tripID, itemID, completed)
}
func (m *mockItemServicer) Delete(ctx context.Context, tripID, itemID int64) error {
	return m.delete(ctx, tripID, itemID)
}
func (m *mockItemServicer) ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error) {
	return m.listByType(ctx, t)
}

var _ handler.ItemServicer = (*mockItemServicer)(nil)

// mockPlannerServicer is a test double for handler.PlannerServicer.
type mockPlannerServicer struct {
	generate func(ctx context.Context, tripID int64) (int, error)
}

func (m *mockPlannerServicer) Generate(ctx context.Context, tripID int64) (int, error) {
	return m.generate(ctx, tripID)
}

var _ handler.PlannerServicer = (*mockPlannerServicer)(nil)

// mockTransferServicer is a test double for handler.TransferServicer.
type mockTransferServicer struct {
	exportBackup   func(ctx context.Context) (domain.Backup, error)
	backupFileName func() string
	importBackup   func(ctx context.Context, payload []byte) error
	exportShare    func(ctx context.Context, tripID int64) (domain.SharePackage, error)
	shareFileName  func(trip domain.Trip) string
	importShare    func(ctx context.Context, payload []byte) (domain.Trip, error)
}

func (m *mockTransferServicer) ExportBackup(ctx context.Context) (domain.Backup, error) {
	return m.exportBackup(ctx)
}
func (m *mockTransferServicer) BackupFileName() string {
	return m.backupFileName()
}
func (m *mockTransferServicer) ImportBackup(ctx context.Context, payload []byte) error {
	return m.importBackup(ctx, payload)
}
func (m *mockTransferServicer) ExportShare(ctx context.Context, tripID int64) (domain.SharePackage, error) {
	return m.exportShare(ctx, tripID)
}
func (m *mockTransferServicer) ShareFileName(trip domain.Trip) string {
	return m.shareFileName(trip)
}
func (m *mockTransferServicer) ImportShare(ctx context.Context, payload []byte) (domain.Trip, error) {
	return m.importShare(ctx, payload)
}

var _ handler.TransferServicer = (*mockTransferServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production. Nil mocks are fine for routes
// a test never touches.
func newHTTPHandler(trips handler.TripServicer, items handler.ItemServicer, planner handler.PlannerServicer, transfer handler.TransferServicer) http.Handler {
	return handler.NewServer(trips, items, planner, transfer).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          1,
		Title:       "Japan Adventure",
		Destination: "Japan",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Tags:        []string{"food"},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
