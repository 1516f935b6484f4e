// Package handler implements the HTTP handlers for the planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, item.go, transfer.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/wanderlust/planner/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
	Itinerary(ctx context.Context, id int64) (domain.Itinerary, error)
}

// ItemServicer defines the item write/read operations the handlers depend on.
type ItemServicer interface {
	Write(ctx context.Context, tripID int64, drafts []domain.TripItem, totalCost *float64) ([]domain.TripItem, error)
	WriteFlight(ctx context.Context, tripID int64, staged []domain.TripItem, draft domain.TripItem, totalCost *float64) ([]domain.TripItem, error)
	SetCompleted(ctx context.Context, tripID, itemID int64, completed bool) error
	Delete(ctx context.Context, tripID, itemID int64) error
	ListByType(ctx context.Context, t domain.ItemType) ([]domain.TripItem, error)
}

// PlannerServicer generates and persists AI itinerary suggestions.
type PlannerServicer interface {
	Generate(ctx context.Context, tripID int64) (int, error)
}

// TransferServicer covers backup and share import/export.
type TransferServicer interface {
	ExportBackup(ctx context.Context) (domain.Backup, error)
	BackupFileName() string
	ImportBackup(ctx context.Context, payload []byte) error
	ExportShare(ctx context.Context, tripID int64) (domain.SharePackage, error)
	ShareFileName(trip domain.Trip) string
	ImportShare(ctx context.Context, payload []byte) (domain.Trip, error)
}

// Server holds every handler dependency. Construct with NewServer and mount
// Routes on the application router.
type Server struct {
	trips    TripServicer
	items    ItemServicer
	planner  PlannerServicer
	transfer TransferServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, items ItemServicer, planner PlannerServicer, transfer TransferServicer) *Server {
	return &Server{trips: trips, items: items, planner: planner, transfer: transfer}
}

// Routes returns the full API route tree.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/itinerary", s.GetItinerary)
			r.Post("/items", s.CreateItems)
			r.Post("/flights", s.CreateFlight)
			r.Patch("/items/{itemID}", s.PatchItem)
			r.Delete("/items/{itemID}", s.DeleteItem)
			r.Post("/plan", s.GeneratePlan)
			r.Get("/share", s.ExportShare)
		})
	})

	r.Get("/items", s.ListItemsByType)

	r.Get("/export/backup", s.ExportBackup)
	r.Post("/import/backup", s.ImportBackup)
	r.Post("/import/share", s.ImportShare)

	r.Get("/regions/visited", s.VisitedRegions)

	return r
}
