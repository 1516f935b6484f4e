package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust/planner/backend/internal/domain"
	"github.com/wanderlust/planner/backend/internal/service"
)

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Japan Adventure", got.Title)
}

func TestTripService_Create_DefaultsTitle(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.Title = "   "

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, "Japan Adventure", got.Title)
}

func TestTripService_Create_DefaultsCoverImage(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, domain.PlaceholderImage("JapanJapan Adventure", 800, 400), got.CoverImage)
}

func TestTripService_Create_KeepsExplicitCoverImage(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.CoverImage = "https://example.com/cover.png"

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cover.png", got.CoverImage)
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.Destination = "   "

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_MissingDates(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.EndDate = ""

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.StartDate = "2025-06-10"
	trip.EndDate = "2025-06-01"

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	svc := service.NewTripService(r, nil)

	_, err := svc.Create(context.Background(), validTrip())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- Read tests ------------------------------------------------------------

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(r, nil)

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_NeverNil(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(r, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_Validates(t *testing.T) {
	svc := service.NewTripService(echoTripRepo(), nil)

	trip := validTrip()
	trip.ID = 7
	trip.Destination = ""

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Itinerary tests -------------------------------------------------------

func TestTripService_Itinerary(t *testing.T) {
	trip := validTrip()
	trip.ID = 1

	items := &mockItemRepo{
		listByTrip: func(_ context.Context, tripID int64) ([]domain.TripItem, error) {
			assert.Equal(t, int64(1), tripID)
			return []domain.TripItem{
				{ID: 10, TripID: 1, Type: domain.TypeStay, Title: "Park Hotel", Date: "2025-06-02"},
			}, nil
		},
	}
	svc := service.NewTripService(tripFound(trip), items)

	it, err := svc.Itinerary(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, it.Days, 5)
	assert.Len(t, it.ByDay["2025-06-02"], 1)
	assert.Equal(t, []string{"2025-06-01", "2025-06-03", "2025-06-04", "2025-06-05"}, it.EmptyDays())
}

func TestTripService_Itinerary_TripNotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(r, &mockItemRepo{})

	_, err := svc.Itinerary(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
