package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust/planner/backend/internal/domain"
)

func TestExportBackup_SetsAttachmentHeader(t *testing.T) {
	svc := &mockTransferServicer{
		exportBackup: func(_ context.Context) (domain.Backup, error) {
			return domain.Backup{
				Trips:      []domain.Trip{tripFixture()},
				Items:      []domain.TripItem{},
				ExportedAt: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			}, nil
		},
		backupFileName: func() string { return "wanderlust-backup-2025-06-15.json" },
	}

	req := httptest.NewRequest(http.MethodGet, "/export/backup", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="wanderlust-backup-2025-06-15.json"`,
		rec.Header().Get("Content-Disposition"))

	var resp domain.Backup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Trips, 1)
	assert.NotNil(t, resp.Items)
}

func TestImportBackup_204(t *testing.T) {
	var got []byte
	svc := &mockTransferServicer{
		importBackup: func(_ context.Context, payload []byte) error {
			got = payload
			return nil
		},
	}

	body := `{"trips": [], "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/import/backup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.JSONEq(t, body, string(got))
}

func TestImportBackup_400_InvalidFormat(t *testing.T) {
	svc := &mockTransferServicer{
		importBackup: func(_ context.Context, _ []byte) error {
			return domain.ErrInvalidFormat
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/import/backup", strings.NewReader("junk"))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_format")
}

func TestExportShare_SetsAttachmentHeader(t *testing.T) {
	svc := &mockTransferServicer{
		exportShare: func(_ context.Context, tripID int64) (domain.SharePackage, error) {
			assert.Equal(t, int64(1), tripID)
			return domain.SharePackage{
				Trip:    tripFixture(),
				Items:   []domain.TripItem{},
				Version: domain.ShareVersion,
			}, nil
		},
		shareFileName: func(trip domain.Trip) string {
			return "wanderlust-trip-japan.json"
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/1/share", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="wanderlust-trip-japan.json"`,
		rec.Header().Get("Content-Disposition"))

	var resp domain.SharePackage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.ShareVersion, resp.Version)
}

func TestImportShare_201(t *testing.T) {
	svc := &mockTransferServicer{
		importShare: func(_ context.Context, _ []byte) (domain.Trip, error) {
			trip := tripFixture()
			trip.ID = 42
			return trip, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/import/share",
		strings.NewReader(`{"trip": {}, "items": []}`))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(42), resp.ID)
}

// ---- GET /regions/visited --------------------------------------------------

func TestVisitedRegions_200(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) {
			japan := tripFixture()
			france := tripFixture()
			france.ID = 2
			france.Destination = "France"
			return []domain.Trip{japan, france}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/regions/visited", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Visited []string `json:"visited"`
		Total   int      `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// Catalog order, not trip order: France precedes Japan alphabetically
	// in the country catalog.
	assert.Equal(t, []string{"France", "Japan"}, resp.Visited)
	assert.Greater(t, resp.Total, 100)
}

func TestVisitedRegions_EmptyStore(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/regions/visited", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"visited":[]`)
}
