package handler

import (
	"fmt"
	"io"
	"net/http"
)

// ExportBackup handles GET /export/backup: a full snapshot of every trip and
// item, served as a downloadable JSON file.
func (s *Server) ExportBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := s.transfer.ExportBackup(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.transfer.BackupFileName()))
	writeJSON(w, http.StatusOK, backup)
}

// ImportBackup handles POST /import/backup. The payload replaces the entire
// store, so the body is handed to the service raw for strict validation
// before anything is touched.
func (s *Server) ImportBackup(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "could not read request body")
		return
	}

	if err := s.transfer.ImportBackup(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportShare handles GET /trips/{tripID}/share: a single trip packaged for
// sending to another user.
func (s *Server) ExportShare(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(r)
	if !ok {
		badRequest(w, "trip id must be a positive integer")
		return
	}

	pkg, err := s.transfer.ExportShare(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.transfer.ShareFileName(pkg.Trip)))
	writeJSON(w, http.StatusOK, pkg)
}

// ImportShare handles POST /import/share: adds a shared trip as a new trip
// without disturbing existing data.
func (s *Server) ImportShare(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "could not read request body")
		return
	}

	trip, err := s.transfer.ImportShare(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}
