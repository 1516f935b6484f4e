package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wanderlust/planner/backend/internal/domain"
)

// errorResponse is the JSON error envelope returned by every failing endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are logged,
// not surfaced: the status line has already been written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps a service error onto the HTTP error taxonomy:
//
//	ErrNotFound                          -> 404 not_found
//	ErrValidation and its refinements    -> 422 validation_error
//	ErrInvalidFormat                     -> 400 invalid_format
//	anything else                        -> 500 generic "database error"
//
// The 500 branch deliberately hides the underlying cause from the client;
// the full error goes to the log instead.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{"not_found", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrIncompleteItem),
		errors.Is(err, domain.ErrNoSegments):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{"validation_error", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrInvalidFormat):
		writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"invalid_format", unwrapMessage(err)}})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{errorDetail{"internal", "database error"}})
	}
}

// badRequest rejects a request before it reaches the service layer
// (malformed body, bad path parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"bad_request", message}})
}

// unwrapMessage extracts the human-readable tail from a wrapped error chain,
// e.g. "service.TripService.Create: validation error: destination is required"
// becomes "destination is required". Falls back to the full message when
// there is no wrap prefix to strip.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error(),
		domain.ErrNotFound.Error(),
		domain.ErrInvalidFormat.Error(),
	} {
		if i := strings.LastIndex(msg, sentinel+": "); i >= 0 {
			return msg[i+len(sentinel)+2:]
		}
	}
	// Strip "layer.Type.Method: " wrap prefixes.
	if i := strings.LastIndex(msg, ": "); i >= 0 && !strings.Contains(msg[i+2:], ":") {
		return msg[i+2:]
	}
	return msg
}
