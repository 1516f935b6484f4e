package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned by ExpandRange when the end date falls before
// the start date.
var ErrInvalidRange = errors.New("end date before start date")

// ErrIncompleteItem is returned when a single-item save is attempted without
// both a title and a date. Nothing is written.
var ErrIncompleteItem = errors.New("item missing title or date")

// ErrNoSegments is returned by FlightBuilder.Commit when neither the staged
// list nor the in-progress draft carries anything worth saving.
var ErrNoSegments = errors.New("no flight segments to save")

// ErrInvalidFormat is returned by the transfer service when an import payload
// is missing its required fields. The store is left untouched.
var ErrInvalidFormat = errors.New("invalid file format")
