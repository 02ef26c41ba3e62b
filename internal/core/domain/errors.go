package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrExtraction indicates a source document could not be opened or parsed.
	// Fatal to that document only; ingestion skips it and continues.
	ErrExtraction = errors.New("document extraction failed")

	// ErrEmptyCorpus indicates no chunks were produced from the corpus.
	// Fatal to an index build; the assistant cannot function without an index.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrBuildFailed indicates the vector index is still absent after a build attempt.
	ErrBuildFailed = errors.New("index build failed")

	// ErrTicketCreate indicates the tracker rejected a ticket creation.
	ErrTicketCreate = errors.New("ticket create failed")

	// ErrTicketList indicates the tracker rejected a ticket listing.
	ErrTicketList = errors.New("ticket list failed")

	// ErrTicketClose indicates the tracker rejected a ticket close,
	// including "ticket not found".
	ErrTicketClose = errors.New("ticket close failed")

	// ErrAnswerParse indicates the model's text output was not the expected
	// JSON shape. Recovered locally into a fixed fallback answer, never
	// surfaced to callers.
	ErrAnswerParse = errors.New("answer parse failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// TrackerError carries the issue tracker's raw error response.
// It is surfaced verbatim to the caller; no retry is attempted.
type TrackerError struct {
	// Op is the tracker operation that failed ("create", "list", "close").
	Op string

	// StatusCode is the HTTP status returned by the tracker.
	StatusCode int

	// Body is the tracker's raw error body.
	Body string
}

func (e *TrackerError) Error() string {
	return fmt.Sprintf("tracker %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}
