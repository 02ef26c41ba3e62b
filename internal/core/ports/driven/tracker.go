package driven

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// TicketTracker is a thin client over the external issue tracker.
// Every call is a live round trip; nothing is cached and no call is
// retried. Failures wrap the matching domain sentinel and carry the
// tracker's raw error body via domain.TrackerError.
type TicketTracker interface {
	// Create opens a new ticket with title = summary and a formatted
	// name/email/description body, tagged with domain.TicketLabels.
	// Fails wrapping domain.ErrTicketCreate on any non-2xx response.
	Create(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error)

	// List returns up to limit open, support-labelled tickets,
	// most recent first as returned by the tracker.
	// Fails wrapping domain.ErrTicketList on any non-2xx response.
	List(ctx context.Context, limit int) ([]domain.Ticket, error)

	// Close transitions the ticket to the closed state.
	// Fails wrapping domain.ErrTicketClose on any non-2xx response,
	// including "ticket not found".
	Close(ctx context.Context, id int) error
}
