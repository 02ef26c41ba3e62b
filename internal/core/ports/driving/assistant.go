package driving

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// Assistant answers user turns and submits tickets on behalf of the
// session boundary. These are the two function contracts the UI layer
// consumes.
type Assistant interface {
	// Answer runs one user turn: retrieve context, invoke the model,
	// perform any ticket action the model requested, and return a
	// structured result. The history is the session's prior messages;
	// the assistant reads it but does not mutate it.
	Answer(ctx context.Context, question string, history []domain.ChatMessage) (*domain.AnswerResult, error)

	// SubmitTicket creates a ticket from the four form fields. There is
	// no confirmation step here; confirmation already happened via
	// AnswerResult.NeedsConfirmation and the boundary's yes/no prompt.
	SubmitTicket(ctx context.Context, req domain.TicketRequest) (*domain.TicketReceipt, error)
}
