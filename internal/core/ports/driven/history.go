package driven

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// HistoryStore holds each session's append-only chat history.
type HistoryStore interface {
	// Append adds a message to the end of the session's history.
	Append(ctx context.Context, sessionID string, msg domain.ChatMessage) error

	// History returns the session's messages in append order.
	// An unknown session yields an empty history, not an error.
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)

	// Clear discards the session's history.
	Clear(ctx context.Context, sessionID string) error
}
