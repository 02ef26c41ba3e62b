package driven

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// VectorIndex persists embedded chunks and answers similarity queries.
// Presence of persisted entries means "already built"; an empty index
// means "build on demand".
type VectorIndex interface {
	// Add inserts chunks with their embeddings into the index and
	// persists them. Chunk order is preserved.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Search finds the k nearest chunks to the query vector, ordered by
	// descending similarity. When the index holds fewer than k entries
	// it returns what exists, with no padding.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error)

	// Count returns the number of persisted entries.
	Count() int

	// Reset discards all persisted entries so a rebuild starts clean.
	Reset(ctx context.Context) error

	// Close releases resources.
	Close() error
}
