package driving

import "context"

// Indexer exposes explicit index construction to external actors.
// Building is a single-owner operation; concurrent callers are
// serialised rather than racing to rebuild the same index.
type Indexer interface {
	// Build constructs the index from the corpus if it is absent.
	// With force set it discards any existing index first.
	Build(ctx context.Context, force bool) error
}
