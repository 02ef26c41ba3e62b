package domain

// Page is the per-page extraction output of a source document.
// Pages whose text is empty or whitespace-only are never emitted.
type Page struct {
	// Text is the extracted page text.
	Text string

	// Number is the 1-based, human-readable page number.
	Number int

	// File is the base name of the source file.
	File string
}

// Chunk is a bounded window of page text plus source metadata,
// the unit of retrieval. Chunks are immutable once created.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Text is the chunk content, at most the configured window size.
	Text string

	// File is the source file name, inherited from the parent page.
	File string

	// Page is the source page number, inherited from the parent page.
	Page int

	// Embedding is the vector representation, set at index build time.
	Embedding []float32
}

// RetrievedChunk is a single similarity search result.
type RetrievedChunk struct {
	// Text is the matched chunk content.
	Text string

	// File is the source file name.
	File string

	// Page is the source page number.
	Page int

	// Score is the similarity to the query, higher is closer.
	Score float64
}
