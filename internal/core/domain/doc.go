// Package domain defines the core business entities for the assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: Per-page text extracted from a source document
//   - Chunk: A bounded retrieval unit with its source metadata
//   - ChatMessage: A single turn of session history
//   - AnswerResult: The outcome of one user turn
//   - Ticket: A support issue in the external tracker
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
